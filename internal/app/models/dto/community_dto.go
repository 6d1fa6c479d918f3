package dto

import (
	"github.com/alawael/platform/internal/app/models"
)

// CreatePostRequest represents the body of a community post call. An
// empty subject is stored as the general subject.
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
	Subject string `json:"subject,omitempty"`
}

// PostAuthorResponse identifies the posting account on the wire
type PostAuthorResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Avatar string          `json:"avatar,omitempty"`
	Role   models.RoleType `json:"role"`
}

// PostResponse represents one feed entry as seen by the caller. IsLiked
// is relative to the authenticated viewer.
type PostResponse struct {
	ID        string             `json:"id"`
	Author    PostAuthorResponse `json:"author"`
	Content   string             `json:"content"`
	Subject   string             `json:"subject,omitempty"`
	CreatedAt string             `json:"createdAt"`
	Likes     int                `json:"likes"`
	Comments  int                `json:"comments"`
	Views     int                `json:"views"`
	IsLiked   bool               `json:"isLiked"`
}

// ToPostResponse maps a stored post onto the wire representation for
// one viewer
func ToPostResponse(p *models.Post, viewerID string) PostResponse {
	return PostResponse{
		ID: p.ID,
		Author: PostAuthorResponse{
			ID:     p.Author.ID,
			Name:   p.Author.Name,
			Avatar: p.Author.Avatar,
			Role:   p.Author.Role,
		},
		Content:   p.Content,
		Subject:   p.Subject,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Likes:     p.Likes(),
		Comments:  p.Comments,
		Views:     p.Views,
		IsLiked:   p.LikedByUser(viewerID),
	}
}

// PostListResponse wraps the feed, most recent first
type PostListResponse struct {
	Posts []PostResponse `json:"posts"`
}

// LikeResponse reports the like state of a post after a toggle
type LikeResponse struct {
	PostID  string `json:"postId"`
	Likes   int    `json:"likes"`
	IsLiked bool   `json:"isLiked"`
}

// StudyGroupResponse represents a study group as seen by the caller.
// IsJoined is relative to the authenticated viewer.
type StudyGroupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	Description string `json:"description,omitempty"`
	Members     int    `json:"members"`
	IsJoined    bool   `json:"isJoined"`
}

// ToStudyGroupResponse maps a stored group onto the wire representation
// for one viewer
func ToStudyGroupResponse(g *models.StudyGroup, viewerID string) StudyGroupResponse {
	return StudyGroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Subject:     g.Subject,
		Description: g.Description,
		Members:     g.Members(),
		IsJoined:    g.JoinedByUser(viewerID),
	}
}

// StudyGroupListResponse wraps the study group directory
type StudyGroupListResponse struct {
	Groups []StudyGroupResponse `json:"groups"`
}

// JoinResponse reports the membership state of a group after a toggle
type JoinResponse struct {
	GroupID  string `json:"groupId"`
	Members  int    `json:"members"`
	IsJoined bool   `json:"isJoined"`
}
