package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
)

// A post without a subject lands under the general bucket.
const generalSubject = "عام"

// CommunityService handles the community feed and study groups
type CommunityService struct {
	communityRepo *repositories.CommunityRepository
	userRepo      *repositories.UserRepository
	logger        zerolog.Logger
	now           func() time.Time
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(
	communityRepo *repositories.CommunityRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *CommunityService {
	return &CommunityService{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// ListPosts returns the feed, most recent first, with like state
// resolved for the viewer
func (s *CommunityService) ListPosts(ctx context.Context, viewerID string) ([]dto.PostResponse, error) {
	posts, err := s.communityRepo.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, dto.ToPostResponse(&posts[i], viewerID))
	}
	return resp, nil
}

// CreatePost publishes a new post at the head of the feed. The author
// snapshot is taken from the stored account at publish time.
func (s *CommunityService) CreatePost(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("content", "post content is required")
	}

	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperrors.ErrUserNotFound
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = generalSubject
	}

	post := &models.Post{
		ID: uuid.NewString(),
		Author: models.PostAuthor{
			ID:     author.ID,
			Name:   author.Name,
			Avatar: author.Avatar,
			Role:   author.Role,
		},
		Content:   strings.TrimSpace(req.Content),
		Subject:   subject,
		CreatedAt: s.now(),
	}

	if err := s.communityRepo.PrependPost(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Str("postId", post.ID).Str("authorId", authorID).Msg("community post published")
	resp := dto.ToPostResponse(post, authorID)
	return &resp, nil
}

// ToggleLike flips the viewer's like on a post and returns the new
// like state
func (s *CommunityService) ToggleLike(ctx context.Context, postID, viewerID string) (*dto.LikeResponse, error) {
	post, err := s.communityRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.ErrPostNotFound
	}

	if post.LikedByUser(viewerID) {
		kept := post.LikedBy[:0]
		for _, id := range post.LikedBy {
			if id != viewerID {
				kept = append(kept, id)
			}
		}
		post.LikedBy = kept
	} else {
		post.LikedBy = append(post.LikedBy, viewerID)
	}

	found, err := s.communityRepo.UpdatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.ErrPostNotFound
	}

	return &dto.LikeResponse{
		PostID:  postID,
		Likes:   post.Likes(),
		IsLiked: post.LikedByUser(viewerID),
	}, nil
}

// ListGroups returns the study group directory with membership resolved
// for the viewer
func (s *CommunityService) ListGroups(ctx context.Context, viewerID string) ([]dto.StudyGroupResponse, error) {
	groups, err := s.communityRepo.GetGroups(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StudyGroupResponse, 0, len(groups))
	for i := range groups {
		resp = append(resp, dto.ToStudyGroupResponse(&groups[i], viewerID))
	}
	return resp, nil
}

// ToggleMembership flips the viewer's membership in a study group and
// returns the new member count
func (s *CommunityService) ToggleMembership(ctx context.Context, groupID, viewerID string) (*dto.JoinResponse, error) {
	groups, err := s.communityRepo.GetGroups(ctx)
	if err != nil {
		return nil, err
	}

	var group *models.StudyGroup
	for i := range groups {
		if groups[i].ID == groupID {
			group = &groups[i]
			break
		}
	}
	if group == nil {
		return nil, apperrors.ErrGroupNotFound
	}

	if group.JoinedByUser(viewerID) {
		kept := group.MemberIDs[:0]
		for _, id := range group.MemberIDs {
			if id != viewerID {
				kept = append(kept, id)
			}
		}
		group.MemberIDs = kept
	} else {
		group.MemberIDs = append(group.MemberIDs, viewerID)
	}

	if _, err := s.communityRepo.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}

	return &dto.JoinResponse{
		GroupID:  groupID,
		Members:  group.Members(),
		IsJoined: group.JoinedByUser(viewerID),
	}, nil
}
