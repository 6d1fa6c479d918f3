package models

import "time"

// PostAuthor is a snapshot of the posting account taken when the post is
// created. It does not follow later profile edits.
type PostAuthor struct {
	ID     string   `json:"id"`
	Name   string   `json:"name" example:"أحمد محمد"`
	Avatar string   `json:"avatar,omitempty"`
	Role   RoleType `json:"role" example:"STUDENT"`
}

// Post is one community feed entry. LikedBy holds the ids of accounts
// that currently like the post; toggling a like twice restores the
// original state.
type Post struct {
	ID        string     `json:"id"`
	Author    PostAuthor `json:"author"`
	Content   string     `json:"content"`
	Subject   string     `json:"subject,omitempty" example:"الرياضيات"`
	CreatedAt time.Time  `json:"createdAt"`
	LikedBy   []string   `json:"likedBy,omitempty"`
	Comments  int        `json:"comments"`
	Views     int        `json:"views"`
}

// Likes returns the current like count of the post.
func (p *Post) Likes() int {
	return len(p.LikedBy)
}

// LikedByUser reports whether the given account currently likes the post.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// StudyGroup is a subject study circle students can join. BaseMembers
// counts members recorded before the ledger existed; MemberIDs tracks
// joins made on the platform.
type StudyGroup struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" example:"مجموعة الرياضيات المتقدمة"`
	Subject     string   `json:"subject" example:"الرياضيات"`
	Description string   `json:"description,omitempty"`
	BaseMembers int      `json:"baseMembers"`
	MemberIDs   []string `json:"memberIds,omitempty"`
}

// Members returns the total member count of the group.
func (g *StudyGroup) Members() int {
	return g.BaseMembers + len(g.MemberIDs)
}

// JoinedByUser reports whether the given account has joined the group.
func (g *StudyGroup) JoinedByUser(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
