package repositories

import (
	"context"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/storage"
)

// CommunityRepository handles storage operations for the community feed
// and study groups.
type CommunityRepository struct {
	store storage.Store
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(store storage.Store) *CommunityRepository {
	return &CommunityRepository{store: store}
}

// GetPosts retrieves the feed in most-recent-first order.
func (r *CommunityRepository) GetPosts(ctx context.Context) ([]models.Post, error) {
	return getList[models.Post](ctx, r.store, storage.KeyPosts)
}

// GetPostByID retrieves a post by id, or nil if absent.
func (r *CommunityRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	posts, err := r.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// PrependPost inserts a new post at the head of the feed and persists
// the whole collection.
func (r *CommunityRepository) PrependPost(ctx context.Context, post *models.Post) error {
	posts, err := r.GetPosts(ctx)
	if err != nil {
		return err
	}
	posts = append([]models.Post{*post}, posts...)
	return saveList(ctx, r.store, storage.KeyPosts, posts)
}

// UpdatePost replaces the stored post with the same id. Returns false
// when no post carries that id.
func (r *CommunityRepository) UpdatePost(ctx context.Context, post *models.Post) (bool, error) {
	posts, err := r.GetPosts(ctx)
	if err != nil {
		return false, err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = *post
			return true, saveList(ctx, r.store, storage.KeyPosts, posts)
		}
	}
	return false, nil
}

// GetGroups retrieves all study groups in stored order.
func (r *CommunityRepository) GetGroups(ctx context.Context) ([]models.StudyGroup, error) {
	return getList[models.StudyGroup](ctx, r.store, storage.KeyStudyGroups)
}

// UpdateGroup replaces the stored group with the same id. Returns false
// when no group carries that id.
func (r *CommunityRepository) UpdateGroup(ctx context.Context, group *models.StudyGroup) (bool, error) {
	groups, err := r.GetGroups(ctx)
	if err != nil {
		return false, err
	}
	for i := range groups {
		if groups[i].ID == group.ID {
			groups[i] = *group
			return true, saveList(ctx, r.store, storage.KeyStudyGroups, groups)
		}
	}
	return false, nil
}

// SaveGroups replaces the whole study group collection. Used by the
// development seeder.
func (r *CommunityRepository) SaveGroups(ctx context.Context, groups []models.StudyGroup) error {
	return saveList(ctx, r.store, storage.KeyStudyGroups, groups)
}
