package repositories

import (
	"context"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/storage"
)

// HomeworkRepository handles storage operations for the homework catalog.
type HomeworkRepository struct {
	store storage.Store
}

// NewHomeworkRepository creates a new HomeworkRepository
func NewHomeworkRepository(store storage.Store) *HomeworkRepository {
	return &HomeworkRepository{store: store}
}

// GetAll retrieves the catalog in most-recent-first order.
func (r *HomeworkRepository) GetAll(ctx context.Context) ([]models.Homework, error) {
	return getList[models.Homework](ctx, r.store, storage.KeyHomeworks)
}

// GetByID retrieves a homework by id, or nil if absent.
func (r *HomeworkRepository) GetByID(ctx context.Context, id string) (*models.Homework, error) {
	homeworks, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range homeworks {
		if homeworks[i].ID == id {
			return &homeworks[i], nil
		}
	}
	return nil, nil
}

// Prepend inserts a new homework at the front of the catalog and persists
// the whole collection.
func (r *HomeworkRepository) Prepend(ctx context.Context, homework *models.Homework) error {
	homeworks, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	homeworks = append([]models.Homework{*homework}, homeworks...)
	return saveList(ctx, r.store, storage.KeyHomeworks, homeworks)
}

// Delete removes a homework by id. Submissions for it are left in the
// ledger untouched.
func (r *HomeworkRepository) Delete(ctx context.Context, id string) (bool, error) {
	homeworks, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}

	kept := homeworks[:0]
	found := false
	for _, h := range homeworks {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return false, nil
	}
	return true, saveList(ctx, r.store, storage.KeyHomeworks, kept)
}
