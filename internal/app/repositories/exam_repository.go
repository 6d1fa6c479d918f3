package repositories

import (
	"context"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/storage"
)

// ExamRepository handles storage operations for the exam catalog.
type ExamRepository struct {
	store storage.Store
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(store storage.Store) *ExamRepository {
	return &ExamRepository{store: store}
}

// GetAll retrieves the catalog in most-recent-first order.
func (r *ExamRepository) GetAll(ctx context.Context) ([]models.Exam, error) {
	return getList[models.Exam](ctx, r.store, storage.KeyExams)
}

// GetByID retrieves an exam by id, or nil if absent.
func (r *ExamRepository) GetByID(ctx context.Context, id string) (*models.Exam, error) {
	exams, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exams {
		if exams[i].ID == id {
			return &exams[i], nil
		}
	}
	return nil, nil
}

// Prepend inserts a new exam at the front of the catalog and persists the
// whole collection.
func (r *ExamRepository) Prepend(ctx context.Context, exam *models.Exam) error {
	exams, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	exams = append([]models.Exam{*exam}, exams...)
	return saveList(ctx, r.store, storage.KeyExams, exams)
}

// Delete removes an exam by id.
func (r *ExamRepository) Delete(ctx context.Context, id string) (bool, error) {
	exams, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}

	kept := exams[:0]
	found := false
	for _, e := range exams {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return false, nil
	}
	return true, saveList(ctx, r.store, storage.KeyExams, kept)
}
