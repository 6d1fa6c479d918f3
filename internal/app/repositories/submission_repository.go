package repositories

import (
	"context"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/storage"
)

// SubmissionRepository handles storage operations for the homework
// submission ledger, keyed by (homeworkId, studentId).
type SubmissionRepository struct {
	store storage.Store
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(store storage.Store) *SubmissionRepository {
	return &SubmissionRepository{store: store}
}

// GetAll retrieves the whole ledger.
func (r *SubmissionRepository) GetAll(ctx context.Context) ([]models.HomeworkSubmission, error) {
	return getList[models.HomeworkSubmission](ctx, r.store, storage.KeySubmissions)
}

// Find returns the single record for a (homework, student) pair, or nil.
func (r *SubmissionRepository) Find(ctx context.Context, homeworkID, studentID string) (*models.HomeworkSubmission, error) {
	subs, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].HomeworkID == homeworkID && subs[i].StudentID == studentID {
			return &subs[i], nil
		}
	}
	return nil, nil
}

// Upsert replaces the record for the submission's (homework, student) pair,
// or inserts it if none exists, then persists the whole ledger. No history
// is kept.
func (r *SubmissionRepository) Upsert(ctx context.Context, sub *models.HomeworkSubmission) error {
	subs, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range subs {
		if subs[i].HomeworkID == sub.HomeworkID && subs[i].StudentID == sub.StudentID {
			subs[i] = *sub
			replaced = true
			break
		}
	}
	if !replaced {
		subs = append(subs, *sub)
	}

	return saveList(ctx, r.store, storage.KeySubmissions, subs)
}
