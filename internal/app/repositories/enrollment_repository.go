package repositories

import (
	"context"

	"github.com/alawael/platform/internal/storage"
)

// EnrollmentRepository handles the per-student course membership sets. Each
// student has their own storage key so one student's writes never touch
// another's ledger.
type EnrollmentRepository struct {
	store storage.Store
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(store storage.Store) *EnrollmentRepository {
	return &EnrollmentRepository{store: store}
}

// Get returns the student's course id set. A missing or corrupted stored
// value is treated as an empty set.
func (r *EnrollmentRepository) Get(ctx context.Context, studentID string) ([]string, error) {
	return getList[string](ctx, r.store, storage.EnrollmentKey(studentID))
}

// Save replaces the student's whole course id set.
func (r *EnrollmentRepository) Save(ctx context.Context, studentID string, courseIDs []string) error {
	return saveList(ctx, r.store, storage.EnrollmentKey(studentID), courseIDs)
}
