package repositories

import (
	"context"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/storage"
)

// CourseRepository handles storage operations for the course catalog.
type CourseRepository struct {
	store storage.Store
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(store storage.Store) *CourseRepository {
	return &CourseRepository{store: store}
}

// GetAll retrieves the catalog in most-recent-first order.
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	return getList[models.Course](ctx, r.store, storage.KeyCourses)
}

// GetByID retrieves a course by id, or nil if absent.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	courses, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, nil
}

// Prepend inserts a new course at the front of the catalog and persists the
// whole collection.
func (r *CourseRepository) Prepend(ctx context.Context, course *models.Course) error {
	courses, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	courses = append([]models.Course{*course}, courses...)
	return saveList(ctx, r.store, storage.KeyCourses, courses)
}

// Delete removes a course by id. It does not touch exams or homeworks that
// reference the course; those keep their now-dangling courseId.
func (r *CourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	courses, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}

	kept := courses[:0]
	found := false
	for _, c := range courses {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return false, nil
	}
	return true, saveList(ctx, r.store, storage.KeyCourses, kept)
}
