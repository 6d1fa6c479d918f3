package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
)

// EnrollmentService handles per-student course enrollment
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	courseRepo *repositories.CourseRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		logger:         logger,
	}
}

// Toggle flips a student's enrollment in a course and reports the new
// state. Toggling twice restores the original state.
func (s *EnrollmentService) Toggle(ctx context.Context, studentID, courseID string) (bool, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return false, err
	}
	if course == nil {
		return false, apperrors.ErrCourseNotFound
	}

	ids, err := s.enrollmentRepo.Get(ctx, studentID)
	if err != nil {
		return false, err
	}

	enrolled := false
	next := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == courseID {
			enrolled = true
			continue
		}
		next = append(next, id)
	}
	if !enrolled {
		next = append(next, courseID)
	}

	if err := s.enrollmentRepo.Save(ctx, studentID, next); err != nil {
		return false, err
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("courseId", courseID).
		Bool("enrolled", !enrolled).
		Msg("enrollment toggled")
	return !enrolled, nil
}

// List returns the course ids a student is enrolled in. Ids of deleted
// courses are kept as stored.
func (s *EnrollmentService) List(ctx context.Context, studentID string) ([]string, error) {
	return s.enrollmentRepo.Get(ctx, studentID)
}
