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
	"github.com/alawael/platform/internal/pkg/filecodec"
)

// CourseService handles the teacher course catalog
type CourseService struct {
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// CreateCourse validates and stores a new course at the head of the
// catalog. Attached documents must already be encoded.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, files []filecodec.InlineFile) (*models.Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title", "course title is required")
	}

	resources := make([]models.LinkResource, 0, len(req.Resources))
	for _, r := range req.Resources {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.URL) == "" {
			return nil, apperrors.NewValidationError("resources", "resource links need both a title and a url")
		}
		resources = append(resources, models.LinkResource{Title: r.Title, URL: r.URL})
	}

	stored := make([]models.FileResource, 0, len(files))
	for _, f := range files {
		stored = append(stored, models.FileResource{
			ID:       uuid.NewString(),
			Name:     f.Name,
			MimeType: f.MimeType,
			Size:     f.Size,
			Content:  f.Content,
		})
	}

	course := &models.Course{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Resources:   resources,
		Files:       stored,
		CreatedAt:   time.Now(),
	}

	if err := s.courseRepo.Prepend(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseId", course.ID).Int("files", len(stored)).Msg("course created")
	return course, nil
}

// ListCourses returns all courses, most recent first
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetCourse returns one course by id
func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// GetCourseFile returns one stored document from a course
func (s *CourseService) GetCourseFile(ctx context.Context, courseID, fileID string) (*models.FileResource, error) {
	course, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	for i := range course.Files {
		if course.Files[i].ID == fileID {
			return &course.Files[i], nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("file")
}

// DeleteCourse removes a course. Exams and homeworks pointing at it keep
// their course id and regroup under a stale bucket.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	found, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.ErrCourseNotFound
	}
	s.logger.Info().Str("courseId", id).Msg("course deleted")
	return nil
}
