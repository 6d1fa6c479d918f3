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

// HomeworkService handles homework assignments and their submissions
type HomeworkService struct {
	homeworkRepo   *repositories.HomeworkRepository
	submissionRepo *repositories.SubmissionRepository
	userRepo       *repositories.UserRepository
	logger         zerolog.Logger
	now            func() time.Time
}

// NewHomeworkService creates a new HomeworkService
func NewHomeworkService(
	homeworkRepo *repositories.HomeworkRepository,
	submissionRepo *repositories.SubmissionRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *HomeworkService {
	return &HomeworkService{
		homeworkRepo:   homeworkRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateHomework validates and stores a new assignment at the head of
// the catalog
func (s *HomeworkService) CreateHomework(ctx context.Context, req *dto.CreateHomeworkRequest) (*models.Homework, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title", "homework title is required")
	}
	if strings.TrimSpace(req.CourseID) == "" {
		return nil, apperrors.NewValidationError("courseId", "homework must reference a course")
	}
	if req.DueAt.IsZero() {
		return nil, apperrors.NewValidationError("dueAt", "homework needs a due date")
	}

	homework := &models.Homework{
		ID:          uuid.NewString(),
		CourseID:    req.CourseID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		DueAt:       req.DueAt,
		CreatedAt:   s.now(),
	}

	if err := s.homeworkRepo.Prepend(ctx, homework); err != nil {
		return nil, err
	}

	s.logger.Info().Str("homeworkId", homework.ID).Time("dueAt", homework.DueAt).Msg("homework created")
	return homework, nil
}

// ListHomeworks returns all assignments, most recent first
func (s *HomeworkService) ListHomeworks(ctx context.Context) ([]models.Homework, error) {
	return s.homeworkRepo.GetAll(ctx)
}

// GetHomework returns one assignment by id
func (s *HomeworkService) GetHomework(ctx context.Context, id string) (*models.Homework, error) {
	homework, err := s.homeworkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if homework == nil {
		return nil, apperrors.ErrHomeworkNotFound
	}
	return homework, nil
}

// DeleteHomework removes an assignment. Submissions already recorded
// against it stay in the ledger.
func (s *HomeworkService) DeleteHomework(ctx context.Context, id string) error {
	found, err := s.homeworkRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.ErrHomeworkNotFound
	}
	s.logger.Info().Str("homeworkId", id).Msg("homework deleted")
	return nil
}

// Submit records a student's file for an assignment. Resubmitting
// replaces the earlier file. Checks run in a fixed order so the client
// always sees the most actionable failure: file type, then size, then
// the deadline.
func (s *HomeworkService) Submit(ctx context.Context, homeworkID, studentID string, file *filecodec.InlineFile) (*models.HomeworkSubmission, error) {
	homework, err := s.GetHomework(ctx, homeworkID)
	if err != nil {
		return nil, err
	}

	if err := filecodec.Validate(file.Name, file.MimeType, file.Size, filecodec.DocumentTypes); err != nil {
		return nil, err
	}

	if s.now().After(homework.DueAt) {
		return nil, apperrors.ErrPastDue
	}

	student, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrUserNotFound
	}

	submission := &models.HomeworkSubmission{
		HomeworkID:  homeworkID,
		StudentID:   studentID,
		StudentName: student.Name,
		FileName:    file.Name,
		FileType:    file.MimeType,
		FileSize:    file.Size,
		Content:     file.Content,
		SubmittedAt: s.now(),
	}

	if err := s.submissionRepo.Upsert(ctx, submission); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("homeworkId", homeworkID).
		Str("studentId", studentID).
		Int64("size", file.Size).
		Msg("submission recorded")
	return submission, nil
}

// ListSubmissions returns every submission recorded for one assignment
func (s *HomeworkService) ListSubmissions(ctx context.Context, homeworkID string) ([]models.HomeworkSubmission, error) {
	if _, err := s.GetHomework(ctx, homeworkID); err != nil {
		return nil, err
	}

	all, err := s.submissionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	subs := make([]models.HomeworkSubmission, 0)
	for _, sub := range all {
		if sub.HomeworkID == homeworkID {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

// GetSubmission returns the recorded submission for one student on one
// assignment, including the stored file content
func (s *HomeworkService) GetSubmission(ctx context.Context, homeworkID, studentID string) (*models.HomeworkSubmission, error) {
	submission, err := s.submissionRepo.Find(ctx, homeworkID, studentID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperrors.NewResourceNotFoundError("submission")
	}
	return submission, nil
}

// MySubmission reports a student's standing on one assignment. A missing
// submission counts as overdue once the deadline has passed.
func (s *HomeworkService) MySubmission(ctx context.Context, homeworkID, studentID string) (models.SubmissionStatus, *models.HomeworkSubmission, error) {
	homework, err := s.GetHomework(ctx, homeworkID)
	if err != nil {
		return "", nil, err
	}

	submission, err := s.submissionRepo.Find(ctx, homeworkID, studentID)
	if err != nil {
		return "", nil, err
	}
	if submission != nil {
		return models.SubmissionSubmitted, submission, nil
	}
	if s.now().After(homework.DueAt) {
		return models.SubmissionOverdue, nil, nil
	}
	return models.SubmissionNotSubmitted, nil, nil
}
