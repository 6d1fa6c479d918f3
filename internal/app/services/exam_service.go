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
)

// ExamService handles the teacher exam catalog
type ExamService struct {
	examRepo   *repositories.ExamRepository
	courseRepo *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewExamService creates a new ExamService
func NewExamService(examRepo *repositories.ExamRepository, courseRepo *repositories.CourseRepository, logger zerolog.Logger) *ExamService {
	return &ExamService{
		examRepo:   examRepo,
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// CreateExam validates and stores a new exam at the head of the catalog
func (s *ExamService) CreateExam(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title", "exam title is required")
	}

	switch req.Source {
	case models.ExamSourceExternal:
		if strings.TrimSpace(req.ExternalLink) == "" {
			return nil, apperrors.NewValidationError("externalLink", "external exams need a link")
		}
		if len(req.Questions) > 0 {
			return nil, apperrors.NewValidationError("questions", "external exams cannot carry questions")
		}
	case models.ExamSourceInternal:
		if len(req.Questions) == 0 {
			return nil, apperrors.NewValidationError("questions", "internal exams need at least one question")
		}
		if strings.TrimSpace(req.ExternalLink) != "" {
			return nil, apperrors.NewValidationError("externalLink", "internal exams cannot carry an external link")
		}
	default:
		return nil, apperrors.NewValidationError("source", "exam source must be internal or external")
	}

	// A course reference is optional but must resolve at creation time.
	// It may dangle later if the course is deleted.
	if req.CourseID != "" {
		course, err := s.courseRepo.GetByID(ctx, req.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, apperrors.ErrCourseNotFound
		}
	}

	price := req.PricePerQuestion
	if price > models.MaxPricePerQuestion {
		return nil, apperrors.NewCustomError(apperrors.ErrPriceOutOfRange, "price per question exceeds the ceiling").
			WithDetails(map[string]interface{}{"maxPricePerQuestion": models.MaxPricePerQuestion})
	}
	if price < models.MinPricePerQuestion {
		price = models.MinPricePerQuestion
	}

	exam := &models.Exam{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(req.Title),
		CourseID:         req.CourseID,
		Source:           req.Source,
		ExternalLink:     strings.TrimSpace(req.ExternalLink),
		PricePerQuestion: price,
		TimerMode:        req.TimerMode,
		CreatedAt:        time.Now(),
	}

	switch req.TimerMode {
	case models.TimerPerExam:
		if req.ExamDurationMinutes < models.MinExamDurationMinutes {
			return nil, apperrors.NewValidationError("examDurationMinutes", "exam duration must be at least one minute")
		}
		exam.ExamDurationMinutes = req.ExamDurationMinutes
	case models.TimerPerQuestion:
		if req.PerQuestionSeconds < models.MinPerQuestionSeconds {
			return nil, apperrors.NewValidationError("perQuestionSeconds", "per-question time must be at least ten seconds")
		}
		exam.PerQuestionSeconds = req.PerQuestionSeconds
	default:
		return nil, apperrors.NewValidationError("timerMode", "timer mode must be perExam or perQuestion")
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, apperrors.NewValidationError("questions", "question text is required")
		}
		if len(q.Options) != 4 {
			return nil, apperrors.NewValidationError("questions", "questions need exactly four options")
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			return nil, apperrors.NewValidationError("questions", "correct answer index is out of range")
		}
		questions = append(questions, models.Question{
			ID:           uuid.NewString(),
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		})
	}
	exam.Questions = questions

	if err := s.examRepo.Prepend(ctx, exam); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("examId", exam.ID).
		Str("source", string(exam.Source)).
		Int("questions", len(exam.Questions)).
		Msg("exam created")
	return exam, nil
}

// ListExams returns all exams, most recent first
func (s *ExamService) ListExams(ctx context.Context) ([]models.Exam, error) {
	return s.examRepo.GetAll(ctx)
}

// GetExam returns one exam by id
func (s *ExamService) GetExam(ctx context.Context, id string) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exam == nil {
		return nil, apperrors.ErrExamNotFound
	}
	return exam, nil
}

// DeleteExam removes an exam from the catalog
func (s *ExamService) DeleteExam(ctx context.Context, id string) error {
	found, err := s.examRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.ErrExamNotFound
	}
	s.logger.Info().Str("examId", id).Msg("exam deleted")
	return nil
}
