package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
	"github.com/alawael/platform/internal/storage"
)

func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return repositories.NewRepositories(store)
}

func newExamService(t *testing.T) (*ExamService, *repositories.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	return NewExamService(repos.ExamRepository, repos.CourseRepository, zerolog.Nop()), repos
}

func validInternalExam() *dto.CreateExamRequest {
	return &dto.CreateExamRequest{
		Title:  "اختبار الوحدة الأولى",
		Source: models.ExamSourceInternal,
		Questions: []dto.QuestionRequest{
			{Text: "٢+٢؟", Options: []string{"1", "2", "3", "4"}, CorrectIndex: 3},
		},
		PricePerQuestion:    2,
		TimerMode:           models.TimerPerExam,
		ExamDurationMinutes: 30,
	}
}

func TestCreateExamInternal(t *testing.T) {
	svc, _ := newExamService(t)

	exam, err := svc.CreateExam(context.Background(), validInternalExam())
	require.NoError(t, err)

	assert.NotEmpty(t, exam.ID)
	assert.Equal(t, models.ExamSourceInternal, exam.Source)
	require.Len(t, exam.Questions, 1)
	assert.NotEmpty(t, exam.Questions[0].ID)
	assert.Equal(t, 30, exam.ExamDurationMinutes)
	assert.Zero(t, exam.PerQuestionSeconds)
}

func TestCreateExamExternal(t *testing.T) {
	svc, _ := newExamService(t)

	exam, err := svc.CreateExam(context.Background(), &dto.CreateExamRequest{
		Title:              "امتحان خارجي",
		Source:             models.ExamSourceExternal,
		ExternalLink:       "https://forms.example.com/exam",
		PricePerQuestion:   0,
		TimerMode:          models.TimerPerQuestion,
		PerQuestionSeconds: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, exam.Questions)
	assert.Equal(t, "https://forms.example.com/exam", exam.ExternalLink)
	assert.Equal(t, 60, exam.PerQuestionSeconds)
	assert.Zero(t, exam.ExamDurationMinutes)
}

func TestCreateExamValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateExamRequest)
	}{
		{"missing title", func(r *dto.CreateExamRequest) { r.Title = "  " }},
		{"internal without questions", func(r *dto.CreateExamRequest) { r.Questions = nil }},
		{"internal with external link", func(r *dto.CreateExamRequest) { r.ExternalLink = "https://x.test" }},
		{"unknown source", func(r *dto.CreateExamRequest) { r.Source = "hybrid" }},
		{"unknown timer mode", func(r *dto.CreateExamRequest) { r.TimerMode = "countdown" }},
		{"per-exam duration too short", func(r *dto.CreateExamRequest) { r.ExamDurationMinutes = 0 }},
		{"wrong option count", func(r *dto.CreateExamRequest) {
			r.Questions[0].Options = []string{"a", "b"}
		}},
		{"correct index out of range", func(r *dto.CreateExamRequest) {
			r.Questions[0].CorrectIndex = 4
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newExamService(t)
			req := validInternalExam()
			tt.mutate(req)

			_, err := svc.CreateExam(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}

func TestCreateExamExternalNeedsLink(t *testing.T) {
	svc, _ := newExamService(t)

	_, err := svc.CreateExam(context.Background(), &dto.CreateExamRequest{
		Title:               "بدون رابط",
		Source:              models.ExamSourceExternal,
		TimerMode:           models.TimerPerExam,
		ExamDurationMinutes: 10,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCreateExamPerQuestionTimerFloor(t *testing.T) {
	svc, _ := newExamService(t)
	req := validInternalExam()
	req.TimerMode = models.TimerPerQuestion
	req.ExamDurationMinutes = 0
	req.PerQuestionSeconds = 9

	_, err := svc.CreateExam(context.Background(), req)
	require.Error(t, err)

	req.PerQuestionSeconds = 10
	exam, err := svc.CreateExam(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 10, exam.PerQuestionSeconds)
}

func TestCreateExamUnknownCourseRejected(t *testing.T) {
	svc, repos := newExamService(t)
	ctx := context.Background()

	req := validInternalExam()
	req.CourseID = "missing"
	_, err := svc.CreateExam(ctx, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))

	course := &models.Course{ID: "c1", Title: "الرياضيات"}
	require.NoError(t, repos.CourseRepository.Prepend(ctx, course))

	req.CourseID = "c1"
	exam, err := svc.CreateExam(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "c1", exam.CourseID)
}

func TestCreateExamPriceAboveCeilingRejected(t *testing.T) {
	svc, _ := newExamService(t)
	req := validInternalExam()
	req.PricePerQuestion = 5.5

	_, err := svc.CreateExam(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPriceOutOfRange))

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, models.MaxPricePerQuestion, custom.Details["maxPricePerQuestion"])
}

func TestCreateExamPriceAtBounds(t *testing.T) {
	svc, _ := newExamService(t)

	req := validInternalExam()
	req.PricePerQuestion = 5
	exam, err := svc.CreateExam(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5.0, exam.PricePerQuestion)

	req = validInternalExam()
	req.PricePerQuestion = 0
	exam, err = svc.CreateExam(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, exam.PricePerQuestion)
}

func TestExamResponseReclampsStoredPrice(t *testing.T) {
	// A record written before the ceiling existed still displays within it.
	exam := &models.Exam{
		ID:               "e1",
		PricePerQuestion: 9,
		Questions:        []models.Question{{ID: "q1"}, {ID: "q2"}},
	}
	resp := dto.ToExamResponse(exam)
	assert.Equal(t, 5.0, resp.PricePerQuestion)
	assert.Equal(t, 10.0, resp.TotalPrice)
}

func TestListExamsMostRecentFirst(t *testing.T) {
	svc, _ := newExamService(t)
	ctx := context.Background()

	first := validInternalExam()
	first.Title = "الأول"
	_, err := svc.CreateExam(ctx, first)
	require.NoError(t, err)

	second := validInternalExam()
	second.Title = "الثاني"
	_, err = svc.CreateExam(ctx, second)
	require.NoError(t, err)

	exams, err := svc.ListExams(ctx)
	require.NoError(t, err)
	require.Len(t, exams, 2)
	assert.Equal(t, "الثاني", exams[0].Title)
}

func TestDeleteExam(t *testing.T) {
	svc, _ := newExamService(t)
	ctx := context.Background()

	exam, err := svc.CreateExam(ctx, validInternalExam())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExam(ctx, exam.ID))

	err = svc.DeleteExam(ctx, exam.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrExamNotFound))
}
