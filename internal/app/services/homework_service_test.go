package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawael/platform/internal/app/models"
	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/repositories"
	"github.com/alawael/platform/internal/pkg/apperrors"
	"github.com/alawael/platform/internal/pkg/filecodec"
)

func newHomeworkService(t *testing.T) (*HomeworkService, *repositories.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	svc := NewHomeworkService(repos.HomeworkRepository, repos.SubmissionRepository, repos.UserRepository, zerolog.Nop())
	return svc, repos
}

func seedStudent(t *testing.T, repos *repositories.Repositories, id, name string) {
	t.Helper()
	err := repos.UserRepository.Create(context.Background(), &models.User{
		ID:    id,
		Name:  name,
		Email: id + "@alawael.app",
		Role:  models.RoleStudent,
	})
	require.NoError(t, err)
}

func pdfUpload(name string) *filecodec.InlineFile {
	return &filecodec.InlineFile{
		Name:     name,
		MimeType: "application/pdf",
		Size:     2048,
		Content:  "JVBERi0xLjQ=",
	}
}

func TestCreateHomework(t *testing.T) {
	svc, _ := newHomeworkService(t)
	due := time.Now().Add(48 * time.Hour)

	hw, err := svc.CreateHomework(context.Background(), &dto.CreateHomeworkRequest{
		CourseID: "c1",
		Title:    "واجب الفصل الثالث",
		DueAt:    due,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, hw.ID)
	assert.True(t, hw.DueAt.Equal(due))

	_, err = svc.CreateHomework(context.Background(), &dto.CreateHomeworkRequest{CourseID: "c1", Title: " ", DueAt: due})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = svc.CreateHomework(context.Background(), &dto.CreateHomeworkRequest{CourseID: "c1", Title: "بدون موعد"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestSubmitBeforeDeadline(t *testing.T) {
	svc, repos := newHomeworkService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")

	hw, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{
		CourseID: "c1",
		Title:    "واجب",
		DueAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	sub, err := svc.Submit(ctx, hw.ID, "s1", pdfUpload("answers.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "أحمد محمد", sub.StudentName)
	assert.Equal(t, "answers.pdf", sub.FileName)
	assert.False(t, sub.SubmittedAt.IsZero())
}

func TestSubmitAfterDeadline(t *testing.T) {
	svc, repos := newHomeworkService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")

	hw, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{
		CourseID: "c1",
		Title:    "واجب",
		DueAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return hw.DueAt.Add(time.Minute) }

	_, err = svc.Submit(ctx, hw.ID, "s1", pdfUpload("late.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPastDue))

	// The rejected attempt leaves the ledger untouched.
	sub, err := repos.SubmissionRepository.Find(ctx, hw.ID, "s1")
	require.NoError(t, err)
	assert.Nil(t, sub)
}

func TestSubmitRejectionOrder(t *testing.T) {
	// An upload that is the wrong type, oversized, and late at once
	// fails on the type check first.
	svc, repos := newHomeworkService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")

	hw, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{
		CourseID: "c1",
		Title:    "واجب",
		DueAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	svc.now = func() time.Time { return hw.DueAt.Add(time.Minute) }

	bad := &filecodec.InlineFile{
		Name:     "notes.txt",
		MimeType: "text/plain",
		Size:     filecodec.MaxUploadSize + 1,
	}
	_, err = svc.Submit(ctx, hw.ID, "s1", bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnsupportedFileType))

	bad.Name = "notes.pdf"
	bad.MimeType = "application/pdf"
	_, err = svc.Submit(ctx, hw.ID, "s1", bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrFileTooLarge))
}

func TestResubmitReplacesEarlierFile(t *testing.T) {
	svc, repos := newHomeworkService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")

	hw, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{
		CourseID: "c1",
		Title:    "واجب",
		DueAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, hw.ID, "s1", pdfUpload("draft.pdf"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, hw.ID, "s1", pdfUpload("final.pdf"))
	require.NoError(t, err)

	subs, err := svc.ListSubmissions(ctx, hw.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "final.pdf", subs[0].FileName)
}

func TestSubmitUnknownHomework(t *testing.T) {
	svc, repos := newHomeworkService(t)
	seedStudent(t, repos, "s1", "أحمد محمد")

	_, err := svc.Submit(context.Background(), "missing", "s1", pdfUpload("x.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrHomeworkNotFound))
}

func TestListSubmissionsFiltersByHomework(t *testing.T) {
	svc, repos := newHomeworkService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")
	seedStudent(t, repos, "s2", "ليلى حسن")

	first, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{CourseID: "c1", Title: "أ", DueAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	second, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{CourseID: "c1", Title: "ب", DueAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, first.ID, "s1", pdfUpload("a.pdf"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, first.ID, "s2", pdfUpload("b.pdf"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, second.ID, "s1", pdfUpload("c.pdf"))
	require.NoError(t, err)

	subs, err := svc.ListSubmissions(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestMySubmissionStatus(t *testing.T) {
	svc, repos := newHomeworkService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")

	hw, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{
		CourseID: "c1",
		Title:    "واجب",
		DueAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	status, sub, err := svc.MySubmission(ctx, hw.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionNotSubmitted, status)
	assert.Nil(t, sub)

	_, err = svc.Submit(ctx, hw.ID, "s1", pdfUpload("done.pdf"))
	require.NoError(t, err)

	status, sub, err = svc.MySubmission(ctx, hw.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSubmitted, status)
	require.NotNil(t, sub)
	assert.Equal(t, "done.pdf", sub.FileName)

	// A student who never submitted shows overdue once the deadline passes.
	svc.now = func() time.Time { return hw.DueAt.Add(time.Minute) }
	status, sub, err = svc.MySubmission(ctx, hw.ID, "s2")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionOverdue, status)
	assert.Nil(t, sub)
}

func TestDeleteHomeworkKeepsSubmissions(t *testing.T) {
	svc, repos := newHomeworkService(t)
	ctx := context.Background()
	seedStudent(t, repos, "s1", "أحمد محمد")

	hw, err := svc.CreateHomework(ctx, &dto.CreateHomeworkRequest{
		CourseID: "c1",
		Title:    "واجب",
		DueAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, hw.ID, "s1", pdfUpload("kept.pdf"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHomework(ctx, hw.ID))

	sub, err := repos.SubmissionRepository.Find(ctx, hw.ID, "s1")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "kept.pdf", sub.FileName)
}
