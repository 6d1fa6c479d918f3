package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/pkg/apperrors"
	"github.com/alawael/platform/internal/pkg/filecodec"
)

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	repos := newTestRepos(t)
	return NewCourseService(repos.CourseRepository, zerolog.Nop())
}

func TestCreateCourseWithAttachments(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
		Title:       "  دورة الرياضيات  ",
		Description: "مقدمة في الجبر",
		Resources: []dto.LinkResourceRequest{
			{Title: "شرح مصور", URL: "https://youtube.com/watch?v=abc"},
		},
	}, []filecodec.InlineFile{
		{Name: "notes.pdf", MimeType: "application/pdf", Size: 4096, Content: "JVBERi0xLjQ="},
	})
	require.NoError(t, err)

	assert.Equal(t, "دورة الرياضيات", course.Title)
	require.Len(t, course.Files, 1)
	assert.NotEmpty(t, course.Files[0].ID)

	// The wire representation carries file metadata only.
	resp := dto.ToCourseResponse(course)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "notes.pdf", resp.Files[0].Name)
	assert.Equal(t, int64(4096), resp.Files[0].Size)
}

func TestCreateCourseValidation(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "  "}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = svc.CreateCourse(ctx, &dto.CreateCourseRequest{
		Title:     "دورة",
		Resources: []dto.LinkResourceRequest{{Title: "بدون رابط", URL: " "}},
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestGetCourseFile(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "دورة"}, []filecodec.InlineFile{
		{Name: "slides.pptx", MimeType: "application/vnd.openxmlformats-officedocument.presentationml.presentation", Size: 1024, Content: "UEsDBA=="},
	})
	require.NoError(t, err)

	file, err := svc.GetCourseFile(ctx, course.ID, course.Files[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "slides.pptx", file.Name)
	assert.Equal(t, "UEsDBA==", file.Content)

	_, err = svc.GetCourseFile(ctx, course.ID, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))

	_, err = svc.GetCourseFile(ctx, "missing", "whatever")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestDeleteCourse(t *testing.T) {
	svc := newCourseService(t)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, &dto.CreateCourseRequest{Title: "دورة"}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(ctx, course.ID))

	err = svc.DeleteCourse(ctx, course.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}
