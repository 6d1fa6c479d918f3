package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/services"
	"github.com/alawael/platform/internal/middleware"
	"github.com/alawael/platform/internal/pkg/filecodec"
)

// HomeworkController handles homework and submission operations
type HomeworkController struct {
	homeworkService *services.HomeworkService
	logger          zerolog.Logger
}

// NewHomeworkController creates a new HomeworkController
func NewHomeworkController(homeworkService *services.HomeworkService, logger zerolog.Logger) *HomeworkController {
	return &HomeworkController{
		homeworkService: homeworkService,
		logger:          logger,
	}
}

// CreateHomework handles homework creation
// @Summary Create a homework assignment
// @Tags homeworks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHomeworkRequest true "Assignment definition"
// @Success 201 {object} dto.APIResponse{data=dto.HomeworkResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Router /homeworks [post]
func (c *HomeworkController) CreateHomework(ctx *gin.Context) {
	var req dto.CreateHomeworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid homework payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	homework, err := c.homeworkService.CreateHomework(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToHomeworkResponse(homework), "Homework created"))
}

// ListHomeworks returns the homework catalog
// @Summary List homeworks
// @Description Returns all assignments, most recent first
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HomeworkListResponse}
// @Router /homeworks [get]
func (c *HomeworkController) ListHomeworks(ctx *gin.Context) {
	homeworks, err := c.homeworkService.ListHomeworks(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp := dto.HomeworkListResponse{Homeworks: make([]dto.HomeworkResponse, 0, len(homeworks))}
	for i := range homeworks {
		resp.Homeworks = append(resp.Homeworks, dto.ToHomeworkResponse(&homeworks[i]))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// DeleteHomework removes an assignment
// @Summary Delete a homework assignment
// @Description Removes the assignment. Recorded submissions stay in the ledger.
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Failure 404 {object} dto.ErrorResponse "Homework not found"
// @Router /homeworks/{id} [delete]
func (c *HomeworkController) DeleteHomework(ctx *gin.Context) {
	if err := c.homeworkService.DeleteHomework(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Homework deleted"}, "Homework deleted"))
}

// Submit records the caller's file for an assignment
// @Summary Submit homework
// @Description Uploads a document for the assignment. Resubmitting replaces the earlier upload.
// @Tags homeworks
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework id"
// @Param file formData file true "Submission document"
// @Success 201 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type, oversized file, or past-due assignment"
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 404 {object} dto.ErrorResponse "Homework not found"
// @Router /homeworks/{id}/submissions [post]
func (c *HomeworkController) Submit(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		c.logger.Warn().Err(err).Msg("Submission without a file part")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "a file part is required").WithField("file")))
		return
	}

	inline, err := filecodec.EncodeMultipart(header, filecodec.DocumentTypes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	studentID := ctx.GetString(middleware.ContextUserID)
	submission, err := c.homeworkService.Submit(ctx.Request.Context(), ctx.Param("id"), studentID, inline)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToSubmissionResponse(submission), "Submission recorded"))
}

// ListSubmissions returns every submission for an assignment
// @Summary List submissions
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework id"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionListResponse}
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Failure 404 {object} dto.ErrorResponse "Homework not found"
// @Router /homeworks/{id}/submissions [get]
func (c *HomeworkController) ListSubmissions(ctx *gin.Context) {
	homeworkID := ctx.Param("id")
	subs, err := c.homeworkService.ListSubmissions(ctx.Request.Context(), homeworkID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp := dto.SubmissionListResponse{
		HomeworkID:  homeworkID,
		Submissions: make([]dto.SubmissionResponse, 0, len(subs)),
	}
	for i := range subs {
		resp.Submissions = append(resp.Submissions, dto.ToSubmissionResponse(&subs[i]))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// MySubmission reports the caller's standing on an assignment
// @Summary My submission status
// @Description Returns submitted, overdue, or not-submitted along with the recorded upload if any
// @Tags homeworks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Homework id"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionStatusResponse}
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 404 {object} dto.ErrorResponse "Homework not found"
// @Router /homeworks/{id}/submissions/me [get]
func (c *HomeworkController) MySubmission(ctx *gin.Context) {
	homeworkID := ctx.Param("id")
	studentID := ctx.GetString(middleware.ContextUserID)
	status, submission, err := c.homeworkService.MySubmission(ctx.Request.Context(), homeworkID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp := dto.SubmissionStatusResponse{HomeworkID: homeworkID, Status: status}
	if submission != nil {
		mapped := dto.ToSubmissionResponse(submission)
		resp.Submission = &mapped
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// DownloadSubmission streams one recorded submission file
// @Summary Download a submission
// @Tags homeworks
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Homework id"
// @Param studentId path string true "Student id"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /homeworks/{id}/submissions/{studentId} [get]
func (c *HomeworkController) DownloadSubmission(ctx *gin.Context) {
	submission, err := c.homeworkService.GetSubmission(ctx.Request.Context(), ctx.Param("id"), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	content, err := base64.StdEncoding.DecodeString(submission.Content)
	if err != nil {
		c.logger.Error().Err(err).
			Str("homeworkId", submission.HomeworkID).
			Str("studentId", submission.StudentID).
			Msg("Stored submission content is not valid base64")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStorageError, "stored file could not be decoded")))
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+submission.FileName+`"`)
	ctx.Data(http.StatusOK, submission.FileType, content)
}
