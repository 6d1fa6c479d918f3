package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/services"
	"github.com/alawael/platform/internal/middleware"
)

// ExamController handles exam catalog operations
type ExamController struct {
	examService    *services.ExamService
	catalogService *services.CatalogService
	logger         zerolog.Logger
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService, catalogService *services.CatalogService, logger zerolog.Logger) *ExamController {
	return &ExamController{
		examService:    examService,
		catalogService: catalogService,
		logger:         logger,
	}
}

// CreateExam handles exam creation
// @Summary Create an exam
// @Description Creates an internal question-bank exam or an external-link exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamRequest true "Exam definition"
// @Success 201 {object} dto.APIResponse{data=dto.ExamResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload, bad timer, or price above the ceiling"
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid exam payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	exam, err := c.examService.CreateExam(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToExamResponse(exam), "Exam created"))
}

// ListExams returns the exam catalog
// @Summary List exams
// @Description Returns all exams, most recent first
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ExamListResponse}
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.ListExams(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp := dto.ExamListResponse{Exams: make([]dto.ExamResponse, 0, len(exams))}
	for i := range exams {
		resp.Exams = append(resp.Exams, dto.ToExamResponse(&exams[i]))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// GetExam returns one exam
// @Summary Get an exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam id"
// @Success 200 {object} dto.APIResponse{data=dto.ExamResponse}
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	exam, err := c.examService.GetExam(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToExamResponse(exam), ""))
}

// DeleteExam removes an exam
// @Summary Delete an exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exam id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	if err := c.examService.DeleteExam(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Exam deleted"}, "Exam deleted"))
}

// Catalog returns the full grouped teaching catalog
// @Summary Grouped catalog
// @Description Returns courses with their exams and homeworks grouped by course. Items without a course land in the "unlinked" bucket; items referencing a deleted course keep the stale id.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CatalogResponse}
// @Router /courses/catalog [get]
func (c *ExamController) Catalog(ctx *gin.Context) {
	catalog, err := c.catalogService.Catalog(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(catalog, ""))
}
