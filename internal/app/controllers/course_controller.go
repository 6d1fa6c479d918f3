package controllers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/services"
	"github.com/alawael/platform/internal/middleware"
	"github.com/alawael/platform/internal/pkg/filecodec"
)

// CourseController handles course catalog and enrollment operations
type CourseController struct {
	courseService     *services.CourseService
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(
	courseService *services.CourseService,
	enrollmentService *services.EnrollmentService,
	logger zerolog.Logger,
) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a course with optional link resources and attached documents. Send as multipart with a "resources" JSON part and repeated "files" parts.
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Course title"
// @Param description formData string false "Course description"
// @Param resources formData string false "JSON array of {title,url} links"
// @Param files formData file false "Attached documents"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or unsupported file"
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	req := dto.CreateCourseRequest{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}

	if raw := ctx.PostForm("resources"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Resources); err != nil {
			c.logger.Warn().Err(err).Msg("Invalid resources payload")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "resources must be a JSON array of links").WithField("resources")))
			return
		}
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		c.logger.Warn().Err(err).Msg("Invalid multipart form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "expected a multipart form")))
		return
	}

	files := make([]filecodec.InlineFile, 0)
	for _, header := range form.File["files"] {
		inline, err := filecodec.EncodeMultipart(header, filecodec.DocumentTypes)
		if err != nil {
			c.logger.Warn().Err(err).Str("file", header.Filename).Msg("Rejected course attachment")
			middleware.HandleAPIError(ctx, err)
			return
		}
		files = append(files, *inline)
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req, files)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.ToCourseResponse(course), "Course created"))
}

// ListCourses returns the course catalog
// @Summary List courses
// @Description Returns all courses, most recent first
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp := dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for i := range courses {
		resp.Courses = append(resp.Courses, dto.ToCourseResponse(&courses[i]))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// GetCourse returns one course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToCourseResponse(course), ""))
}

// DownloadCourseFile streams one attached document
// @Summary Download a course document
// @Tags courses
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Course id"
// @Param fileId path string true "File id"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Course or file not found"
// @Router /courses/{id}/files/{fileId} [get]
func (c *CourseController) DownloadCourseFile(ctx *gin.Context) {
	file, err := c.courseService.GetCourseFile(ctx.Request.Context(), ctx.Param("id"), ctx.Param("fileId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	content, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		c.logger.Error().Err(err).Str("fileId", file.ID).Msg("Stored file content is not valid base64")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStorageError, "stored file could not be decoded")))
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	ctx.Data(http.StatusOK, file.MimeType, content)
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Description Removes a course. Exams and homeworks referencing it are kept and regroup under the stale id.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Teacher role required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}, "Course deleted"))
}

// ToggleEnrollment flips the caller's enrollment in a course
// @Summary Toggle enrollment
// @Description Enrolls the student, or withdraws them if already enrolled
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course id"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentToggleResponse}
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/enroll [post]
func (c *CourseController) ToggleEnrollment(ctx *gin.Context) {
	studentID := ctx.GetString(middleware.ContextUserID)
	courseID := ctx.Param("id")
	enrolled, err := c.enrollmentService.Toggle(ctx.Request.Context(), studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.EnrollmentToggleResponse{
		CourseID: courseID,
		Enrolled: enrolled,
	}, ""))
}

// ListEnrollments returns the caller's enrolled course ids
// @Summary List my enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse}
// @Failure 403 {object} dto.ErrorResponse "Student role required"
// @Router /enrollments [get]
func (c *CourseController) ListEnrollments(ctx *gin.Context) {
	studentID := ctx.GetString(middleware.ContextUserID)
	ids, err := c.enrollmentService.List(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.EnrollmentListResponse{CourseIDs: ids}, ""))
}
