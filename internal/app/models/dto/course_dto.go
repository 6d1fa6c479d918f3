package dto

import "github.com/alawael/platform/internal/app/models"

// LinkResourceRequest represents an external reference attached to a course
type LinkResourceRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

// CreateCourseRequest represents the body of a course creation call.
// Files arrive as separate multipart parts and are not part of this struct.
type CreateCourseRequest struct {
	Title       string                `json:"title" form:"title" binding:"required"`
	Description string                `json:"description" form:"description"`
	Resources   []LinkResourceRequest `json:"resources" form:"-"`
}

// FileResponse describes a stored document without its content
type FileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name" example:"lecture_notes.pdf"`
	MimeType string `json:"mimeType" example:"application/pdf"`
	Size     int64  `json:"size" example:"1048576"`
}

// CourseResponse represents a course on the wire
type CourseResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Resources   []models.LinkResource `json:"resources"`
	Files       []FileResponse        `json:"files"`
	CreatedAt   string                `json:"createdAt"`
}

// ToCourseResponse maps a stored course onto the wire representation,
// stripping file payloads down to metadata.
func ToCourseResponse(c *models.Course) CourseResponse {
	files := make([]FileResponse, 0, len(c.Files))
	for _, f := range c.Files {
		files = append(files, FileResponse{
			ID:       f.ID,
			Name:     f.Name,
			MimeType: f.MimeType,
			Size:     f.Size,
		})
	}
	resources := c.Resources
	if resources == nil {
		resources = []models.LinkResource{}
	}
	return CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Resources:   resources,
		Files:       files,
		CreatedAt:   c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CourseListResponse wraps a list of courses, most recent first
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}
