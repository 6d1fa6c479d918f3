package dto

import (
	"time"

	"github.com/alawael/platform/internal/app/models"
)

// CreateHomeworkRequest represents the body of a homework creation call
type CreateHomeworkRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description,omitempty"`
	CourseID    string    `json:"courseId" binding:"required"`
	DueAt       time.Time `json:"dueAt" binding:"required"`
}

// HomeworkResponse represents a homework assignment on the wire
type HomeworkResponse struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueAt       string `json:"dueAt"`
	CreatedAt   string `json:"createdAt"`
}

// ToHomeworkResponse maps a stored homework onto the wire representation
func ToHomeworkResponse(h *models.Homework) HomeworkResponse {
	return HomeworkResponse{
		ID:          h.ID,
		CourseID:    h.CourseID,
		Title:       h.Title,
		Description: h.Description,
		DueAt:       h.DueAt.Format("2006-01-02T15:04:05Z07:00"),
		CreatedAt:   h.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// HomeworkListResponse wraps a list of homeworks, most recent first
type HomeworkListResponse struct {
	Homeworks []HomeworkResponse `json:"homeworks"`
}
