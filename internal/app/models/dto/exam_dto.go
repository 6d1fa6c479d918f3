package dto

import "github.com/alawael/platform/internal/app/models"

// QuestionRequest represents a single multiple-choice question
type QuestionRequest struct {
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectIndex int      `json:"correctIndex" binding:"gte=0,lte=3"`
}

// CreateExamRequest represents the body of an exam creation call
type CreateExamRequest struct {
	Title               string            `json:"title" binding:"required"`
	CourseID            string            `json:"courseId,omitempty"`
	Source              models.ExamSource `json:"source" binding:"required,oneof=internal external"`
	ExternalLink        string            `json:"externalLink,omitempty" binding:"omitempty,url"`
	Questions           []QuestionRequest `json:"questions,omitempty"`
	PricePerQuestion    float64           `json:"pricePerQuestion" binding:"gte=0"`
	TimerMode           models.TimerMode  `json:"timerMode" binding:"required,oneof=perExam perQuestion"`
	ExamDurationMinutes int               `json:"examDurationMinutes,omitempty"`
	PerQuestionSeconds  int               `json:"perQuestionSeconds,omitempty"`
}

// QuestionResponse represents a question on the wire
type QuestionResponse struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// ExamResponse represents an exam on the wire
type ExamResponse struct {
	ID                  string             `json:"id"`
	Title               string             `json:"title"`
	CourseID            string             `json:"courseId,omitempty"`
	Source              models.ExamSource  `json:"source" example:"internal"`
	ExternalLink        string             `json:"externalLink,omitempty"`
	Questions           []QuestionResponse `json:"questions"`
	QuestionCount       int                `json:"questionCount"`
	PricePerQuestion    float64            `json:"pricePerQuestion" example:"2.5"`
	TotalPrice          float64            `json:"totalPrice" example:"25"`
	TimerMode           models.TimerMode   `json:"timerMode" example:"perExam"`
	ExamDurationMinutes int                `json:"examDurationMinutes,omitempty"`
	PerQuestionSeconds  int                `json:"perQuestionSeconds,omitempty"`
	CreatedAt           string             `json:"createdAt"`
}

// ToExamResponse maps a stored exam onto the wire representation.
// The per-question price is clamped again on the way out so records
// written before the ceiling existed never display above it.
func ToExamResponse(e *models.Exam) ExamResponse {
	price := e.PricePerQuestion
	if price > models.MaxPricePerQuestion {
		price = models.MaxPricePerQuestion
	}
	questions := make([]QuestionResponse, 0, len(e.Questions))
	for _, q := range e.Questions {
		questions = append(questions, QuestionResponse{
			ID:           q.ID,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		})
	}
	return ExamResponse{
		ID:                  e.ID,
		Title:               e.Title,
		CourseID:            e.CourseID,
		Source:              e.Source,
		ExternalLink:        e.ExternalLink,
		Questions:           questions,
		QuestionCount:       len(questions),
		PricePerQuestion:    price,
		TotalPrice:          price * float64(len(questions)),
		TimerMode:           e.TimerMode,
		ExamDurationMinutes: e.ExamDurationMinutes,
		PerQuestionSeconds:  e.PerQuestionSeconds,
		CreatedAt:           e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ExamListResponse wraps a list of exams, most recent first
type ExamListResponse struct {
	Exams []ExamResponse `json:"exams"`
}
