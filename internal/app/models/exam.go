package models

import "time"

// Price bounds for internal exams, in points per question.
const (
	MinPricePerQuestion = 0.0
	MaxPricePerQuestion = 5.0
)

// Timer floors. A per-exam timer shorter than a minute or a per-question
// timer shorter than ten seconds is unusable.
const (
	MinExamDurationMinutes = 1
	MinPerQuestionSeconds  = 10
)

// Question is a multiple-choice question with four options.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`                  // always 4
	CorrectIndex int      `json:"correctIndex" example:"2"` // 0..3
}

// Exam is a teacher-authored exam. CourseID is a weak reference: it may
// point at a deleted course and consumers must treat that as "unlinked".
//
// Invariants enforced at save time:
//   - source=internal: at least one question, no external link
//   - source=external: external link present, no questions
//   - 0 <= PricePerQuestion <= 5
//   - TimerMode selects exactly one of ExamDurationMinutes (>=1) and
//     PerQuestionSeconds (>=10)
type Exam struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title" example:"اختبار الوحدة الأولى"`
	CourseID            string     `json:"courseId,omitempty"`
	Source              ExamSource `json:"source" example:"internal"`
	ExternalLink        string     `json:"externalLink,omitempty"`
	Questions           []Question `json:"questions"`
	PricePerQuestion    float64    `json:"pricePerQuestion" example:"1"`
	TimerMode           TimerMode  `json:"timerMode" example:"perExam"`
	ExamDurationMinutes int        `json:"examDurationMinutes,omitempty" example:"30"`
	PerQuestionSeconds  int        `json:"perQuestionSeconds,omitempty" example:"60"`
	CreatedAt           time.Time  `json:"createdAt"`
}
