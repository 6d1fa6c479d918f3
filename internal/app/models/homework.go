package models

import "time"

// Homework is a teacher-authored assignment tied to a course. A past DueAt is
// allowed at creation and represents an already-expired assignment.
type Homework struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"` // weak reference, required
	Title       string    `json:"title" example:"واجب التفاضل"`
	Description string    `json:"description,omitempty"`
	DueAt       time.Time `json:"dueAt" example:"2024-01-20T23:59:59Z"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HomeworkSubmission is the latest upload for a (homework, student) pair.
// Resubmission replaces the record entirely; no history is kept.
type HomeworkSubmission struct {
	HomeworkID  string    `json:"homeworkId"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"` // snapshot at submission time
	FileName    string    `json:"fileName" example:"report.docx"`
	FileType    string    `json:"fileType" example:"application/pdf"`
	FileSize    int64     `json:"fileSize" example:"2097152"`
	Content     string    `json:"content"` // base64
	SubmittedAt time.Time `json:"submittedAt"`
}

// SubmissionStatus is the derived state shown to a student for a homework.
type SubmissionStatus string

const (
	SubmissionSubmitted    SubmissionStatus = "submitted"
	SubmissionOverdue      SubmissionStatus = "overdue"
	SubmissionNotSubmitted SubmissionStatus = "not-submitted"
)
