package dto

import "github.com/alawael/platform/internal/app/models"

// SubmissionResponse represents a homework submission on the wire.
// The file content itself is only returned on explicit download.
type SubmissionResponse struct {
	HomeworkID  string `json:"homeworkId"`
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	FileName    string `json:"fileName" example:"solution.pdf"`
	FileType    string `json:"fileType" example:"application/pdf"`
	FileSize    int64  `json:"fileSize" example:"204800"`
	SubmittedAt string `json:"submittedAt"`
}

// ToSubmissionResponse maps a stored submission onto the wire representation
func ToSubmissionResponse(s *models.HomeworkSubmission) SubmissionResponse {
	return SubmissionResponse{
		HomeworkID:  s.HomeworkID,
		StudentID:   s.StudentID,
		StudentName: s.StudentName,
		FileName:    s.FileName,
		FileType:    s.FileType,
		FileSize:    s.FileSize,
		SubmittedAt: s.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// SubmissionListResponse wraps the submissions recorded for one homework
type SubmissionListResponse struct {
	HomeworkID  string               `json:"homeworkId"`
	Submissions []SubmissionResponse `json:"submissions"`
}

// SubmissionStatusResponse reports a student's standing on one homework
type SubmissionStatusResponse struct {
	HomeworkID string                  `json:"homeworkId"`
	Status     models.SubmissionStatus `json:"status" example:"submitted"`
	Submission *SubmissionResponse     `json:"submission,omitempty"`
}
