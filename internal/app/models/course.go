package models

import "time"

// LinkResource is an external reference attached to a course by its teacher.
type LinkResource struct {
	Title string `json:"title" example:"Lecture notes"`
	URL   string `json:"url" example:"https://example.com/notes"`
}

// FileResource is an uploaded file stored inline with the course record.
// Content is base64; each resource keeps its own full copy (no dedup).
type FileResource struct {
	ID       string `json:"id"`
	Name     string `json:"name" example:"chapter1.pdf"`
	MimeType string `json:"mimeType" example:"application/pdf"`
	Size     int64  `json:"size" example:"1048576"`
	Content  string `json:"content"`
}

// Course is a teacher-authored course. Immutable once created except via
// deletion; exams and homeworks reference it weakly by id.
type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title" example:"أساسيات الفيزياء"`
	Description string         `json:"description,omitempty"`
	Resources   []LinkResource `json:"resources"`
	Files       []FileResource `json:"files,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
