package dto

// EnrollmentToggleResponse reports the outcome of an enrollment toggle
type EnrollmentToggleResponse struct {
	CourseID string `json:"courseId"`
	Enrolled bool   `json:"enrolled"`
}

// EnrollmentListResponse wraps a student's enrolled course ids
type EnrollmentListResponse struct {
	CourseIDs []string `json:"courseIds"`
}
