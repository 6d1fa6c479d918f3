package dto

// UnlinkedGroupKey is the bucket for exams and homeworks whose course
// reference is empty. Records pointing at a deleted course keep their
// stale id as the group key instead.
const UnlinkedGroupKey = "unlinked"

// CourseGroup pairs a course id with the items filed under it. Title is
// empty when the course no longer exists.
type CourseGroup struct {
	CourseID  string             `json:"courseId" example:"unlinked"`
	Title     string             `json:"title,omitempty"`
	Exams     []ExamResponse     `json:"exams,omitempty"`
	Homeworks []HomeworkResponse `json:"homeworks,omitempty"`
}

// CatalogResponse is the full teaching catalog grouped by course
type CatalogResponse struct {
	Courses []CourseResponse `json:"courses"`
	Groups  []CourseGroup    `json:"groups"`
}
