package repositories

import (
	"github.com/alawael/platform/internal/storage"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	SessionRepository    *SessionRepository
	CourseRepository     *CourseRepository
	ExamRepository       *ExamRepository
	HomeworkRepository   *HomeworkRepository
	SubmissionRepository *SubmissionRepository
	EnrollmentRepository *EnrollmentRepository
	CommunityRepository  *CommunityRepository
}

// NewRepositories initializes all repositories over the shared keyspace
func NewRepositories(store storage.Store) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(store),
		SessionRepository:    NewSessionRepository(store),
		CourseRepository:     NewCourseRepository(store),
		ExamRepository:       NewExamRepository(store),
		HomeworkRepository:   NewHomeworkRepository(store),
		SubmissionRepository: NewSubmissionRepository(store),
		EnrollmentRepository: NewEnrollmentRepository(store),
		CommunityRepository:  NewCommunityRepository(store),
	}
}
