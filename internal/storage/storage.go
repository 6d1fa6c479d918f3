// Package storage provides the durable key→JSON keyspace backing every
// catalog and ledger. Values are whole JSON documents replaced atomically on
// each write; there is no partial update and the last writer wins.
package storage

import "context"

// Keys of the logical keyspace. Enrollment keys embed the student id.
const (
	KeyUsers       = "users"
	KeyCourses     = "teacher_courses"
	KeyExams       = "teacher_exams"
	KeyHomeworks   = "teacher_homeworks"
	KeySubmissions = "homework_submissions"
	KeyPosts       = "community_posts"
	KeyStudyGroups = "community_groups"

	SessionKeyPrefix    = "session:"
	EnrollmentKeyPrefix = "enrollment:"
)

// SessionKey returns the storage key of a user's session record.
func SessionKey(userID string) string {
	return SessionKeyPrefix + userID
}

// EnrollmentKey returns the storage key of a student's enrollment set.
func EnrollmentKey(studentID string) string {
	return EnrollmentKeyPrefix + studentID
}

// Store is the durable keyspace. Get returns (nil, nil) for an absent key.
// Set replaces the whole value; the replacement is atomic with respect to
// readers of the same store instance.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
