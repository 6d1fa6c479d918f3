package models

import "time"

// Education holds the school-stage information of a student. Track is only
// meaningful for third-year secondary students.
type Education struct {
	Stage      EducationStage `json:"stage" example:"secondary"`
	ClassLevel string         `json:"classLevel" example:"3"`
	Track      Track          `json:"track,omitempty" example:"scientific"`
}

// User is a platform account. Points are only set for students; Institution
// only for teachers and students.
type User struct {
	ID          string     `json:"id" example:"b3c1…"` // opaque uuid
	Name        string     `json:"name" example:"أحمد محمد علي"`
	Email       string     `json:"email" example:"student@alawael.app"`
	Password    string     `json:"password,omitempty"` // bcrypt hash, stripped from wire DTOs
	Role        RoleType   `json:"role" example:"STUDENT"`
	Avatar      string     `json:"avatar,omitempty"` // inline data URL
	Points      *int       `json:"points,omitempty" example:"1250"`
	Institution string     `json:"institution,omitempty" example:"جامعة الخرطوم"`
	Education   *Education `json:"education,omitempty"`
	Language    Language   `json:"language" example:"ar"`
	CreatedAt   time.Time  `json:"createdAt" example:"2024-01-01T10:00:00Z"`
}

// Session is the persisted login record for a user: the issued token plus a
// snapshot of the User at login time. One live session per user; logout
// deletes it.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
