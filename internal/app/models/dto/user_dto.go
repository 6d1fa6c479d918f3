package dto

import "github.com/alawael/platform/internal/app/models"

// EducationResponse mirrors the stored academic placement of a student
type EducationResponse struct {
	Stage      models.EducationStage `json:"stage" example:"secondary"`
	ClassLevel string                `json:"classLevel" example:"3"`
	Track      models.Track          `json:"track,omitempty" example:"scientific"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Role        models.RoleType    `json:"role" example:"STUDENT"`
	Avatar      string             `json:"avatar,omitempty"`
	Points      *int               `json:"points,omitempty" example:"1250"`
	Institution string             `json:"institution,omitempty"`
	Education   *EducationResponse `json:"education,omitempty"`
	Language    models.Language    `json:"language" example:"ar"`
	CreatedAt   string             `json:"createdAt"`
}

// ToUserResponse maps a stored user onto the wire representation.
// The password hash never leaves the server.
func ToUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Avatar:      u.Avatar,
		Points:      u.Points,
		Institution: u.Institution,
		Language:    u.Language,
		CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if u.Education != nil {
		resp.Education = &EducationResponse{
			Stage:      u.Education.Stage,
			ClassLevel: u.Education.ClassLevel,
			Track:      u.Education.Track,
		}
	}
	return resp
}
