package dto

import "github.com/alawael/platform/internal/app/models"

// EducationRequest represents the academic placement of a student account
type EducationRequest struct {
	Stage      models.EducationStage `json:"stage" binding:"required,oneof=primary intermediate secondary"`
	ClassLevel string                `json:"classLevel" binding:"required"`
	Track      models.Track          `json:"track,omitempty" binding:"omitempty,oneof=scientific literary"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email     string            `json:"email" binding:"required,email"`
	Password  string            `json:"password" binding:"required"`
	Role      models.RoleType   `json:"role" binding:"required"`
	Name      string            `json:"name,omitempty"`
	Education *EducationRequest `json:"education,omitempty"`
}

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Name            string            `json:"name" binding:"required"`
	Email           string            `json:"email" binding:"required,email"`
	Password        string            `json:"password" binding:"required,min=6"`
	ConfirmPassword string            `json:"confirmPassword" binding:"required,eqfield=Password"`
	Role            models.RoleType   `json:"role" binding:"required"`
	Institution     string            `json:"institution,omitempty"`
	Education       *EducationRequest `json:"education,omitempty"`
}

// UpdateProfileRequest represents profile update data. Absent fields
// leave the stored value untouched.
type UpdateProfileRequest struct {
	Name        string            `json:"name,omitempty"`
	Avatar      string            `json:"avatar,omitempty"`
	Institution string            `json:"institution,omitempty"`
	Education   *EducationRequest `json:"education,omitempty"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// LanguageResponse reports the active UI language after a toggle
type LanguageResponse struct {
	Language  models.Language `json:"language" example:"ar"`
	Direction string          `json:"direction" example:"rtl"`
}
