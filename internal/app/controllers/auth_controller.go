// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/app/services"
	"github.com/alawael/platform/internal/middleware"
)

// AuthController handles authentication and profile operations
type AuthController struct {
	identityService *services.IdentityService
	logger          zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(identityService *services.IdentityService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		identityService: identityService,
		logger:          logger,
	}
}

// Register handles user registration
// @Summary Register a new account
// @Description Creates a new account and opens a session for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session, err := c.identityService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to register user")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.AuthResponse{
		Token: dto.TokenResponse{AccessToken: session.Token, TokenType: "Bearer"},
		User:  dto.ToUserResponse(&session.User),
	}, "Account created"))
}

// Login handles user login
// @Summary Sign in
// @Description Authenticates a known email or provisions an account on first sign-in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session, err := c.identityService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
		Token: dto.TokenResponse{AccessToken: session.Token, TokenType: "Bearer"},
		User:  dto.ToUserResponse(&session.User),
	}, "Signed in"))
}

// Logout handles user logout
// @Summary Sign out
// @Description Discards the caller's persisted session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.identityService.Logout(ctx.Request.Context(), userID); err != nil {
		c.logger.Error().Err(err).Str("userId", userID).Msg("Failed to discard session")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Signed out"}, "Signed out"))
}

// GetProfile returns the caller's account
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Account no longer exists"
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	user, err := c.identityService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToUserResponse(user), ""))
}

// UpdateProfile applies editable profile fields
// @Summary Update my profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	user, err := c.identityService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Error().Err(err).Str("userId", userID).Msg("Failed to update profile")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ToUserResponse(user), "Profile updated"))
}

// ToggleLanguage flips the caller's interface language
// @Summary Toggle interface language
// @Description Switches the account between Arabic and English
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LanguageResponse}
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /profile/language [post]
func (c *AuthController) ToggleLanguage(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	lang, err := c.identityService.ToggleLanguage(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LanguageResponse{
		Language:  lang,
		Direction: lang.Direction(),
	}, "Language switched"))
}
