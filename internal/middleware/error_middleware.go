package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alawael/platform/internal/app/models/dto"
	"github.com/alawael/platform/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Custom errors
// contribute their message and details; the underlying sentinel picks
// the status code.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}
	respond := func(status int, code dto.ErrorCode, fallback string) {
		detail := dto.NewErrorDetail(code, message(fallback))
		if custom != nil && custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
		c.JSON(status, dto.NewErrorResponse(detail))
	}

	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrExamNotFound),
		errors.Is(err, apperrors.ErrHomeworkNotFound),
		errors.Is(err, apperrors.ErrPostNotFound),
		errors.Is(err, apperrors.ErrGroupNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrPriceOutOfRange):
		respond(http.StatusBadRequest, dto.ErrorCodePriceOutOfRange, "Price per question is above the ceiling")
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		respond(http.StatusBadRequest, dto.ErrorCodeUnsupportedFileType, "Unsupported file type")
	case errors.Is(err, apperrors.ErrFileTooLarge):
		respond(http.StatusBadRequest, dto.ErrorCodeFileTooLarge, "File too large")
	case errors.Is(err, apperrors.ErrPastDue):
		respond(http.StatusBadRequest, dto.ErrorCodePastDue, "The deadline for this homework has passed")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request")
	default:
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}
