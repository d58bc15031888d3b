package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrClubNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Club not found"},
	{apperrors.ErrClubRequestNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Club request not found"},
	{apperrors.ErrConfessionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Confession not found"},
	{apperrors.ErrChatNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Chat not found"},
	{apperrors.ErrCallNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Call not found"},

	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrAlreadyModerated, http.StatusConflict, dto.ErrorCodeConflict, "Confession already approved"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},

	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrNotParticipant, http.StatusForbidden, dto.ErrorCodeForbidden, "Not a participant"},

	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},

	{apperrors.ErrWrongSecurityAnswer, http.StatusBadRequest, dto.ErrorCodeWrongAnswer, "Incorrect security answer"},
	{apperrors.ErrPasswordMismatch, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Passwords do not match"},
	{apperrors.ErrInvalidEmail, http.StatusBadRequest, dto.ErrorCodeInvalidEmail, "Invalid email"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeInvalidRequest, "Bad request"},

	{apperrors.ErrNotImplemented, http.StatusNotImplemented, dto.ErrorCodeNotImplemented, "Not implemented"},
}

// HandleAPIError handles common API errors and returns appropriate responses.
// A *apperrors.CustomError contributes its own message and details.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		detail := dto.NewErrorDetail(m.code, m.message)
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if custom.Message != "" {
				detail.Message = custom.Message
			}
			if custom.Details != nil {
				detail.WithDetails(custom.Details)
			}
		}
		c.JSON(m.status, dto.NewErrorResponse(detail))
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
}
