package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecem/goodworks/internal/app/models/dto"
	"github.com/ecem/goodworks/internal/pkg/apperrors"
	"github.com/ecem/goodworks/internal/pkg/logger"
)

// HandleAPIError maps service errors to their HTTP responses. Unknown
// errors are logged and reported as a generic 500 so internals never leak
// to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Username already taken"))
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Conflict with existing resource"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request"))
	default:
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

// HandleBindingError reports request body binding failures with per-field
// messages where available.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
}
