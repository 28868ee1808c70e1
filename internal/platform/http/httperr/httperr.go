// Package httperr maps classified errors to HTTP responses.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"goal_tracker/internal/shared/apperr"
)

// Status returns the HTTP status for err's kind.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Write aborts the request with {"error": message}. Server errors are logged with
// their cause; clients only see the generic message.
func Write(c *gin.Context, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
			"remote_addr", c.ClientIP(),
		)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperr.Message(err)})
}
