package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"goal_tracker/internal/shared/apperr"
)

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperr.Validation("Track name is required"), http.StatusBadRequest, `{"error":"Track name is required"}`},
		{"unauthorized", apperr.Unauthorized("Invalid email or password"), http.StatusUnauthorized, `{"error":"Invalid email or password"}`},
		{"not found wrapped", fmt.Errorf("list goals: %w", apperr.NotFound("Track not found")), http.StatusNotFound, `{"error":"Track not found"}`},
		{"conflict", apperr.Conflict("Email already registered"), http.StatusConflict, `{"error":"Email already registered"}`},
		{"too many", apperr.TooManyRequests("Too many login attempts"), http.StatusTooManyRequests, `{"error":"Too many login attempts"}`},
		{"storage hides cause", apperr.Storage(errors.New("pq: password authentication failed")), http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/tracks", nil)

			Write(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}
