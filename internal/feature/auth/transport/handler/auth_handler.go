// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goal_tracker/internal/feature/auth/domain/entity"
	"goal_tracker/internal/feature/auth/transport/http/dto"
	"goal_tracker/internal/feature/auth/usecase"
	"goal_tracker/internal/platform/http/httperr"
	jwtmw "goal_tracker/internal/platform/jwt"
	"goal_tracker/internal/shared/apperr"
)

// AuthUsecase defines the auth operations the handler needs.
// Following Go convention, the interface is defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	Register(ctx context.Context, email, password, name string) (*usecase.LoginResult, error)
	CurrentUser(ctx context.Context, userID int64) (*entity.User, error)
}

// LoginLimiter tracks failed logins per client.
type LoginLimiter interface {
	Blocked(key string) bool
	AddFailure(key string)
	Reset(key string)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	auth    AuthUsecase
	limiter LoginLimiter
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase, limiter LoginLimiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Login handles POST /api/auth/login.
//   - 400 when email or password is missing
//   - 401 for an unknown email or a wrong password (same body for both)
//   - 429 after too many failures for this client and email
//   - 200 with {token, user} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		httperr.Write(c, usecase.ErrCredentialsRequired)
		return
	}

	key := c.ClientIP() + "|" + strings.ToLower(strings.TrimSpace(req.Email))
	if h.limiter.Blocked(key) {
		slog.Warn("login throttled", "email", req.Email, "remote_addr", c.ClientIP())
		httperr.Write(c, usecase.ErrTooManyAttempts)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			h.limiter.AddFailure(key)
		}
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		httperr.Write(c, err)
		return
	}

	h.limiter.Reset(key)
	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{Token: res.Token, User: dto.NewUserRes(res.User)})
}

// Register handles POST /api/auth/register.
//   - 400 for a missing field, malformed email, short password or blank name
//   - 409 when the email is already registered
//   - 201 with {token, user} on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		httperr.Write(c, apperr.Validation("Email, password and name required"))
		return
	}

	res, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
		httperr.Write(c, err)
		return
	}

	slog.Info("user registered", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{Token: res.Token, User: dto.NewUserRes(res.User)})
}

// Me handles GET /api/auth/me for the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		httperr.Write(c, usecase.ErrInvalidToken)
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}
