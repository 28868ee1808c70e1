// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"goal_tracker/internal/platform/db"
)

// Pinger is the part of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
	Dialect() db.Dialect
}

// Health returns the /api/health handler. It reports whether the database answers a ping
// and which backend is in use. Responses are never cached.
func Health(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		if err := p.Ping(c.Request.Context()); err != nil {
			slog.Error("health check failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
			return
		}

		if c.Request.Method == http.MethodHead {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"database":      "connected",
			"database_type": p.Dialect().Name(),
		})
	}
}
