package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"goal_tracker/internal/app/di"
	"goal_tracker/internal/platform/http/middleware"
	jwtmw "goal_tracker/internal/platform/jwt"
)

// NewRouter mounts every route under /api.
func NewRouter(h *di.Handlers, requestTimeout time.Duration) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RequestTimeout(requestTimeout))

	api := r.Group("/api")

	// Public
	api.GET("/health", h.Health)
	api.HEAD("/health", h.Health)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/register", h.Auth.Register)

	// Bearer token required
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(h.Authenticator))
	{
		auth.GET("/auth/me", h.Auth.Me)

		auth.GET("/tracks", h.Tracker.ListTracks)
		auth.POST("/tracks", h.Tracker.CreateTrack)
		auth.PATCH("/tracks/:id", h.Tracker.UpdateTrack)
		auth.DELETE("/tracks/:id", h.Tracker.DeleteTrack)

		auth.GET("/goals", h.Tracker.ListGoals)
		auth.POST("/goals", h.Tracker.CreateGoal)
		auth.PATCH("/goals/:id", h.Tracker.UpdateGoal)
		auth.DELETE("/goals/:id", h.Tracker.DeleteGoal)

		auth.GET("/tasks", h.Tracker.ListTasks)
		auth.POST("/tasks", h.Tracker.CreateTask)
		auth.PATCH("/tasks/:id", h.Tracker.UpdateTask)
		auth.DELETE("/tasks/:id", h.Tracker.DeleteTask)
	}

	return r
}
