package di

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	authadapters "goal_tracker/internal/feature/auth/adapters"
	authhandler "goal_tracker/internal/feature/auth/transport/handler"
	authusecase "goal_tracker/internal/feature/auth/usecase"
	trackerhandler "goal_tracker/internal/feature/tracker/transport/handler"
	trackerusecase "goal_tracker/internal/feature/tracker/usecase"
	"goal_tracker/internal/platform/config"
	"goal_tracker/internal/platform/db"
	platformhandler "goal_tracker/internal/platform/http/handler"
	jwtmw "goal_tracker/internal/platform/jwt"
	"goal_tracker/internal/shared/ratelimiter"
)

const (
	maxLoginFailures   = 5
	loginFailureWindow = 15 * time.Minute
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth          *authhandler.AuthHandler
	Tracker       *trackerhandler.TrackerHandler
	Authenticator jwtmw.Authenticator
	Health        gin.HandlerFunc
}

// NewHandlers builds the repositories, usecases and handlers from cfg.
// rdb may be nil, in which case nothing is cached.
func NewHandlers(cfg config.Config, store *db.Store, rdb *redis.Client, hasher *authusecase.PasswordHasher) *Handlers {
	// Repository
	userRepo := authadapters.NewUserSQL(store)
	trackerRepo := NewTrackerRepository(rdb, store, cfg.TracksCacheTTL)

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, hasher)
	trackerUC := trackerusecase.NewTrackerUsecase(trackerRepo)

	// Handler
	limiter := ratelimiter.NewAttemptLimiter(maxLoginFailures, loginFailureWindow)
	return &Handlers{
		Auth:          authhandler.NewAuthHandler(authUC, limiter),
		Tracker:       trackerhandler.NewTrackerHandler(trackerUC),
		Authenticator: authUC,
		Health:        platformhandler.Health(store),
	}
}
