package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"goal_tracker/internal/app/di"
	"goal_tracker/internal/app/router"
	"goal_tracker/internal/app/seed"
	authusecase "goal_tracker/internal/feature/auth/usecase"
	"goal_tracker/internal/platform/config"
	"goal_tracker/internal/platform/db"
	infraredis "goal_tracker/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; the real environment wins.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	setupLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// db
	store, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx, store); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	hasher := authusecase.NewPasswordHasher(0)
	if cfg.SeedDemoData {
		if _, err := seed.SeedIfEmpty(ctx, store, hasher); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	handlers := di.NewHandlers(cfg, store, rdb, hasher)
	r := router.NewRouter(handlers, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv, "database", store.Dialect().Name())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server exited: %v", err)
	}
	slog.Info("server stopped")
}

// setupLogger installs a JSON handler in production and a text handler otherwise.
func setupLogger(appEnv string) {
	var h slog.Handler
	if appEnv == config.EnvProduction {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(h))
}
