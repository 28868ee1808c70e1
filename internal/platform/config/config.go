// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"goal_tracker/internal/platform/db"
)

const (
	// EnvProduction is the APP_ENV value that enables production checks.
	EnvProduction = "production"

	devJWTSecret = "dev-secret-change-me"
)

// Config is the process configuration. It is built once at startup and passed
// to constructors; nothing below cmd/ reads the environment directly.
type Config struct {
	AppEnv         string
	Port           string
	JWTSecret      string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	SeedDemoData   bool
	TracksCacheTTL time.Duration

	DB    db.Config
	Redis RedisConfig
}

// RedisConfig holds the optional Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool { return r.Host != "" }

// Addr returns host:port, defaulting the port to 6379.
func (r RedisConfig) Addr() string {
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool { return c.AppEnv == EnvProduction }

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		AppEnv: getenv("APP_ENV", "development"),
		Port:   getenv("PORT", "5000"),
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET is not set; using the development secret. Set a strong secret in production.")
		cfg.JWTSecret = devJWTSecret
	}

	var err error
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.TracksCacheTTL, err = durationEnv("TRACKS_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SeedDemoData, err = boolEnv("SEED_DEMO_DATA", !cfg.IsProduction()); err != nil {
		return Config{}, err
	}

	if cfg.DB, err = db.LoadConfigFromEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return b, nil
}
