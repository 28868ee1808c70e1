package db

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultDatabaseURL is used when DATABASE_URL is not set.
const DefaultDatabaseURL = "sqlite:///goal_tracker.db"

// Config holds the database connection settings.
type Config struct {
	Driver         Driver
	DSN            string
	ConnectTimeout time.Duration
}

// ParseDatabaseURL selects the backend from a connection URL.
// postgres:// and postgresql:// URLs are passed to the PostgreSQL driver unchanged;
// sqlite:// URLs and bare paths become SQLite file names.
func ParseDatabaseURL(url string) (Driver, string, error) {
	url = strings.TrimSpace(url)
	switch {
	case url == "":
		return "", "", fmt.Errorf("database url is empty")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite:///"):
		return sqlitePath(strings.TrimPrefix(url, "sqlite:///"))
	case strings.HasPrefix(url, "sqlite://"):
		return sqlitePath(strings.TrimPrefix(url, "sqlite://"))
	case strings.Contains(url, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme in %q", redact(url))
	default:
		return sqlitePath(url)
	}
}

func sqlitePath(path string) (Driver, string, error) {
	if path == "" {
		return "", "", fmt.Errorf("sqlite database path is empty")
	}
	return DriverSQLite, path, nil
}

// redact drops everything before the host so credentials never reach logs.
func redact(url string) string {
	if i := strings.LastIndex(url, "@"); i >= 0 {
		if j := strings.Index(url, "://"); j >= 0 && j < i {
			return url[:j+3] + "***" + url[i:]
		}
	}
	return url
}

// LoadConfigFromEnv reads DATABASE_URL and DB_CONNECT_TIMEOUT.
func LoadConfigFromEnv() (Config, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = DefaultDatabaseURL
	}
	driver, dsn, err := ParseDatabaseURL(url)
	if err != nil {
		return Config{}, err
	}

	timeout := 60 * time.Second
	if raw := os.Getenv("DB_CONNECT_TIMEOUT"); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_CONNECT_TIMEOUT %q: %w", raw, err)
		}
	}

	return Config{Driver: driver, DSN: dsn, ConnectTimeout: timeout}, nil
}

// Redacted returns the DSN with credentials masked, for logging.
func (c Config) Redacted() string {
	return redact(c.DSN)
}
