// Package db is the data access layer. It opens the gorm connection pool for the
// configured backend, hands out pool or transaction handles, and manages the schema.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Open connects to the configured backend, retrying until cfg.ConnectTimeout elapses,
// and returns a Store bound to the backend's dialect.
func Open(cfg Config) (*Store, error) {
	dialect, err := NewDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	opener := func(dsn string) (*gorm.DB, error) {
		return gorm.Open(dialect.Dialector(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}

	gdb, err := ConnectWithRetry(cfg.DSN, cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}

	store, err := NewStore(gdb, dialect)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "driver", dialect.Name(), "dsn", cfg.Redacted())
	return store, nil
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener func(dsn string) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		gdb, err := opener(dsn)
		if err == nil {
			return gdb, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", timeout, err)
		}
		slog.Warn("database connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}
