package db

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"goal_tracker/internal/shared/apperr"
)

// Querier hands out gorm handles bound to either the pool or an open transaction.
type Querier interface {
	// DB returns a gorm session carrying ctx.
	DB(ctx context.Context) *gorm.DB
	// Dialect returns the backend dialect the querier is bound to.
	Dialect() Dialect
}

// conn binds a *gorm.DB (pool or transaction) to its dialect.
type conn struct {
	db      *gorm.DB
	dialect Dialect
}

func (c *conn) DB(ctx context.Context) *gorm.DB { return c.db.WithContext(ctx) }

func (c *conn) Dialect() Dialect { return c.dialect }

// Store is the dialect-agnostic entry point to the database.
type Store struct {
	sqlDB *sql.DB
	conn
}

var _ Querier = (*Store)(nil)

// NewStore binds an opened gorm connection to its dialect and applies the dialect's pool limits.
func NewStore(gdb *gorm.DB, dialect Dialect) (*Store, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql.DB: %w", err)
	}
	dialect.ConfigurePool(sqlDB)
	return &Store{
		sqlDB: sqlDB,
		conn:  conn{db: gdb, dialect: dialect},
	}, nil
}

// Transaction runs fn inside a transaction. It commits when fn returns nil and rolls back
// when fn returns an error or panics; the connection is returned to the pool either way.
// fn must only use q: with a single-connection pool, going back to the Store deadlocks.
func (s *Store) Transaction(ctx context.Context, fn func(q Querier) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&conn{db: tx, dialect: s.dialect})
	})
	return apperr.Storage(err)
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}
