// Package dbtest provides an in-memory SQLite store with the schema applied, for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"goal_tracker/internal/platform/db"
)

// NewStore opens a private in-memory database, creates the schema, and closes it when t ends.
func NewStore(t testing.TB) *db.Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to initialize test database")

	dialect, err := db.NewDialect(db.DriverSQLite)
	require.NoError(t, err)

	store, err := db.NewStore(gdb, dialect)
	require.NoError(t, err, "failed to build store")
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, db.EnsureSchema(context.Background(), store), "failed to create schema")
	return store
}

// Count returns the number of rows in table.
func Count(t testing.TB, store *db.Store, table string) int {
	t.Helper()

	var n int64
	require.NoError(t, store.DB(context.Background()).Table(table).Count(&n).Error)
	return int(n)
}

// Exec runs raw statements against store, for tests that need to shape the tables by hand.
func Exec(t testing.TB, store *db.Store, stmts ...string) {
	t.Helper()

	for _, stmt := range stmts {
		require.NoError(t, store.DB(context.Background()).Exec(stmt).Error, stmt)
	}
}

// legacyTables is the layout created by the first release of the service: optional
// columns are nullable and carry no NOT NULL constraint.
var legacyTables = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE tracks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		color TEXT DEFAULT '#3B82F6',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE goals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		track_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		target_value INTEGER DEFAULT 1,
		current_value INTEGER DEFAULT 0,
		unit TEXT DEFAULT 'times',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		goal_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		completed BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// NewLegacyStore is NewStore over tables in the first-release layout. EnsureSchema
// runs afterwards, as it would on startup against an existing database.
func NewLegacyStore(t testing.TB) *db.Store {
	t.Helper()

	store := NewStore(t)
	Exec(t, store, "DROP TABLE tasks", "DROP TABLE goals", "DROP TABLE tracks", "DROP TABLE users")
	Exec(t, store, legacyTables...)
	require.NoError(t, db.EnsureSchema(context.Background(), store), "failed to re-run schema")
	return store
}
