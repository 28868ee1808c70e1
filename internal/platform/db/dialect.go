package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Driver names a supported database backend.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Dialect isolates what gorm's dialectors leave to the application: the DDL,
// unique-violation detection and pool limits.
type Dialect interface {
	// Name is the human-readable backend name reported by the health endpoint.
	Name() string
	// Dialector returns the gorm dialector used to open a connection pool.
	Dialector(dsn string) gorm.Dialector
	// SchemaStatements returns the idempotent DDL for the four tables.
	SchemaStatements() []string
	// IsUniqueViolation reports whether err is a unique-constraint failure.
	IsUniqueViolation(err error) bool
	// ConfigurePool applies backend-specific pool limits.
	ConfigurePool(sqlDB *sql.DB)
}

// NewDialect returns the dialect for driver.
func NewDialect(driver Driver) (Dialect, error) {
	switch driver {
	case DriverPostgres:
		return postgresDialect{}, nil
	case DriverSQLite:
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "PostgreSQL" }

func (postgresDialect) Dialector(dsn string) gorm.Dialector { return postgres.Open(dsn) }

func (postgresDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS tracks (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users (id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			color VARCHAR(7) NOT NULL DEFAULT '#3B82F6',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id SERIAL PRIMARY KEY,
			track_id INTEGER NOT NULL REFERENCES tracks (id),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			target_value INTEGER NOT NULL DEFAULT 1,
			current_value INTEGER NOT NULL DEFAULT 0,
			unit VARCHAR(50) NOT NULL DEFAULT 'times',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			goal_id INTEGER NOT NULL REFERENCES goals (id),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tracks_user_id ON tracks (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_track_id ON goals (track_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_goal_id ON tasks (goal_id)`,
	}
}

func (postgresDialect) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (postgresDialect) ConfigurePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "SQLite" }

func (sqliteDialect) Dialector(dsn string) gorm.Dialector { return sqlite.Open(dsn) }

func (sqliteDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS tracks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users (id),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '#3B82F6',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			track_id INTEGER NOT NULL REFERENCES tracks (id),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			target_value INTEGER NOT NULL DEFAULT 1,
			current_value INTEGER NOT NULL DEFAULT 0,
			unit TEXT NOT NULL DEFAULT 'times',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			goal_id INTEGER NOT NULL REFERENCES goals (id),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tracks_user_id ON tracks (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_track_id ON goals (track_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_goal_id ON tasks (goal_id)`,
	}
}

func (sqliteDialect) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// ConfigurePool pins SQLite to a single connection: writers serialize anyway,
// and an in-memory database exists only on the connection that created it.
func (sqliteDialect) ConfigurePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(1)
}
