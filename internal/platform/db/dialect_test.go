package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDialect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		driver   Driver
		wantName string
		wantErr  bool
	}{
		{DriverPostgres, "PostgreSQL", false},
		{DriverSQLite, "SQLite", false},
		{Driver("mysql"), "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.driver), func(t *testing.T) {
			t.Parallel()

			d, err := NewDialect(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestSchemaStatements_CoverAllTables(t *testing.T) {
	t.Parallel()

	for _, d := range []Dialect{postgresDialect{}, sqliteDialect{}} {
		t.Run(d.Name(), func(t *testing.T) {
			t.Parallel()

			ddl := strings.Join(d.SchemaStatements(), "\n")
			for _, table := range []string{"users", "tracks", "goals", "tasks"} {
				assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+table+" ")
			}
			assert.NotContains(t, ddl, "?", "DDL must not contain parameter markers")
		})
	}

	assert.Contains(t, strings.Join(postgresDialect{}.SchemaStatements(), ""), "SERIAL PRIMARY KEY")
	assert.Contains(t, strings.Join(sqliteDialect{}.SchemaStatements(), ""), "INTEGER PRIMARY KEY AUTOINCREMENT")
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	pgUnique := &pgconn.PgError{Code: "23505"}
	pgOther := &pgconn.PgError{Code: "23503"}
	sqliteUnique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	sqliteFK := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.True(t, postgresDialect{}.IsUniqueViolation(fmt.Errorf("insert: %w", pgUnique)))
	assert.False(t, postgresDialect{}.IsUniqueViolation(pgOther))
	assert.False(t, postgresDialect{}.IsUniqueViolation(errors.New("boom")))

	assert.True(t, sqliteDialect{}.IsUniqueViolation(fmt.Errorf("insert: %w", sqliteUnique)))
	assert.False(t, sqliteDialect{}.IsUniqueViolation(sqliteFK))
	assert.False(t, sqliteDialect{}.IsUniqueViolation(errors.New("boom")))
}
