package db

import (
	"context"
	"fmt"
)

// EnsureSchema creates the users, tracks, goals and tasks tables and their indexes
// if they do not exist yet. It is safe to run on every start.
//
// Tables created by older deployments keep their nullable columns; the adapters
// read every optional column through a nullable field and fill in the defaults.
func EnsureSchema(ctx context.Context, store *Store) error {
	return store.Transaction(ctx, func(q Querier) error {
		tx := q.DB(ctx)
		for _, stmt := range q.Dialect().SchemaStatements() {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
		}
		return nil
	})
}
