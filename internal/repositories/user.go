package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// upsertUser inserts the user or touches updated_at when it already exists
func upsertUser(ctx context.Context, q execer, userID string) error {
	query := `
		INSERT INTO users (user_id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()`

	if _, err := q.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}
