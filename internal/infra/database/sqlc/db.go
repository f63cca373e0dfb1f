package sqlc

import (
	"context"
	"database/sql"
	"fmt"

	"task-list-api/internal/infra/database"

	_ "github.com/lib/pq"
)

// Open connects to Postgres through lib/pq and verifies the connection.
func Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", database.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}
