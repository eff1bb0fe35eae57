package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/courseleads/internal/pkg/logger"
)

//go:embed schema.sql
var schemaSQL string

// schemaLockKey serialises concurrent schema bootstraps from several instances
const schemaLockKey int64 = 7_301_042

// EnsureSchema creates the application tables when they do not exist yet.
// Every statement is idempotent so it is safe to run on each start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start schema transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", schemaLockKey); err != nil {
		return fmt.Errorf("failed to acquire schema lock: %w", err)
	}

	// No arguments, so pgx sends the whole file over the simple protocol
	if _, err := tx.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("error occurred while applying schema: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}

	logger.Info().Msg("Database schema is up to date")
	return nil
}
