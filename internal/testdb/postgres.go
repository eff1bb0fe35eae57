// Package testdb starts a throwaway PostgreSQL for integration tests.
package testdb

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yigit/courseleads/internal/db"
)

// Tables lists every application table, children first
var Tables = []string{"comments", "leads", "courses"}

var (
	sharedContainer *PostgresContainer
	sharedErr       error
	sharedOnce      sync.Once
)

// PostgresContainer wraps the postgres testcontainer and a pool connected to it
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DB        *db.PostgresDB
	DSN       string
}

// Pool returns the connection pool of the container
func (pc *PostgresContainer) Pool() *pgxpool.Pool {
	return pc.DB.Pool
}

// SetupSharedPostgres starts one PostgreSQL container per test binary and applies the schema.
// Tests using it share state and must not run in parallel; call CleanupTables between cases.
// Integration tests are skipped under -short.
//
// Usage:
//
//	func TestLeadRepository(t *testing.T) {
//	    pg := testdb.SetupSharedPostgres(t)
//
//	    t.Run("search", func(t *testing.T) {
//	        testdb.CleanupTables(t, pg.Pool())
//	        // ... test
//	    })
//	}
func SetupSharedPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	sharedOnce.Do(func() {
		sharedContainer, sharedErr = startPostgres(context.Background())
	})
	require.NoError(t, sharedErr, "failed to start postgres container")

	return sharedContainer
}

func startPostgres(ctx context.Context) (*PostgresContainer, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("courseleads_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	database, err := db.NewPostgresDBWithDSN(ctx, connStr, db.PoolOptions{MaxConns: 5, ConnectTimeout: "30s"})
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx, database.Pool); err != nil {
		database.Close()
		return nil, err
	}

	// The container itself is reaped by testcontainers when the test binary exits.
	return &PostgresContainer{
		Container: pgContainer,
		DB:        database,
		DSN:       connStr,
	}, nil
}

// CleanupTables truncates the given tables (all application tables when none are given)
// and restarts their ID sequences.
func CleanupTables(t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = Tables
	}

	ctx := context.Background()
	for _, table := range tables {
		_, err := pool.Exec(ctx, "TRUNCATE "+table+" RESTART IDENTITY CASCADE")
		require.NoError(t, err, "failed to truncate table: %s", table)
	}
}
