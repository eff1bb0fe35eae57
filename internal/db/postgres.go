package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/courseleads/internal/config"
	"github.com/yigit/courseleads/internal/pkg/helpers"
	"github.com/yigit/courseleads/internal/pkg/logger"
)

// PostgresDB database connection structure
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB creates a new PostgreSQL connection pool
func NewPostgresDB(ctx context.Context, cfg *config.Config) (*PostgresDB, error) {
	return NewPostgresDBWithDSN(ctx, cfg.GetPostgresConnectionString(), PoolOptions{
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
	})
}

// PoolOptions holds the pool settings taken from configuration
type PoolOptions struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime string
	ConnectTimeout  string
}

// NewPostgresDBWithDSN creates a pool for an explicit DSN (used by tests against throwaway databases)
func NewPostgresDBWithDSN(ctx context.Context, dsn string, opts PoolOptions) (*PostgresDB, error) {
	if opts.ConnectTimeout != "" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, helpers.ParseDuration(opts.ConnectTimeout, 10*time.Second))
		defer cancel()
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	if opts.MaxConns > 0 {
		poolConfig.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		poolConfig.MinConns = opts.MinConns
	}
	if opts.MaxConnLifetime != "" {
		poolConfig.MaxConnLifetime = helpers.ParseDuration(opts.MaxConnLifetime, time.Hour)
	}

	// Drop connections that died while idle instead of failing the statement
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// Ping checks that the database is reachable
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// Close closing method
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
