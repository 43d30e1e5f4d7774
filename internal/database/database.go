package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danilom/inkbase/internal/config"
)

func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the document tables. One JSONB doc per row; no unique
// index on user email — uniqueness is checked at registration time only.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (id text PRIMARY KEY, doc jsonb NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS workspaces (id text PRIMARY KEY, doc jsonb NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS pages (id text PRIMARY KEY, doc jsonb NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS database_records (id text PRIMARY KEY, doc jsonb NOT NULL)`,
		`CREATE INDEX IF NOT EXISTS users_doc_idx ON users USING gin (doc jsonb_path_ops)`,
		`CREATE INDEX IF NOT EXISTS workspaces_doc_idx ON workspaces USING gin (doc jsonb_path_ops)`,
		`CREATE INDEX IF NOT EXISTS pages_doc_idx ON pages USING gin (doc jsonb_path_ops)`,
		`CREATE INDEX IF NOT EXISTS database_records_doc_idx ON database_records USING gin (doc jsonb_path_ops)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
