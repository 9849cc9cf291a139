// Package postgres implements the storage contract over PostgreSQL using
// pgx. Queries are built with squirrel; joins for author display happen in
// the service layer, not here.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecem/goodworks/internal/config"
	"github.com/ecem/goodworks/internal/storage"
)

// Store wraps a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// Open creates a connection pool, verifies it and applies pending migrations
// from migrationsDir.
func Open(ctx context.Context, cfg *config.Config, migrationsDir string) (*Store, error) {
	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	poolConfig.MaxConnLifetime = maxLifetime

	pool, err := pgxpool.NewWithConfig(connCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(connCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	store := &Store{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	if migrationsDir != "" {
		if err := NewMigrator(pool).MigrateFromDirectory(migrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
	}

	return store, nil
}

func (s *Store) Users() storage.UserStore   { return &userStore{s} }
func (s *Store) Works() storage.WorkStore   { return &workStore{s} }
func (s *Store) News() storage.NewsStore    { return &newsStore{s} }
func (s *Store) Events() storage.EventStore { return &eventStore{s} }

// Ping checks the connection pool.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
