// Package postgres provides a store.Store keeping all keys in a
// single PostgreSQL table, for deployments that already run Postgres
// and want shared, durable logging configuration.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/T-Systems-MMS/yalog4ts/store"
)

// DBPool defines the interface for the database connection pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Store implements store.Store using PostgreSQL.
type Store struct {
	pool      DBPool
	tableName string
	ctx       context.Context
}

var _ store.Store = (*Store)(nil)

// Options configuration for the Postgres connection.
type Options struct {
	ConnString string
	TableName  string // Default "yalog_kv"
}

// NewStore creates a new Postgres-backed store and ensures the kv
// table exists.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	pool, err := pgxpool.New(ctx, opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	s := NewStoreWithPool(pool, opts.TableName)
	if err := s.InitSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewStoreWithPool creates a store on an existing pool.
// Useful for testing with mocks.
func NewStoreWithPool(pool DBPool, tableName string) *Store {
	if tableName == "" {
		tableName = "yalog_kv"
	}
	return &Store{
		pool:      pool,
		tableName: tableName,
		// The store contract is synchronous and non-cancellable, so
		// statements run against a background context.
		ctx: context.Background(),
	}
}

// InitSchema creates the necessary table if it doesn't exist.
func (s *Store) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`, s.tableName)

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Get returns the value stored under key, or store.ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	query := fmt.Sprintf("SELECT value FROM %s WHERE name = $1", s.tableName)

	var value string
	err := s.pool.QueryRow(s.ctx, query, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET
			value = EXCLUDED.value
	`, s.tableName)

	if _, err := s.pool.Exec(s.ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *Store) Remove(key string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE name = $1", s.tableName)
	if _, err := s.pool.Exec(s.ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
