// Package sqlite provides a store.Store keeping all keys in a single
// SQLite table, a lightweight durable option without a server.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/T-Systems-MMS/yalog4ts/store"
)

// Store implements store.Store using SQLite.
type Store struct {
	db        *sql.DB
	tableName string
}

var _ store.Store = (*Store)(nil)

// Options configuration for the SQLite database.
type Options struct {
	Path      string
	TableName string // Default "yalog_kv"
}

// NewStore opens (or creates) the database and ensures the kv table
// exists.
func NewStore(opts Options) (*Store, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "yalog_kv"
	}

	s := &Store{db: db, tableName: tableName}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`, s.tableName)

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or store.ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	query := fmt.Sprintf("SELECT value FROM %s WHERE name = ?", s.tableName)

	var value string
	err := s.db.QueryRow(query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
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
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value
	`, s.tableName)

	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *Store) Remove(key string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE name = ?", s.tableName)
	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
