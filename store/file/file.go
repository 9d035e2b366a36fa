// Package file provides a store.Store keeping one file per key inside
// a directory. Writes go through a temporary file and a rename, so a
// crash mid-write never leaves a half-written value behind.
package file

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/T-Systems-MMS/yalog4ts/store"
)

// Store implements store.Store on top of a directory.
type Store struct {
	dir string
}

var _ store.Store = (*Store)(nil)

// NewStore creates a file store rooted at dir, creating the directory
// if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// path maps a key to a file name. Keys are escaped so arbitrary
// strings stay within the store directory.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key))
}

// Get returns the value stored under key, or store.ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(b), nil
}

// Set stores value under key atomically.
func (s *Store) Set(key, value string) error {
	tmp := filepath.Join(s.dir, "."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
