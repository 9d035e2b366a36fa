package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/T-Systems-MMS/yalog4ts/store"
)

// Store implements store.Store using Redis strings.
type Store struct {
	client *redis.Client
	prefix string
	ctx    context.Context
}

var _ store.Store = (*Store)(nil)

// Options configuration for the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // Key prefix, default "yalog:"
}

// NewStore creates a new Redis-backed store.
func NewStore(opts Options) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "yalog:"
	}

	return &Store{
		client: client,
		prefix: prefix,
		// The store contract is synchronous and non-cancellable, so
		// commands run against a background context.
		ctx: context.Background(),
	}
}

// NewStoreWithClient creates a store on an existing client. Useful for
// sharing a connection or testing against miniredis.
func NewStoreWithClient(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "yalog:"
	}
	return &Store{client: client, prefix: prefix, ctx: context.Background()}
}

func (s *Store) storeKey(key string) string {
	return s.prefix + key
}

// Get returns the value stored under key, or store.ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	v, err := s.client.Get(s.ctx, s.storeKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("failed to get key %q from redis: %w", key, err)
	}
	return v, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	if err := s.client.Set(s.ctx, s.storeKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q in redis: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *Store) Remove(key string) error {
	if err := s.client.Del(s.ctx, s.storeKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to remove key %q from redis: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
