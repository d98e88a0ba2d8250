package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/diagramlab/stencil/pkg/document"
)

// redisKeyPrefix namespaces document keys so the store can share a Redis
// instance with other applications.
const redisKeyPrefix = "stencil:doc:"

// RedisStore persists documents as JSON values in Redis.
// Suitable for multi-instance deployments of the HTTP API.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig configures a Redis-backed store.
type RedisConfig struct {
	Addr     string        // host:port (e.g., "localhost:6379")
	Password string        // optional
	DB       int           // database number
	TTL      time.Duration // optional expiration; 0 keeps documents forever
}

// NewRedisStore creates a Redis-backed store and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Get retrieves a document by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (document.Document, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return document.Document{}, ErrNotFound
	}
	if err != nil {
		return document.Document{}, fmt.Errorf("redis get: %w", err)
	}

	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document.Document{}, fmt.Errorf("decode document %s: %w", id, err)
	}
	return doc, nil
}

// Set stores a document under the given ID.
func (s *RedisStore) Set(ctx context.Context, id string, doc document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", id, err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a document.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// List returns the IDs of all stored documents using SCAN, so it never
// blocks the server the way KEYS would.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, redisKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, redisKeyPrefix))
		}
		if next == 0 {
			return ids, nil
		}
		cursor = next
	}
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
