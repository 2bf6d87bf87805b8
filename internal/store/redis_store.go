package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

const defaultRedisPrefix = "hockey-bracket:"

// RedisStore shares cached bracket responses across instances through Redis.
type RedisStore struct {
	client redis.Cmdable
	prefix string
}

// NewRedisStore wraps an existing client. An empty prefix uses the service default.
func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// Get returns the cached response, treating a missing key as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) (bracket.Response, bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return bracket.Response{}, false, nil
	}
	if err != nil {
		return bracket.Response{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var resp bracket.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return bracket.Response{}, false, fmt.Errorf("decode cached bracket %s: %w", key, err)
	}
	return resp, true, nil
}

// Set stores the JSON-encoded response with an expiry.
func (s *RedisStore) Set(ctx context.Context, key string, resp bracket.Response, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode bracket %s: %w", key, err)
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete drops a cached response.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
