package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/hockey-bracket-service/internal/config"
	"github.com/preston-bernstein/hockey-bracket-service/internal/store"
)

func TestBuildCacheDisabled(t *testing.T) {
	cache, closeFn := buildCache(context.Background(), config.CacheConfig{TTL: 0}, nil)
	if cache != nil {
		t.Fatalf("expected no cache when ttl is zero, got %T", cache)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("expected noop close, got %v", err)
	}
}

func TestBuildCacheDefaultsToMemory(t *testing.T) {
	cache, _ := buildCache(context.Background(), config.CacheConfig{TTL: time.Minute}, nil)
	if _, ok := cache.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", cache)
	}
}

func TestBuildCacheFallsBackOnInvalidRedisURL(t *testing.T) {
	orig := newRedisClient
	defer func() { newRedisClient = orig }()
	newRedisClient = func(string) (*redis.Client, error) { return nil, errors.New("bad url") }

	cache, _ := buildCache(context.Background(), config.CacheConfig{TTL: time.Minute, RedisURL: "nope"}, nil)
	if _, ok := cache.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", cache)
	}
}

func TestBuildCacheFallsBackWhenRedisUnreachable(t *testing.T) {
	cache, closeFn := buildCache(context.Background(), config.CacheConfig{
		TTL:      time.Minute,
		RedisURL: "redis://127.0.0.1:1/0",
	}, nil)
	if _, ok := cache.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", cache)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("expected noop close after fallback, got %v", err)
	}
}
