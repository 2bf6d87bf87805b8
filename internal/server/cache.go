package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/hockey-bracket-service/internal/config"
	"github.com/preston-bernstein/hockey-bracket-service/internal/logging"
	"github.com/preston-bernstein/hockey-bracket-service/internal/store"
)

var newRedisClient = store.NewRedisClient

// buildCache picks Redis when REDIS_URL is set and reachable, memory otherwise.
// The returned close func is never nil.
func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (store.Cache, func() error) {
	noop := func() error { return nil }
	if !cfg.Enabled() {
		logging.Info(logger, "bracket cache disabled")
		return nil, noop
	}
	if cfg.RedisURL == "" {
		return store.NewMemoryStore(), noop
	}

	client, err := newRedisClient(cfg.RedisURL)
	if err != nil {
		logging.Warn(logger, "invalid redis url, using memory cache", "err", err)
		return store.NewMemoryStore(), noop
	}
	redisStore := store.NewRedisStore(client, "")

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := redisStore.Ping(pingCtx); err != nil {
		logging.Warn(logger, "redis unreachable, using memory cache", "err", err)
		_ = client.Close()
		return store.NewMemoryStore(), noop
	}

	logging.Info(logger, "bracket cache using redis", slog.String(logging.FieldCache, "redis"))
	return redisStore, client.Close
}
