package config

import (
	"os"
	"time"
)

// CacheConfig controls bracket response caching.
type CacheConfig struct {
	// TTL of zero disables caching.
	TTL      time.Duration
	RedisURL string
}

// Enabled reports whether responses should be cached at all.
func (c CacheConfig) Enabled() bool {
	return c.TTL > 0
}

func loadCache() CacheConfig {
	return CacheConfig{
		TTL:      cacheTTL(),
		RedisURL: envOrDefault(envRedisURL, ""),
	}
}

// cacheTTL accepts "0" as an explicit opt-out, unlike durationEnvOrDefault.
func cacheTTL() time.Duration {
	raw := os.Getenv(envCacheTTL)
	if raw == "0" || raw == "0s" {
		return 0
	}
	return durationEnvOrDefault(envCacheTTL, defaultCacheTTL)
}
