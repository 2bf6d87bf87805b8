package store

import (
	"context"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

// Cache holds reconstructed bracket responses by key.
type Cache interface {
	// Get returns the cached response and whether it was present and unexpired.
	Get(ctx context.Context, key string) (bracket.Response, bool, error)
	// Set stores resp for ttl; a non-positive ttl stores nothing.
	Set(ctx context.Context, key string, resp bracket.Response, ttl time.Duration) error
	// Delete drops a cached response.
	Delete(ctx context.Context, key string) error
}

// BracketKey builds the cache key for a league season.
func BracketKey(leagueID, season string) string {
	return "playoffs:" + leagueID + ":" + season
}
