package testutil

import (
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/app/brackets"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/playoffs"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
	"github.com/preston-bernstein/hockey-bracket-service/internal/store"
)

// NewBracketService builds a bracket service over provider with an in-memory cache
// and a seeded placeholder source.
func NewBracketService(provider providers.DataProvider) *brackets.Service {
	return brackets.NewService(provider, store.NewMemoryStore(), brackets.Options{
		Format:        bracket.StandardFormat,
		CacheTTL:      time.Minute,
		Reconstructor: playoffs.NewSeededReconstructor(1),
	}, nil, nil)
}
