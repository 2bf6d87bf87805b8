package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Standings    []teams.Team
	Games        []games.Game
	StandingsErr error
	GamesErr     error

	StandingsCalls atomic.Int32
	GamesCalls     atomic.Int32
	// Notify is closed on the first standings fetch.
	Notify     chan struct{}
	notifyOnce sync.Once

	mu          sync.Mutex
	lastTeamIDs []int
}

// FetchStandings returns the configured standings and error while tracking calls.
func (s *StubProvider) FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error) {
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	s.StandingsCalls.Add(1)
	return s.Standings, s.StandingsErr
}

// FetchPlayoffGames returns the configured games and error while tracking the requested team ids.
func (s *StubProvider) FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error) {
	s.GamesCalls.Add(1)
	s.mu.Lock()
	s.lastTeamIDs = append([]int(nil), teamIDs...)
	s.mu.Unlock()
	return s.Games, s.GamesErr
}

// LastTeamIDs returns the team ids passed to the most recent games fetch.
func (s *StubProvider) LastTeamIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.lastTeamIDs...)
}

// UnavailableProvider returns ErrProviderUnavailable for every call.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error) {
	return nil, providers.ErrProviderUnavailable
}
