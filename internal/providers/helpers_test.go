package providers

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// flakeyProvider fails the first `failures` calls of each kind.
type flakeyProvider struct {
	failures int
	err      error
	calls    atomic.Int32
}

func (f *flakeyProvider) fail() error {
	if int(f.calls.Add(1)) <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("boom")
	}
	return nil
}

func (f *flakeyProvider) FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []teams.Team{{ID: 1, Name: "ok"}}, nil
}

func (f *flakeyProvider) FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []games.Game{{ID: 7}}, nil
}
