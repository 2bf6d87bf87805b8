package providers

import (
	"context"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// StandingsProvider fetches the standings table for a league season.
// Each returned team carries its conference grouping and, when the upstream
// knows it, a postseason marker.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error)
}

// GameProvider fetches postseason games involving the given teams.
type GameProvider interface {
	FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	StandingsProvider
	GameProvider
}
