package bracket

import (
	"fmt"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// SeriesStatus is the aggregated state of a best-of series.
type SeriesStatus string

const (
	SeriesUpcoming   SeriesStatus = "UPCOMING"
	SeriesInProgress SeriesStatus = "IN_PROGRESS"
	SeriesCompleted  SeriesStatus = "COMPLETED"
)

// Rank orders statuses COMPLETED < IN_PROGRESS < UPCOMING.
func (s SeriesStatus) Rank() int {
	switch s {
	case SeriesCompleted:
		return 0
	case SeriesInProgress:
		return 1
	default:
		return 2
	}
}

// Series is a head-to-head matchup keyed by the unordered team pair.
// Team1 always carries the lower team id.
type Series struct {
	Team1     teams.Team   `json:"team1"`
	Team2     teams.Team   `json:"team2"`
	Team1Wins int          `json:"team1Wins"`
	Team2Wins int          `json:"team2Wins"`
	Status    SeriesStatus `json:"status"`
	Winner    *teams.Team  `json:"winner,omitempty"`
	Games     []games.Game `json:"games"`
}

// Key returns the canonical "{min}-{max}" pair key.
func (s Series) Key() string {
	return SeriesKey(s.Team1.ID, s.Team2.ID)
}

// IsPlaceholder reports whether both slots are empty sentinels.
func (s Series) IsPlaceholder() bool {
	return s.Team1.IsPlaceholder() && s.Team2.IsPlaceholder()
}

// HasTeam reports whether the team plays in this series.
func (s Series) HasTeam(id int) bool {
	return s.Team1.ID == id || s.Team2.ID == id
}

// SeriesKey canonicalizes a team pair regardless of home/away order.
func SeriesKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// PlaceholderSeries is the empty-slot series used to complete a bracket shape.
func PlaceholderSeries() Series {
	return Series{
		Status: SeriesUpcoming,
		Games:  []games.Game{},
	}
}

// Round is a named stage of one conference's bracket.
type Round struct {
	Name   string   `json:"name"`
	Series []Series `json:"series"`
}

// Bracket is the full playoff tree: conference rounds plus the cross-conference final.
type Bracket struct {
	Eastern []Round `json:"eastern"`
	Western []Round `json:"western"`
	Final   *Series `json:"final,omitempty"`
}

// Response is the payload served to widget renderers.
// Placeholder marks the synthetic no-games bracket, whose win counts are not real data.
type Response struct {
	Bracket     Bracket `json:"bracket"`
	LeagueID    string  `json:"leagueId"`
	Season      string  `json:"season"`
	Placeholder bool    `json:"placeholder,omitempty"`
}
