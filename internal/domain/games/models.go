package games

import "sort"

// GameStatus mirrors the upstream lifecycle states for a game.
type GameStatus string

const (
	StatusUpcoming  GameStatus = "UPCOMING"
	StatusLive      GameStatus = "LIVE"
	StatusCompleted GameStatus = "COMPLETED"
)

// TeamRef identifies a team inside a game payload.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Game is a single postseason game. Scores stay nil until the upstream reports them.
type Game struct {
	ID            int        `json:"id"`
	HomeTeam      TeamRef    `json:"homeTeam"`
	VisitingTeam  TeamRef    `json:"visitingTeam"`
	Status        GameStatus `json:"status"`
	HomeScore     *int       `json:"homeScore"`
	VisitingScore *int       `json:"visitingScore"`
	Date          string     `json:"date"`
	Time          string     `json:"time,omitempty"`
}

// WinnerID returns the id of the winning side for a completed game with both scores.
// Ties and unfinished games have no determinable winner.
func (g Game) WinnerID() (int, bool) {
	if g.Status != StatusCompleted || g.HomeScore == nil || g.VisitingScore == nil {
		return 0, false
	}
	switch {
	case *g.HomeScore > *g.VisitingScore:
		return g.HomeTeam.ID, true
	case *g.VisitingScore > *g.HomeScore:
		return g.VisitingTeam.ID, true
	default:
		return 0, false
	}
}

// Involves reports whether the team plays in this game.
func (g Game) Involves(teamID int) bool {
	return g.HomeTeam.ID == teamID || g.VisitingTeam.ID == teamID
}

// SortByStart returns a copy of list ordered by date then time, keeping input order for ties.
func SortByStart(list []Game) []Game {
	out := make([]Game, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// Score builds a score pointer.
func Score(v int) *int {
	return &v
}
