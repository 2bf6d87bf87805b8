package hockeyapi

import (
	"strings"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
	"github.com/preston-bernstein/hockey-bracket-service/internal/timeutil"
)

func mapStanding(s standingResponse) teams.Team {
	team := teams.Team{
		ID:    s.Team.ID,
		Name:  strings.TrimSpace(s.Team.Name),
		Group: strings.TrimSpace(s.Group),
		Logo:  s.Team.Logo,
	}
	if s.Postseason != nil {
		team.Postseason = teams.PostseasonMarker(strings.TrimSpace(*s.Postseason))
	}
	return team
}

// mapGame canonicalizes dates so games sort chronologically as strings.
func mapGame(g gameResponse) games.Game {
	date, clock := timeutil.SplitTimestamp(g.Date)
	if t := strings.TrimSpace(g.Time); t != "" {
		clock = t
	}
	return games.Game{
		ID:            g.ID,
		HomeTeam:      mapTeamRef(g.HomeTeam),
		VisitingTeam:  mapTeamRef(g.VisitingTeam),
		Status:        mapStatus(g.Status),
		HomeScore:     g.HomeScore,
		VisitingScore: g.VisitingScore,
		Date:          date,
		Time:          clock,
	}
}

func mapTeamRef(t teamResponse) games.TeamRef {
	return games.TeamRef{
		ID:   t.ID,
		Name: strings.TrimSpace(t.Name),
		Logo: t.Logo,
	}
}

// mapStatus folds the upstream's long and short status labels into the three lifecycle states.
func mapStatus(status string) games.GameStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "final", "finished", "ft", "aot", "ap", "after over time", "after penalties", "completed":
		return games.StatusCompleted
	case "live", "in progress", "p1", "p2", "p3", "ot", "pt", "bt", "break time", "intermission":
		return games.StatusLive
	default:
		return games.StatusUpcoming
	}
}
