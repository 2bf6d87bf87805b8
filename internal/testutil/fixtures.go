package testutil

import (
	"fmt"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// Team returns a standings row in the given conference with no postseason marker.
func Team(id int, conference string) teams.Team {
	return teams.Team{
		ID:    id,
		Name:  fmt.Sprintf("Team %d", id),
		Group: conference + "/Division",
	}
}

// Standings returns perConference teams for each conference, numbered from 1 in order.
func Standings(perConference int, conferences ...string) []teams.Team {
	out := make([]teams.Team, 0, perConference*len(conferences))
	id := 1
	for _, conf := range conferences {
		for i := 0; i < perConference; i++ {
			out = append(out, Team(id, conf))
			id++
		}
	}
	return out
}

// CompletedGame returns a finished game won by winner, hosted by home.
func CompletedGame(id, home, visiting, winner int, date string) games.Game {
	homeScore, visitingScore := 2, 1
	if winner == visiting {
		homeScore, visitingScore = 1, 2
	}
	return games.Game{
		ID:            id,
		HomeTeam:      games.TeamRef{ID: home, Name: fmt.Sprintf("Team %d", home)},
		VisitingTeam:  games.TeamRef{ID: visiting, Name: fmt.Sprintf("Team %d", visiting)},
		Status:        games.StatusCompleted,
		HomeScore:     games.Score(homeScore),
		VisitingScore: games.Score(visitingScore),
		Date:          date,
	}
}

// Sweep returns four completed games won by winner starting at firstID.
func Sweep(firstID, winner, loser int, date string) []games.Game {
	out := make([]games.Game, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, CompletedGame(firstID+i, winner, loser, winner, date))
	}
	return out
}
