package playoffs

import (
	"fmt"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

func team(id int, group string, marker ...string) teams.Team {
	t := teams.Team{ID: id, Name: fmt.Sprintf("Team %d", id), Group: group}
	if len(marker) > 0 {
		t.Postseason = teams.PostseasonMarker(marker[0])
	}
	return t
}

func east(id int, marker ...string) teams.Team { return team(id, "Eastern/Atlantic", marker...) }
func west(id int, marker ...string) teams.Team { return team(id, "Western/Pacific", marker...) }

func completed(id, home, away, homeScore, awayScore int, date string) games.Game {
	return games.Game{
		ID:            id,
		HomeTeam:      games.TeamRef{ID: home, Name: fmt.Sprintf("Team %d", home)},
		VisitingTeam:  games.TeamRef{ID: away, Name: fmt.Sprintf("Team %d", away)},
		Status:        games.StatusCompleted,
		HomeScore:     games.Score(homeScore),
		VisitingScore: games.Score(awayScore),
		Date:          date,
		Time:          "19:00",
	}
}

func upcoming(id, home, away int, date string) games.Game {
	return games.Game{
		ID:           id,
		HomeTeam:     games.TeamRef{ID: home},
		VisitingTeam: games.TeamRef{ID: away},
		Status:       games.StatusUpcoming,
		Date:         date,
		Time:         "19:00",
	}
}

// sweep returns four completed games in which winner beats loser at home.
func sweep(firstID, winner, loser int, day int) []games.Game {
	out := make([]games.Game, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, completed(firstID+i, winner, loser, 3, 1, fmt.Sprintf("2024-04-%02d", day+i)))
	}
	return out
}

// seriesOf builds a series directly with the given status and optional winner.
func seriesOf(t1, t2 teams.Team, status bracket.SeriesStatus, winner *teams.Team, startDate string) bracket.Series {
	s := bracket.Series{
		Team1:  t1,
		Team2:  t2,
		Status: status,
		Winner: winner,
		Games:  []games.Game{upcoming(0, t1.ID, t2.ID, startDate)},
	}
	if winner != nil {
		if winner.ID == t1.ID {
			s.Team1Wins = 4
		} else {
			s.Team2Wins = 4
		}
	}
	return s
}

func keys(list []bracket.Series) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Key()
	}
	return out
}

func sameKeys(got []bracket.Series, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, k := range keys(got) {
		if k != want[i] {
			return false
		}
	}
	return true
}

func ptr(t teams.Team) *teams.Team { return &t }
