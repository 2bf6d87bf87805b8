package playoffs

import (
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// AggregateSeries groups games into head-to-head series between eligible teams.
// Series come back in the order their first game is played. Games naming a
// team outside eligible are skipped.
func AggregateSeries(eligible []teams.Team, list []games.Game, format bracket.Format) []bracket.Series {
	roster := BackfillLogos(eligible, list)
	ordered := games.SortByStart(list)

	index := make(map[string]int)
	out := make([]bracket.Series, 0)

	for _, g := range ordered {
		key := bracket.SeriesKey(g.HomeTeam.ID, g.VisitingTeam.ID)
		pos, ok := index[key]
		if !ok {
			s, resolved := newSeries(roster, g)
			if !resolved {
				continue
			}
			out = append(out, s)
			pos = len(out) - 1
			index[key] = pos
		}
		out[pos] = addGame(out[pos], g, format.WinsToClinch)
	}
	return out
}

func newSeries(roster []teams.Team, g games.Game) (bracket.Series, bool) {
	lo, hi := g.HomeTeam.ID, g.VisitingTeam.ID
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return bracket.Series{}, false
	}
	team1, ok1 := teams.FindByID(roster, lo)
	team2, ok2 := teams.FindByID(roster, hi)
	if !ok1 || !ok2 {
		return bracket.Series{}, false
	}
	return bracket.Series{
		Team1:  team1,
		Team2:  team2,
		Status: bracket.SeriesUpcoming,
		Games:  []games.Game{},
	}, true
}

func addGame(s bracket.Series, g games.Game, winsToClinch int) bracket.Series {
	gamesCopy := make([]games.Game, len(s.Games), len(s.Games)+1)
	copy(gamesCopy, s.Games)
	s.Games = append(gamesCopy, g)

	if winnerID, ok := g.WinnerID(); ok {
		if winnerID == s.Team1.ID {
			s.Team1Wins++
		} else {
			s.Team2Wins++
		}
	}
	return withStatus(s, winsToClinch)
}

func withStatus(s bracket.Series, winsToClinch int) bracket.Series {
	s.Winner = nil
	switch {
	case s.Team1Wins >= winsToClinch && s.Team1Wins >= s.Team2Wins:
		s.Status = bracket.SeriesCompleted
		winner := s.Team1
		s.Winner = &winner
	case s.Team2Wins >= winsToClinch:
		s.Status = bracket.SeriesCompleted
		winner := s.Team2
		s.Winner = &winner
	case anyCompleted(s.Games):
		s.Status = bracket.SeriesInProgress
	default:
		s.Status = bracket.SeriesUpcoming
	}
	return s
}

func anyCompleted(list []games.Game) bool {
	for _, g := range list {
		if g.Status == games.StatusCompleted {
			return true
		}
	}
	return false
}

// BackfillLogos copies logos carried by game payloads onto teams that lack one.
func BackfillLogos(list []teams.Team, gameList []games.Game) []teams.Team {
	logos := make(map[int]string)
	for _, g := range gameList {
		for _, ref := range []games.TeamRef{g.HomeTeam, g.VisitingTeam} {
			if ref.Logo == "" {
				continue
			}
			if _, ok := logos[ref.ID]; !ok {
				logos[ref.ID] = ref.Logo
			}
		}
	}
	out := make([]teams.Team, len(list))
	for i, t := range list {
		if t.Logo == "" {
			t.Logo = logos[t.ID]
		}
		out[i] = t
	}
	return out
}
