package playoffs

import (
	"math/rand"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// SynthesizePlaceholderBracket builds a display-only bracket when no games exist.
// Each conference's eligible teams are paired positionally (2i vs 2i+1) into
// first-round series with random win counts below the clinch threshold.
// None of it is real data.
func SynthesizePlaceholderBracket(eligible []teams.Team, format bracket.Format, rng *rand.Rand) bracket.Bracket {
	classified := make(map[string]Classification, len(format.Conferences))
	limit := 0
	if len(format.RoundSizes) > 0 {
		limit = format.RoundSizes[0]
	}

	for _, conf := range format.Conferences {
		members := ConferenceTeams(eligible, conf)
		first := make([]bracket.Series, 0, limit)
		for i := 0; i+1 < len(members) && len(first) < limit; i += 2 {
			first = append(first, bracket.Series{
				Team1:     members[i],
				Team2:     members[i+1],
				Team1Wins: randomWins(rng, format.WinsToClinch),
				Team2Wins: randomWins(rng, format.WinsToClinch),
				Status:    bracket.SeriesUpcoming,
				Games:     []games.Game{},
			})
		}
		rounds := emptyBuckets(len(format.RoundSizes))
		if len(rounds) > 0 {
			rounds[0] = first
		}
		classified[conf] = Classification{Rounds: rounds}
	}

	return AssembleBracket(classified, nil, format)
}

func randomWins(rng *rand.Rand, winsToClinch int) int {
	if rng == nil || winsToClinch <= 0 {
		return 0
	}
	return rng.Intn(winsToClinch)
}
