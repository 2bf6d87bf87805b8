package playoffs

import (
	"math/rand"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// Options configures a reconstruction run.
type Options struct {
	Format                     bracket.Format
	HasExplicitEliminationData bool
}

// Result is the output of a reconstruction run.
type Result struct {
	Bracket  bracket.Bracket
	Eligible []teams.Team
	Series   []bracket.Series
	// Placeholder is set when the bracket was synthesized because no games exist.
	Placeholder bool
}

// Reconstructor turns standings and games into a bracket. It holds no state
// besides the random source used for the placeholder fallback and is safe for concurrent use.
type Reconstructor struct {
	newRand func() *rand.Rand
}

// NewReconstructor returns a Reconstructor whose placeholder fallback is time-seeded.
func NewReconstructor() *Reconstructor {
	return &Reconstructor{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// NewSeededReconstructor returns a Reconstructor whose placeholder fallback is repeatable.
func NewSeededReconstructor(seed int64) *Reconstructor {
	return &Reconstructor{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(seed))
		},
	}
}

// Reconstruct runs the full pipeline starting from raw standings.
func (r *Reconstructor) Reconstruct(standings []teams.Team, list []games.Game, opts Options) Result {
	return r.Build(ResolveEligible(standings, opts.Format), list, opts)
}

// Build runs series aggregation, round classification and assembly for an
// already resolved eligible set. With no games between eligible teams it
// returns the synthetic placeholder bracket.
func (r *Reconstructor) Build(eligible []teams.Team, list []games.Game, opts Options) Result {
	relevant := gamesBetween(eligible, list)
	if len(relevant) == 0 {
		var rng *rand.Rand
		if r != nil && r.newRand != nil {
			rng = r.newRand()
		}
		return Result{
			Bracket:     SynthesizePlaceholderBracket(eligible, opts.Format, rng),
			Eligible:    eligible,
			Series:      []bracket.Series{},
			Placeholder: true,
		}
	}

	series := AggregateSeries(eligible, relevant, opts.Format)
	byConf, final := SplitConferences(series, opts.Format)

	classifyOpts := ClassifyOptions{
		Format:                     opts.Format,
		HasExplicitEliminationData: opts.HasExplicitEliminationData,
	}
	classified := make(map[string]Classification, len(opts.Format.Conferences))
	for _, conf := range opts.Format.Conferences {
		classified[conf] = ClassifyConference(byConf[conf], classifyOpts)
	}

	return Result{
		Bracket:  AssembleBracket(classified, final, opts.Format),
		Eligible: BackfillLogos(eligible, relevant),
		Series:   series,
	}
}

func gamesBetween(eligible []teams.Team, list []games.Game) []games.Game {
	ids := make(map[int]struct{}, len(eligible))
	for _, t := range eligible {
		ids[t.ID] = struct{}{}
	}
	out := make([]games.Game, 0, len(list))
	for _, g := range list {
		_, home := ids[g.HomeTeam.ID]
		_, away := ids[g.VisitingTeam.ID]
		if home && away {
			out = append(out, g)
		}
	}
	return out
}
