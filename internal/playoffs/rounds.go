package playoffs

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
)

// Elimination markers in order of the round they end a team's run in.
// "Conference Final loss" must be matched before "Final loss".
var eliminationMarkers = []string{
	"Conference QF loss",
	"Conference SF loss",
	"Conference Final loss",
	"Final loss",
	markerChampion,
}

// ClassifyOptions selects how series are assigned to rounds.
type ClassifyOptions struct {
	Format bracket.Format
	// HasExplicitEliminationData trusts postseason markers as ground truth.
	HasExplicitEliminationData bool
}

// Classification holds one bucket of series per conference round, in format order.
type Classification struct {
	Rounds [][]bracket.Series
}

// Sizes reports the number of series in each bucket.
func (c Classification) Sizes() []int {
	sizes := make([]int, len(c.Rounds))
	for i, r := range c.Rounds {
		sizes[i] = len(r)
	}
	return sizes
}

// ClassifyConference assigns every series of one conference to exactly one round.
// A complete conference is always returned in the format's shape.
func ClassifyConference(series []bracket.Series, opts ClassifyOptions) Classification {
	sizes := opts.Format.RoundSizes
	if len(sizes) == 0 {
		return Classification{}
	}

	var buckets [][]bracket.Series
	if opts.HasExplicitEliminationData {
		buckets = classifyByMarkers(series, sizes)
	} else {
		buckets = classifyByHeuristic(series, sizes)
	}
	return Classification{Rounds: correctShape(series, buckets, sizes)}
}

// eliminationRound maps a postseason marker to a zero-based round index, or -1.
func eliminationRound(marker string) int {
	for i, m := range eliminationMarkers {
		if strings.Contains(marker, m) {
			return i
		}
	}
	return -1
}

func classifyByMarkers(series []bracket.Series, sizes []int) [][]bracket.Series {
	buckets := emptyBuckets(len(sizes))
	var unclassified []bracket.Series

	for _, s := range series {
		round := earliestElimination(s)
		if round < 0 || round >= len(sizes) {
			unclassified = append(unclassified, s)
			continue
		}
		buckets[round] = appendSeries(buckets[round], s)
	}

	for _, s := range sortByStatus(unclassified) {
		i := mostShortBucket(buckets, sizes)
		buckets[i] = appendSeries(buckets[i], s)
	}
	return buckets
}

func earliestElimination(s bracket.Series) int {
	r1 := eliminationRound(s.Team1.Marker())
	r2 := eliminationRound(s.Team2.Marker())
	switch {
	case r1 < 0:
		return r2
	case r2 < 0:
		return r1
	case r1 < r2:
		return r1
	default:
		return r2
	}
}

// mostShortBucket picks the bucket furthest below its target, earliest round on ties.
// With every bucket full the first round absorbs the overflow.
func mostShortBucket(buckets [][]bracket.Series, sizes []int) int {
	best, bestDeficit := 0, 0
	for i, target := range sizes {
		if deficit := target - len(buckets[i]); deficit > bestDeficit {
			best, bestDeficit = i, deficit
		}
	}
	return best
}

func classifyByHeuristic(series []bracket.Series, sizes []int) [][]bracket.Series {
	type ranked struct {
		series bracket.Series
		prior  int
	}
	list := make([]ranked, len(series))
	for i, s := range series {
		list[i] = ranked{series: s, prior: priorWinners(s, series)}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].prior != list[j].prior {
			return list[i].prior < list[j].prior
		}
		return list[i].series.Status.Rank() < list[j].series.Status.Rank()
	})

	var probable, later []bracket.Series
	for _, r := range list {
		if r.prior == 0 {
			probable = append(probable, r.series)
		} else {
			later = append(later, r.series)
		}
	}

	buckets := emptyBuckets(len(sizes))
	take := min(sizes[0], len(probable))
	buckets[0] = appendSeries(nil, probable[:take]...)
	remainder := appendSeries(appendSeries(nil, probable[take:]...), later...)

	if len(sizes) == 1 {
		buckets[0] = appendSeries(buckets[0], remainder...)
		return buckets
	}

	capacity := 0
	for _, n := range sizes[1:] {
		capacity += n
	}

	if len(remainder) <= capacity {
		// Deepest rounds take from the tail.
		end := len(remainder)
		for i := len(sizes) - 1; i >= 1 && end > 0; i-- {
			start := max(end-sizes[i], 0)
			if i == 1 {
				start = 0
			}
			buckets[i] = appendSeries(nil, remainder[start:end]...)
			end = start
		}
	} else {
		pos := 0
		for i := 1; i < len(sizes); i++ {
			buckets[i] = appendSeries(nil, remainder[pos:pos+sizes[i]]...)
			pos += sizes[i]
		}
		buckets[0] = appendSeries(buckets[0], remainder[pos:]...)
	}

	return topUp(buckets, sizes)
}

// priorWinners counts the sides of s that already won an earlier series in the set.
func priorWinners(s bracket.Series, set []bracket.Series) int {
	n := 0
	if hasTeamWonPreviousSeries(s.Team1.ID, s, set) {
		n++
	}
	if hasTeamWonPreviousSeries(s.Team2.ID, s, set) {
		n++
	}
	return n
}

// hasTeamWonPreviousSeries reports whether the team won a different series of
// the set that started before current. Series without games count as earlier.
func hasTeamWonPreviousSeries(teamID int, current bracket.Series, set []bracket.Series) bool {
	key := current.Key()
	start, hasStart := firstGameStart(current)
	for _, other := range set {
		if other.Key() == key || other.Winner == nil || other.Winner.ID != teamID {
			continue
		}
		if otherStart, ok := firstGameStart(other); ok && hasStart && otherStart >= start {
			continue
		}
		return true
	}
	return false
}

func firstGameStart(s bracket.Series) (string, bool) {
	if len(s.Games) == 0 {
		return "", false
	}
	first := games.SortByStart(s.Games)[0]
	return first.Date + " " + first.Time, true
}

// topUp moves excess series from over-full buckets, earliest rounds first, into short ones.
func topUp(buckets [][]bracket.Series, sizes []int) [][]bracket.Series {
	out := cloneBuckets(buckets)
	for i, target := range sizes {
		for len(out[i]) < target {
			donor := -1
			for j := range sizes {
				if j != i && len(out[j]) > sizes[j] {
					donor = j
					break
				}
			}
			if donor < 0 {
				break
			}
			last := len(out[donor]) - 1
			moved := out[donor][last]
			out[donor] = appendSeries(nil, out[donor][:last]...)
			out[i] = appendSeries(out[i], moved)
		}
	}
	return out
}

// correctShape re-slices a complete conference by status when the buckets miss the target shape.
func correctShape(all []bracket.Series, buckets [][]bracket.Series, sizes []int) [][]bracket.Series {
	total := 0
	matches := true
	for i, n := range sizes {
		total += n
		if len(buckets[i]) != n {
			matches = false
		}
	}
	if len(all) != total || matches {
		return buckets
	}

	sorted := sortByStatus(all)
	out := emptyBuckets(len(sizes))
	pos := 0
	for i, n := range sizes {
		out[i] = appendSeries(nil, sorted[pos:pos+n]...)
		pos += n
	}
	return out
}

func sortByStatus(list []bracket.Series) []bracket.Series {
	out := appendSeries(nil, list...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.Rank() < out[j].Status.Rank()
	})
	return out
}

func emptyBuckets(n int) [][]bracket.Series {
	out := make([][]bracket.Series, n)
	for i := range out {
		out[i] = []bracket.Series{}
	}
	return out
}

func cloneBuckets(in [][]bracket.Series) [][]bracket.Series {
	out := make([][]bracket.Series, len(in))
	for i, b := range in {
		out[i] = appendSeries(nil, b...)
	}
	return out
}

// appendSeries always allocates, so buckets never share backing arrays.
func appendSeries(dst []bracket.Series, items ...bracket.Series) []bracket.Series {
	out := make([]bracket.Series, 0, len(dst)+len(items))
	out = append(out, dst...)
	return append(out, items...)
}
