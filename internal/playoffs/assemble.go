package playoffs

import (
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

// SplitConferences groups series by the conference both teams share and
// returns the first series whose teams come from different format conferences as the final.
func SplitConferences(series []bracket.Series, format bracket.Format) (map[string][]bracket.Series, *bracket.Series) {
	byConf := make(map[string][]bracket.Series, len(format.Conferences))
	var final *bracket.Series

	for _, s := range series {
		c1, c2 := s.Team1.Conference(), s.Team2.Conference()
		if !format.HasConference(c1) || !format.HasConference(c2) {
			continue
		}
		if c1 != c2 {
			if final == nil {
				f := s
				final = &f
			}
			continue
		}
		byConf[c1] = append(byConf[c1], s)
	}
	return byConf, final
}

// AssembleBracket lays classified conference rounds into a bracket, padding each
// round with placeholder series up to its format size.
func AssembleBracket(classified map[string]Classification, final *bracket.Series, format bracket.Format) bracket.Bracket {
	out := bracket.Bracket{
		Eastern: []bracket.Round{},
		Western: []bracket.Round{},
		Final:   final,
	}
	if len(format.Conferences) > 0 {
		out.Eastern = conferenceRounds(classified[format.Conferences[0]], format)
	}
	if len(format.Conferences) > 1 {
		out.Western = conferenceRounds(classified[format.Conferences[1]], format)
	}
	return out
}

func conferenceRounds(c Classification, format bracket.Format) []bracket.Round {
	rounds := make([]bracket.Round, 0, len(format.RoundSizes))
	for i, size := range format.RoundSizes {
		var series []bracket.Series
		if i < len(c.Rounds) {
			series = appendSeries(nil, c.Rounds[i]...)
		} else {
			series = []bracket.Series{}
		}
		for len(series) < size {
			series = append(series, bracket.PlaceholderSeries())
		}
		rounds = append(rounds, bracket.Round{Name: roundName(format, i), Series: series})
	}
	return rounds
}

func roundName(format bracket.Format, i int) string {
	if i < len(format.RoundNames) {
		return format.RoundNames[i]
	}
	return ""
}
