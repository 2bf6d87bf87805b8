package bracket

// Round names as rendered by the widgets.
const (
	RoundFirst            = "First Round"
	RoundSecond           = "Second Round"
	RoundConferenceFinals = "Conference Finals"
	RoundFinal            = "Final"
)

// Conference labels as they appear before the "/" in standings group labels.
const (
	ConferenceEastern = "Eastern"
	ConferenceWestern = "Western"
)

// Format describes the playoff shape the reconstruction engine targets.
// Conferences[0] fills Bracket.Eastern and Conferences[1] fills Bracket.Western.
type Format struct {
	Conferences        []string
	TeamsPerConference int
	RoundNames         []string
	RoundSizes         []int
	WinsToClinch       int
}

// StandardFormat is the 16-team, two-conference, best-of-seven layout.
var StandardFormat = Format{
	Conferences:        []string{ConferenceEastern, ConferenceWestern},
	TeamsPerConference: 8,
	RoundNames:         []string{RoundFirst, RoundSecond, RoundConferenceFinals},
	RoundSizes:         []int{4, 2, 1},
	WinsToClinch:       4,
}

// TotalTeams is the number of eligible teams the format expects.
func (f Format) TotalTeams() int {
	return len(f.Conferences) * f.TeamsPerConference
}

// SeriesPerConference is the number of series in a complete conference tree.
func (f Format) SeriesPerConference() int {
	total := 0
	for _, n := range f.RoundSizes {
		total += n
	}
	return total
}

// HasConference reports whether name is one of the format's conferences.
func (f Format) HasConference(name string) bool {
	for _, c := range f.Conferences {
		if c == name {
			return true
		}
	}
	return false
}

// WithTeamsPerConference returns a copy using n teams per conference; n <= 0 keeps the current value.
func (f Format) WithTeamsPerConference(n int) Format {
	if n > 0 {
		f.TeamsPerConference = n
	}
	return f
}
