package playoffs

import (
	"strings"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

const (
	markerMissedPlayoffs = "Did not make playoffs"
	markerLoss           = "loss"
	markerChampion       = "Champion"
)

// ResolveEligible picks the teams believed to be in the playoffs, in standings order.
//
// Teams marked "Did not make playoffs" are excluded. Teams with an elimination
// marker (or the champion) are confirmed. Teams without a marker are admitted
// while their conference has fewer than TeamsPerConference members. When the
// result does not fill every conference exactly, it is discarded in favor of
// the first TeamsPerConference non-excluded teams per conference, backfilled
// from the full standings when a conference is still short.
func ResolveEligible(standings []teams.Team, format bracket.Format) []teams.Team {
	counts := make(map[string]int)
	eligible := make([]teams.Team, 0, format.TotalTeams())

	for _, team := range standings {
		if missedPlayoffs(team) {
			continue
		}
		conf := team.Conference()
		switch {
		case confirmed(team):
			eligible = append(eligible, team)
			counts[conf]++
		case team.Postseason == nil && counts[conf] < format.TeamsPerConference:
			eligible = append(eligible, team)
			counts[conf]++
		}
	}

	if filled(counts, len(eligible), format) {
		return eligible
	}
	return fallbackEligible(standings, format)
}

func fallbackEligible(standings []teams.Team, format bracket.Format) []teams.Team {
	out := make([]teams.Team, 0, format.TotalTeams())
	for _, conf := range format.Conferences {
		picked := make(map[int]struct{}, format.TeamsPerConference)
		take := func(skipMissed bool) {
			for _, team := range standings {
				if len(picked) >= format.TeamsPerConference {
					return
				}
				if team.Conference() != conf {
					continue
				}
				if _, ok := picked[team.ID]; ok {
					continue
				}
				if skipMissed && missedPlayoffs(team) {
					continue
				}
				picked[team.ID] = struct{}{}
				out = append(out, team)
			}
		}
		take(true)
		take(false)
	}
	return out
}

func filled(counts map[string]int, total int, format bracket.Format) bool {
	if total != format.TotalTeams() {
		return false
	}
	for _, conf := range format.Conferences {
		if counts[conf] != format.TeamsPerConference {
			return false
		}
	}
	return true
}

func missedPlayoffs(team teams.Team) bool {
	return team.Postseason != nil && *team.Postseason == markerMissedPlayoffs
}

func confirmed(team teams.Team) bool {
	marker := team.Marker()
	return strings.Contains(marker, markerLoss) || strings.Contains(marker, markerChampion)
}

// ConferenceTeams returns the members of conf, preserving order.
func ConferenceTeams(list []teams.Team, conf string) []teams.Team {
	out := make([]teams.Team, 0, len(list))
	for _, t := range list {
		if t.Conference() == conf {
			out = append(out, t)
		}
	}
	return out
}

// TeamIDs lists the ids of the given teams.
func TeamIDs(list []teams.Team) []int {
	ids := make([]int, 0, len(list))
	for _, t := range list {
		ids = append(ids, t.ID)
	}
	return ids
}
