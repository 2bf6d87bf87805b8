package config

import (
	"fmt"
	"strings"
	"time"
)

// PlayoffsConfig tunes bracket reconstruction.
type PlayoffsConfig struct {
	ExplicitEliminationSeasons []string
	TeamsPerConference         int
}

// HasExplicitEliminationData reports whether standings for season carry elimination markers.
func (p PlayoffsConfig) HasExplicitEliminationData(season string) bool {
	season = strings.TrimSpace(season)
	for _, s := range p.ExplicitEliminationSeasons {
		if s == season {
			return true
		}
	}
	return false
}

func loadPlayoffs() PlayoffsConfig {
	return PlayoffsConfig{
		ExplicitEliminationSeasons: listEnvOrDefault(envExplicitSeasons, defaultExplicitSeasons),
		TeamsPerConference:         intEnvOrDefault(envTeamsPerConf, defaultTeamsPerConf),
	}
}

// WarmTarget is one league/season bracket kept fresh in the background.
type WarmTarget struct {
	LeagueID string
	Season   string
}

func (t WarmTarget) String() string {
	return t.LeagueID + ":" + t.Season
}

// WarmConfig controls the background bracket warmer.
type WarmConfig struct {
	Targets  []WarmTarget
	Interval time.Duration
	// TargetsErr reports entries skipped while parsing WARM_TARGETS.
	TargetsErr error
}

// Enabled reports whether any targets are configured.
func (w WarmConfig) Enabled() bool {
	return len(w.Targets) > 0
}

func loadWarm() WarmConfig {
	targets, err := ParseWarmTargets(listEnvOrDefault(envWarmTargets, nil))
	return WarmConfig{
		Targets:    targets,
		Interval:   durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
		TargetsErr: err,
	}
}

// ParseWarmTargets parses "leagueId:season" entries, skipping malformed ones.
// The returned error lists every skipped entry.
func ParseWarmTargets(entries []string) ([]WarmTarget, error) {
	var (
		targets []WarmTarget
		invalid []string
	)
	for _, entry := range entries {
		league, season, ok := strings.Cut(entry, ":")
		league = strings.TrimSpace(league)
		season = strings.TrimSpace(season)
		if !ok || league == "" || season == "" {
			invalid = append(invalid, entry)
			continue
		}
		targets = append(targets, WarmTarget{LeagueID: league, Season: season})
	}
	if len(invalid) > 0 {
		return targets, fmt.Errorf("invalid warm targets: %s", strings.Join(invalid, ", "))
	}
	return targets, nil
}
