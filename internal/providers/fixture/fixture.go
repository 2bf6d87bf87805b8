package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

// ProviderName identifies the fixture provider in logs and metrics.
const ProviderName = "fixture"

//go:embed data/*.json
var seasonFiles embed.FS

type seasonData struct {
	Standings []teams.Team `json:"standings"`
	Games     []games.Game `json:"games"`
}

// Provider serves embedded standings and postseason games for a 32-team league.
// It answers for any league id. Seasons without a data file get the latest
// season's table with markers cleared and no games.
type Provider struct {
	once    sync.Once
	seasons map[string]seasonData
	latest  string
	loadErr error
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Seasons lists the seasons that carry recorded games.
func (p *Provider) Seasons() []string {
	if err := p.load(); err != nil {
		return nil
	}
	out := make([]string, 0, len(p.seasons))
	for s := range p.seasons {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// FetchStandings returns a copy of the season's standings table.
func (p *Provider) FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	if data, ok := p.seasons[season]; ok {
		return cloneTeams(data.Standings, false), nil
	}
	return cloneTeams(p.seasons[p.latest].Standings, true), nil
}

// FetchPlayoffGames returns the season's games involving any of teamIDs.
func (p *Provider) FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	data, ok := p.seasons[season]
	if !ok {
		return []games.Game{}, nil
	}

	wanted := make(map[int]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}
	out := make([]games.Game, 0, len(data.Games))
	for _, g := range data.Games {
		_, home := wanted[g.HomeTeam.ID]
		_, away := wanted[g.VisitingTeam.ID]
		if home || away {
			out = append(out, g)
		}
	}
	return out, nil
}

func (p *Provider) load() error {
	p.once.Do(func() {
		p.seasons, p.latest, p.loadErr = readSeasons()
	})
	return p.loadErr
}

func readSeasons() (map[string]seasonData, string, error) {
	entries, err := seasonFiles.ReadDir("data")
	if err != nil {
		return nil, "", fmt.Errorf("fixture: read data dir: %w", err)
	}
	seasons := make(map[string]seasonData, len(entries))
	latest := ""
	for _, entry := range entries {
		raw, err := seasonFiles.ReadFile(path.Join("data", entry.Name()))
		if err != nil {
			return nil, "", fmt.Errorf("fixture: read %s: %w", entry.Name(), err)
		}
		var data seasonData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, "", fmt.Errorf("fixture: decode %s: %w", entry.Name(), err)
		}
		season := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		seasons[season] = data
		if season > latest {
			latest = season
		}
	}
	if latest == "" {
		return nil, "", fmt.Errorf("fixture: no season data embedded")
	}
	return seasons, latest, nil
}

func cloneTeams(in []teams.Team, clearMarkers bool) []teams.Team {
	out := make([]teams.Team, len(in))
	for i, t := range in {
		if clearMarkers || t.Postseason == nil {
			t.Postseason = nil
		} else {
			t.Postseason = teams.PostseasonMarker(*t.Postseason)
		}
		out[i] = t
	}
	return out
}
