package hockeyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	MaxPages   int
}

// Client fetches standings and postseason games and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	maxPages   int
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FetchStandings retrieves the standings table for a league season.
func (c *Client) FetchStandings(ctx context.Context, leagueID, season string) ([]teams.Team, error) {
	q := url.Values{}
	q.Set("league_id", leagueID)
	q.Set("season", season)

	var payload standingsResponse
	if err := c.get(ctx, "/standings", q, &payload); err != nil {
		return nil, err
	}

	out := make([]teams.Team, 0, len(payload.Data))
	for _, s := range payload.Data {
		out = append(out, mapStanding(s))
	}
	return out, nil
}

// FetchPlayoffGames retrieves every postseason game involving the given teams, following pagination.
func (c *Client) FetchPlayoffGames(ctx context.Context, leagueID, season string, teamIDs []int) ([]games.Game, error) {
	page := 1
	all := make([]games.Game, 0)

	for {
		q := url.Values{}
		q.Set("league_id", leagueID)
		q.Set("season", season)
		q.Set("season_type", seasonTypePlayoffs)
		for _, id := range teamIDs {
			q.Add("team_ids[]", strconv.Itoa(id))
		}
		q.Set("per_page", strconv.Itoa(defaultPerPage))
		q.Set("page", strconv.Itoa(page))

		var payload gamesResponse
		if err := c.get(ctx, "/games", q, &payload); err != nil {
			return nil, err
		}
		for _, g := range payload.Data {
			all = append(all, mapGame(g))
		}

		totalPages := payload.Meta.TotalPages
		if totalPages > 0 {
			if page >= totalPages {
				break
			}
		} else if len(payload.Data) < defaultPerPage {
			break
		}
		if page >= c.maxPages {
			break
		}
		page++
	}

	return all, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "hockeyapi: rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hockeyapi: unexpected status %d on %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("hockeyapi: decode %s: %w", path, err)
	}
	return nil
}
