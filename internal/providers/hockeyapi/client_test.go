package hockeyapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/games"
	"github.com/preston-bernstein/hockey-bracket-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchStandingsMapsResponse(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{
			"data": [
				{"team": {"id": 1, "name": " Boston ", "logo": "b.png"}, "group": "Eastern/Atlantic", "postseason": "Conference SF loss"},
				{"team": {"id": 2, "name": "Seattle"}, "group": "Western/Pacific", "postseason": null}
			]
		}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/v1/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	standings, err := client.FetchStandings(context.Background(), "12", "2023-2024")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if captured.URL.Path != "/v1/standings" {
		t.Fatalf("expected /v1/standings path, got %s", captured.URL.Path)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer secret" {
		t.Fatalf("expected authorization header, got %s", got)
	}
	q := captured.URL.Query()
	if q.Get("league_id") != "12" || q.Get("season") != "2023-2024" {
		t.Fatalf("unexpected query %s", captured.URL.RawQuery)
	}

	if len(standings) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(standings))
	}
	boston := standings[0]
	if boston.ID != 1 || boston.Name != "Boston" || boston.Logo != "b.png" || boston.Conference() != "Eastern" {
		t.Fatalf("unexpected team %+v", boston)
	}
	if boston.Marker() != "Conference SF loss" {
		t.Fatalf("expected marker, got %q", boston.Marker())
	}
	if standings[1].Postseason != nil {
		t.Fatalf("expected nil marker for active team, got %q", standings[1].Marker())
	}
}

func TestFetchPlayoffGamesPaginatesAndMaps(t *testing.T) {
	var queries []url.Values
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/games" {
			t.Fatalf("expected /games path, got %s", req.URL.Path)
		}
		queries = append(queries, req.URL.Query())
		if len(queries) == 1 {
			return jsonResponse(http.StatusOK, `{
				"data": [{
					"id": 10, "date": "2024-04-20", "time": "19:00", "status": "Final",
					"home_team": {"id": 1, "name": "Boston"}, "visiting_team": {"id": 2, "name": "Toronto"},
					"home_score": 5, "visiting_score": 1
				}],
				"meta": {"total_pages": 2}
			}`), nil
		}
		return jsonResponse(http.StatusOK, `{
			"data": [{
				"id": 11, "date": "2024-04-22", "status": "NS",
				"home_team": {"id": 1, "name": "Boston"}, "visiting_team": {"id": 2, "name": "Toronto"},
				"home_score": null, "visiting_score": null
			}],
			"meta": {"total_pages": 2}
		}`), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	list, err := client.FetchPlayoffGames(context.Background(), "12", "2023-2024", []int{1, 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("expected 2 requests (pagination), got %d", len(queries))
	}
	first := queries[0]
	if first.Get("season_type") != "POSTSEASON" || first.Get("page") != "1" || first.Get("per_page") != "100" {
		t.Fatalf("unexpected query %v", first)
	}
	if ids := first["team_ids[]"]; len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Fatalf("expected team ids in query, got %v", ids)
	}

	if len(list) != 2 {
		t.Fatalf("expected games from both pages, got %d", len(list))
	}
	if winner, ok := list[0].WinnerID(); !ok || winner != 1 {
		t.Fatalf("expected home winner, got %d %v", winner, ok)
	}
	if list[0].Time != "19:00" {
		t.Fatalf("expected time to be kept, got %q", list[0].Time)
	}
	if list[1].Status != games.StatusUpcoming || list[1].HomeScore != nil {
		t.Fatalf("expected upcoming game without scores, got %+v", list[1])
	}
}

func TestFetchPlayoffGamesStopsOnShortPageWithoutMeta(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{"data": []}`), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	list, err := client.FetchPlayoffGames(context.Background(), "12", "2023-2024", nil)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty result, got %v %v", list, err)
	}
	if calls != 1 {
		t.Fatalf("expected a single request, got %d", calls)
	}
}

func TestFetchPlayoffGamesRespectsMaxPagesCap(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{
			"data": [{"id": 1, "date": "2024-04-20", "status": "FT",
				"home_team": {"id": 1}, "visiting_team": {"id": 2}, "home_score": 2, "visiting_score": 1}],
			"meta": {"total_pages": 10}
		}`), nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}, MaxPages: 1})

	list, err := client.FetchPlayoffGames(context.Background(), "12", "2023-2024", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 1 || calls != 1 {
		t.Fatalf("expected to stop after max pages, got %d games over %d calls", len(list), calls)
	}
}

func TestFetchHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "boom"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchStandings(context.Background(), "12", "2023-2024"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestFetchHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchPlayoffGames(context.Background(), "12", "2023-2024", nil); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchMapsTooManyRequestsToRateLimitError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "7")
		resp.Header.Set("X-RateLimit-Remaining", "0")
		return resp, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchStandings(context.Background(), "12", "2023-2024")
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.RetryAfter != 7*time.Second || rlErr.Remaining != "0" || rlErr.Provider != ProviderName {
		t.Fatalf("unexpected rate limit error %+v", rlErr)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.maxPages != defaultMaxPages {
		t.Fatalf("expected default max pages, got %d", c.maxPages)
	}
}
