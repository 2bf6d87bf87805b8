package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/hockey-bracket-service/internal/providers/fixture"
	"github.com/preston-bernstein/hockey-bracket-service/internal/testutil"
)

func adminRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRefreshBracketRequiresToken(t *testing.T) {
	h := NewAdminHandler(testutil.NewBracketService(fixture.New()), "secret", nil)

	for _, token := range []string{"", "wrong"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshBracket), adminRequest("/admin/brackets/refresh?leagueId=57&season=2023-2024", token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
}

func TestRefreshBracketDisabledWithoutConfiguredToken(t *testing.T) {
	h := NewAdminHandler(testutil.NewBracketService(fixture.New()), "", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshBracket), adminRequest("/admin/brackets/refresh?leagueId=57&season=2023-2024", "anything"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestRefreshBracketRebuilds(t *testing.T) {
	ctx := context.Background()
	fx := fixture.New()
	standings, err := fx.FetchStandings(ctx, "57", "2023-2024")
	if err != nil {
		t.Fatalf("fixture standings: %v", err)
	}
	ids := make([]int, 0, len(standings))
	for _, team := range standings {
		ids = append(ids, team.ID)
	}
	list, err := fx.FetchPlayoffGames(ctx, "57", "2023-2024", ids)
	if err != nil {
		t.Fatalf("fixture games: %v", err)
	}
	p := &testutil.StubProvider{Standings: standings, Games: list}

	svc := testutil.NewBracketService(p)
	h := NewAdminHandler(svc, "secret", nil)

	for i := 0; i < 2; i++ {
		rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshBracket), adminRequest("/admin/brackets/refresh?leagueId=57&season=2023-2024", "secret"))
		testutil.AssertStatus(t, rr, http.StatusOK)

		var resp map[string]any
		testutil.DecodeJSON(t, rr, &resp)
		if resp["status"] != "ok" || resp["season"] != "2023-2024" {
			t.Fatalf("unexpected response %v", resp)
		}
	}
	if got := p.StandingsCalls.Load(); got != 2 {
		t.Fatalf("expected every refresh to hit the provider, got %d", got)
	}
}

func TestRefreshBracketValidatesQuery(t *testing.T) {
	h := NewAdminHandler(testutil.NewBracketService(fixture.New()), "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshBracket), adminRequest("/admin/brackets/refresh?leagueId=57", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestRefreshBracketUpstreamFailure(t *testing.T) {
	h := NewAdminHandler(testutil.NewBracketService(testutil.UnavailableProvider{}), "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshBracket), adminRequest("/admin/brackets/refresh?leagueId=57&season=2023-2024", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestRefreshBracketWithoutService(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshBracket), adminRequest("/admin/brackets/refresh?leagueId=57&season=2023-2024", "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
