package bracket

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

func TestSeriesKeyIsOrderIndependent(t *testing.T) {
	if SeriesKey(7, 3) != "3-7" || SeriesKey(3, 7) != "3-7" {
		t.Fatalf("expected canonical key 3-7, got %s / %s", SeriesKey(7, 3), SeriesKey(3, 7))
	}
}

func TestStatusRankOrdering(t *testing.T) {
	if !(SeriesCompleted.Rank() < SeriesInProgress.Rank() && SeriesInProgress.Rank() < SeriesUpcoming.Rank()) {
		t.Fatal("expected COMPLETED < IN_PROGRESS < UPCOMING")
	}
}

func TestPlaceholderSeriesShape(t *testing.T) {
	s := PlaceholderSeries()
	if !s.IsPlaceholder() || s.Status != SeriesUpcoming || s.Team1Wins != 0 || s.Team2Wins != 0 || s.Winner != nil {
		t.Fatalf("unexpected placeholder %+v", s)
	}
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"games":[]`) {
		t.Fatalf("expected empty games array in %s", raw)
	}
	if strings.Contains(string(raw), "winner") {
		t.Fatalf("expected winner omitted in %s", raw)
	}
}

func TestStandardFormatTotals(t *testing.T) {
	if StandardFormat.TotalTeams() != 16 {
		t.Fatalf("expected 16 teams, got %d", StandardFormat.TotalTeams())
	}
	if StandardFormat.SeriesPerConference() != 7 {
		t.Fatalf("expected 7 series per conference, got %d", StandardFormat.SeriesPerConference())
	}
	if !StandardFormat.HasConference("Western") || StandardFormat.HasConference("Central") {
		t.Fatal("unexpected conference membership")
	}
}

func TestWithTeamsPerConferenceKeepsOriginal(t *testing.T) {
	f := StandardFormat.WithTeamsPerConference(4)
	if f.TeamsPerConference != 4 || StandardFormat.TeamsPerConference != 8 {
		t.Fatalf("expected copy with 4, original 8; got %d / %d", f.TeamsPerConference, StandardFormat.TeamsPerConference)
	}
	if StandardFormat.WithTeamsPerConference(0).TeamsPerConference != 8 {
		t.Fatal("expected non-positive override to be ignored")
	}
}

func TestHasTeam(t *testing.T) {
	s := Series{Team1: teams.Team{ID: 1}, Team2: teams.Team{ID: 2}}
	if !s.HasTeam(2) || s.HasTeam(3) {
		t.Fatal("unexpected HasTeam result")
	}
}
