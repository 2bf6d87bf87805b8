package snapshots

import (
	"os"
	"testing"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/teams"
)

func finishedBracket(leagueID, season string) bracket.Response {
	champ := teams.Team{ID: 1, Name: "Team 1", Group: "Eastern/Atlantic"}
	runnerUp := teams.Team{ID: 17, Name: "Team 17", Group: "Western/Pacific"}
	return bracket.Response{
		LeagueID: leagueID,
		Season:   season,
		Bracket: bracket.Bracket{
			Eastern: []bracket.Round{},
			Western: []bracket.Round{},
			Final: &bracket.Series{
				Team1:     champ,
				Team2:     runnerUp,
				Team1Wins: 4,
				Status:    bracket.SeriesCompleted,
				Winner:    &champ,
			},
		},
	}
}

func writeSnapshot(t *testing.T, w *Writer, resp bracket.Response) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for %s/%s", resp.LeagueID, resp.Season)
	}
	if err := w.WriteBracketSnapshot(resp); err != nil {
		t.Fatalf("failed to write snapshot %s/%s: %v", resp.LeagueID, resp.Season, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, leagueID, season string) {
	t.Helper()
	if _, err := os.Stat(BracketSnapshotPath(w.BasePath(), leagueID, season)); err != nil {
		t.Fatalf("expected snapshot for %s/%s to be written: %v", leagueID, season, err)
	}
}

func assertSeasonsEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("seasons length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("seasons mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
