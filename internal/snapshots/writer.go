package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

type snapshotKind string

const (
	kindBrackets snapshotKind = "brackets"

	defaultSeasonsPerLeague = 10
)

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath         string
	seasonsPerLeague int
	mu               sync.Mutex
}

// NewWriter constructs a writer rooted at basePath keeping the newest seasonsPerLeague seasons per league.
func NewWriter(basePath string, seasonsPerLeague int) *Writer {
	if seasonsPerLeague <= 0 {
		seasonsPerLeague = defaultSeasonsPerLeague
	}
	return &Writer{
		basePath:         basePath,
		seasonsPerLeague: seasonsPerLeague,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteBracketSnapshot writes the bracket for resp's league season and prunes old seasons.
// Unchanged snapshots are not rewritten.
func (w *Writer) WriteBracketSnapshot(resp bracket.Response) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if err := validateKey(resp.LeagueID, resp.Season); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	target := BracketSnapshotPath(w.basePath, resp.LeagueID, resp.Season)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(resp.LeagueID)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(resp.LeagueID)
}

func (w *Writer) updateManifest(leagueID string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.seasonsPerLeague)

	seasons, err := w.listSeasons(leagueID)
	if err != nil {
		return err
	}
	m.Brackets.Seasons[leagueID] = w.pruneOldSeasons(leagueID, seasons)
	m.Brackets.LastRefreshed = time.Now().UTC()
	m.Retention.SeasonsPerLeague = w.seasonsPerLeague

	return writeManifest(w.basePath, m)
}

func (w *Writer) listSeasons(leagueID string) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kindBrackets), leagueID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var seasons []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		seasons = append(seasons, strings.TrimSuffix(name, ".json"))
	}
	// "YYYY-YYYY" labels sort chronologically as strings.
	sort.Strings(seasons)
	return seasons, nil
}

// pruneOldSeasons removes all but the newest seasonsPerLeague snapshots.
func (w *Writer) pruneOldSeasons(leagueID string, seasons []string) []string {
	if len(seasons) <= w.seasonsPerLeague {
		return seasons
	}
	cut := len(seasons) - w.seasonsPerLeague
	for _, s := range seasons[:cut] {
		_ = os.Remove(BracketSnapshotPath(w.basePath, leagueID, s))
	}
	return append([]string(nil), seasons[cut:]...)
}
