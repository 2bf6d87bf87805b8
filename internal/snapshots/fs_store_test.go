package snapshots

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

func TestFSStoreLoadBracket(t *testing.T) {
	dir := t.TempDir()
	path := BracketSnapshotPath(dir, "57", "2023-2024")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create brackets dir: %v", err)
	}

	snap := finishedBracket("", "")
	data, _ := json.Marshal(snap)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write bracket snapshot: %v", err)
	}

	got, err := NewFSStore(dir).LoadBracket("57", "2023-2024")
	if err != nil {
		t.Fatalf("failed to load bracket: %v", err)
	}
	if got.LeagueID != "57" || got.Season != "2023-2024" {
		t.Fatalf("expected ids filled from key, got %s/%s", got.LeagueID, got.Season)
	}
	if got.Bracket.Final == nil || got.Bracket.Final.Winner.ID != 1 {
		t.Fatalf("unexpected bracket snapshot: %+v", got.Bracket.Final)
	}
}

func TestFSStoreErrors(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadBracket("57", "2023-2024"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error for missing snapshot, got %v", err)
	}
	for _, key := range [][2]string{{"", "2023-2024"}, {"57", ""}, {"..", "2023-2024"}, {"57", "../x"}, {"a/b", "2023-2024"}} {
		if _, err := store.LoadBracket(key[0], key[1]); !errors.Is(err, errInvalidKey) {
			t.Fatalf("expected invalid key error for %v, got %v", key, err)
		}
	}
	var nilStore *FSStore
	if _, err := nilStore.LoadBracket("57", "2023-2024"); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestDecodeFileError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brackets", "bad.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := NewFSStore(dir).decodeFile(path, &bracket.Response{}); err == nil {
		t.Fatalf("expected decode error")
	}
}
