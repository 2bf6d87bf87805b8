package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadBracket(leagueID, season string) (bracket.Response, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadBracket reads the snapshot for a league season from disk.
// Files are expected at {basePath}/brackets/{leagueID}/{season}.json with a Response payload.
// A missing snapshot returns an error satisfying errors.Is(err, fs.ErrNotExist).
func (s *FSStore) LoadBracket(leagueID, season string) (bracket.Response, error) {
	if s == nil {
		return bracket.Response{}, errors.New("snapshot store not configured")
	}
	if err := validateKey(leagueID, season); err != nil {
		return bracket.Response{}, err
	}

	var payload bracket.Response
	if err := s.decodeFile(BracketSnapshotPath(s.basePath, leagueID, season), &payload); err != nil {
		return bracket.Response{}, err
	}
	if payload.LeagueID == "" {
		payload.LeagueID = leagueID
	}
	if payload.Season == "" {
		payload.Season = season
	}
	return payload, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
