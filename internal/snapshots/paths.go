package snapshots

import (
	"errors"
	"path/filepath"
	"regexp"
)

var (
	errInvalidKey = errors.New("snapshot league and season must be plain identifiers")
	segmentRe     = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9_.-]*$`)
)

// BracketSnapshotPath builds the path to a bracket snapshot for a league season.
func BracketSnapshotPath(basePath, leagueID, season string) string {
	return filepath.Join(basePath, string(kindBrackets), leagueID, season+".json")
}

// validSegment rejects ids that could escape the snapshot root.
func validSegment(s string) bool {
	return segmentRe.MatchString(s) && s != "." && s != ".."
}

func validateKey(leagueID, season string) error {
	if !validSegment(leagueID) || !validSegment(season) {
		return errInvalidKey
	}
	return nil
}
