package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int          `json:"version"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Retention   Retention    `json:"retention"`
	Brackets    BracketsMeta `json:"brackets"`
}

type Retention struct {
	SeasonsPerLeague int `json:"seasonsPerLeague"`
}

type BracketsMeta struct {
	// Seasons lists the archived seasons per league id, oldest first.
	Seasons       map[string][]string `json:"seasons"`
	LastRefreshed time.Time           `json:"lastRefreshed"`
}

func defaultManifest(retention int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			SeasonsPerLeague: retention,
		},
		Brackets: BracketsMeta{
			Seasons: map[string][]string{},
		},
	}
}

func readManifest(path string, retention int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retention), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retention), err
	}
	if m.Brackets.Seasons == nil {
		m.Brackets.Seasons = map[string][]string{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
