package config

// SnapshotsConfig controls the on-disk archive of completed brackets.
type SnapshotsConfig struct {
	Enabled          bool
	Folder           string // base path for snapshots
	SeasonsPerLeague int    // retention per league, newest kept
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Enabled:          boolEnvOrDefault(envSnapshotsOn, defaultSnapshotsOn),
		Folder:           envOrDefault(envSnapshotFolder, defaultSnapshotFolder),
		SeasonsPerLeague: intEnvOrDefault(envSnapshotSeasons, defaultSnapshotSeasons),
	}
}
