package snapshots

// Archive reads and writes bracket snapshots under one root.
type Archive struct {
	*FSStore
	*Writer
}

// NewArchive constructs an Archive rooted at basePath.
func NewArchive(basePath string, seasonsPerLeague int) *Archive {
	return &Archive{
		FSStore: NewFSStore(basePath),
		Writer:  NewWriter(basePath, seasonsPerLeague),
	}
}
