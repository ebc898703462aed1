package folders

import (
	"path/filepath"

	"shuttle/internal/config"
)

// Folder is one watched directory with its display label.
type Folder struct {
	Label string
	Path  string
}

// Join resolves a filename inside the folder.
func (f Folder) Join(name string) string {
	return filepath.Join(f.Path, name)
}

// Configured reports whether the folder has a path set.
func (f Folder) Configured() bool {
	return f.Path != ""
}

// Set holds the two watched folders every lifecycle operation works against.
type Set struct {
	Import Folder
	Failed Folder
}

// FromConfig resolves the watched folders from configuration.
func FromConfig(cfg *config.Config) Set {
	return Set{
		Import: Folder{Label: cfg.Folders.ImportLabel, Path: cfg.Paths.ImportDir},
		Failed: Folder{Label: cfg.Folders.FailedLabel, Path: cfg.Paths.FailedDir},
	}
}
