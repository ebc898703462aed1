package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"shuttle/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The watched folders are created on disk because most tests exercise real
// file moves; tests probing missing-folder behavior remove them again.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ImportDir = filepath.Join(base, "import")
	cfg.Paths.FailedDir = filepath.Join(base, "failed")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.DBPath = ""

	for _, dir := range []string{cfg.Paths.ImportDir, cfg.Paths.FailedDir, cfg.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithoutWatchedDirs removes the watched folders so access checks can observe
// missing directories.
func WithoutWatchedDirs() ConfigOption {
	return func(cfg *config.Config) {
		_ = os.RemoveAll(cfg.Paths.ImportDir)
		_ = os.RemoveAll(cfg.Paths.FailedDir)
	}
}
