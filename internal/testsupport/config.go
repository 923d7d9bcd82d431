package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"ordo/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Archive.Destination = filepath.Join(base, "archive")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Sources = []config.SourceRoot{
		{Path: filepath.Join(base, "movies"), Kind: config.SourceKindMovie},
		{Path: filepath.Join(base, "subs"), Kind: config.SourceKindSubtitle},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	dirs := []string{cfg.Archive.Destination, cfg.Paths.StateDir}
	for _, source := range cfg.Sources {
		dirs = append(dirs, source.Path)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create test dir %s: %v", dir, err)
		}
	}
	return &cfg
}

// WithWorkers overrides the executor worker count.
func WithWorkers(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Archive.Workers = n
	}
}

// WithVerifyChecksums enables SHA-256 copy verification.
func WithVerifyChecksums() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Archive.VerifyChecksums = true
	}
}

// MovieRoot returns the first movie source root path of a test config.
func MovieRoot(cfg *config.Config) string {
	return cfg.Sources[0].Path
}

// SubtitleRoot returns the first subtitle source root path of a test config.
func SubtitleRoot(cfg *config.Config) string {
	return cfg.Sources[1].Path
}
