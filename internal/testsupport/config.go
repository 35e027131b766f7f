package testsupport

import (
	"path/filepath"
	"testing"

	"filmshelf/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.ExportDir = filepath.Join(base, "site")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.OMDB.APIKey = "test"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithPersistentStore disables the destructive schema reset on the test config.
func WithPersistentStore() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Database.ResetOnOpen = false
	}
}
