package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filmshelf/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if !cfg.Database.ResetOnOpen {
		t.Fatal("expected destructive reset to be the default")
	}
	if cfg.OMDB.TimeoutSeconds != 10 {
		t.Fatalf("expected 10s OMDb timeout, got %d", cfg.OMDB.TimeoutSeconds)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected file to be reported missing")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.OMDB.BaseURL != "http://www.omdbapi.com/" {
		t.Fatalf("unexpected default base url %q", cfg.OMDB.BaseURL)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
library_dir = "` + filepath.Join(dir, "library") + `"
export_dir = "` + filepath.Join(dir, "site") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[database]
reset_on_open = false

[omdb]
api_key = "abc123"
timeout_seconds = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Database.ResetOnOpen {
		t.Fatal("expected reset_on_open=false to be honored")
	}
	if cfg.OMDB.APIKey != "abc123" {
		t.Fatalf("unexpected api key %q", cfg.OMDB.APIKey)
	}
	if cfg.OMDB.TimeoutSeconds != 5 {
		t.Fatalf("unexpected timeout %d", cfg.OMDB.TimeoutSeconds)
	}
	if !filepath.IsAbs(cfg.Paths.LibraryDir) {
		t.Fatalf("expected absolute library dir, got %q", cfg.Paths.LibraryDir)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Paths.LibraryDir, "filmshelf.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestOMDBKeyEnvFallback(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "from-env")
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OMDB.APIKey != "from-env" {
		t.Fatalf("expected env fallback, got %q", cfg.OMDB.APIKey)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(dir, "library")
	cfg.Paths.ExportDir = filepath.Join(dir, "site")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, d := range []string{cfg.Paths.LibraryDir, cfg.Paths.ExportDir, cfg.Paths.LogDir} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist: %v", d, err)
		}
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[omdb]") {
		t.Fatal("sample config missing [omdb] section")
	}
}
