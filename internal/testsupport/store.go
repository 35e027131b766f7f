package testsupport

import (
	"testing"

	"filmshelf/internal/config"
	"filmshelf/internal/library"
	"filmshelf/internal/logging"
)

// MustOpenStore opens a collection store for the supplied config and closes
// it when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}
