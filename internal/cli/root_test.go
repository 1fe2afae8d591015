package cli

import (
	"path/filepath"
	"testing"

	"habittrack/internal/storage/sqlite"
	"habittrack/internal/tracker"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &Context{Store: store, Tracker: tracker.New(store)}
}

func TestNeedsOnboarding(t *testing.T) {
	ctx := setupTestContext(t)

	if !ctx.NeedsOnboarding() {
		t.Error("NeedsOnboarding() = false on a fresh store")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() returned unexpected error: %v", err)
	}
	settings.OnboardingCompleted = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() returned unexpected error: %v", err)
	}

	if ctx.NeedsOnboarding() {
		t.Error("NeedsOnboarding() = true after the flag was set")
	}
}
