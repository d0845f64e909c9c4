package cmd

import (
	"context"
	"regexp"
	"testing"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/moodstore"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
)

func setupTestSlot(t *testing.T, dir string) storage.Slot {
	t.Helper()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// setupTestEnv points the command globals at a fresh markdown-backed store
// in dir.
func setupTestEnv(t *testing.T, dir string) {
	t.Helper()
	slot = setupTestSlot(t, dir)
	moods = moodstore.New(slot)
	store := moods
	t.Cleanup(func() { store.Close(context.Background()) })
	appConfig = &config.Config{
		Storage: "markdown",
		DataDir: dir,
		Shell:   config.ShellConfig{NoMoodIcon: "·", StreakIcon: "🔥"},
	}
	jsonOutput = false
}

func stripANSI(s string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`).ReplaceAllString(s, "")
}
