package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "markdown" {
		t.Errorf("expected storage 'markdown', got %q", cfg.Storage)
	}
	if cfg.SQLiteDriver != "libsql" {
		t.Errorf("expected sqlite_driver 'libsql', got %q", cfg.SQLiteDriver)
	}
	if !cfg.Acknowledge {
		t.Error("expected acknowledge to default to true")
	}
	if cfg.Theme.Preset != "dusk" {
		t.Errorf("expected preset 'dusk', got %q", cfg.Theme.Preset)
	}
	if cfg.Theme.MarkdownStyle != "" {
		t.Errorf("expected empty markdown_style (uses preset default), got %q", cfg.Theme.MarkdownStyle)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Stderr != "auto" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if filepath.Base(cfg.DataDir) != ".moodctl" {
		t.Errorf("expected data dir under .moodctl, got %q", cfg.DataDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
storage = "sqlite"
sqlite_driver = "modernc"
acknowledge = false

[theme]
preset = "dawn"
accent = "#FF0000"
markdown_style = "light"

[theme.moods]
happy = "#FFD700"

[log]
level = "debug"
format = "json"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage != "sqlite" {
		t.Errorf("expected storage 'sqlite', got %q", cfg.Storage)
	}
	if cfg.SQLiteDriver != "modernc" {
		t.Errorf("expected sqlite_driver 'modernc', got %q", cfg.SQLiteDriver)
	}
	if cfg.Acknowledge {
		t.Error("expected acknowledge false")
	}
	if cfg.Theme.Preset != "dawn" {
		t.Errorf("expected preset 'dawn', got %q", cfg.Theme.Preset)
	}
	if cfg.Theme.Accent != "#FF0000" {
		t.Errorf("expected accent '#FF0000', got %q", cfg.Theme.Accent)
	}
	if got := cfg.Theme.Moods["happy"]; got != "#FFD700" {
		t.Errorf("expected happy mood color '#FFD700', got %q", got)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MOODCTL_STORAGE", "memory")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage != "memory" {
		t.Errorf("expected storage 'memory' from env, got %q", cfg.Storage)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
