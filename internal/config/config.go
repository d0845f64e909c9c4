package config

import (
	"os"
	"path/filepath"

	"github.com/chris-regnier/moodctl/internal/logging"
	"github.com/spf13/viper"
)

// ShellConfig holds shell integration configuration.
type ShellConfig struct {
	NoMoodIcon string `mapstructure:"no_mood_icon"`
	StreakIcon string `mapstructure:"streak_icon"`
	ShowCount  bool   `mapstructure:"show_count"`
}

// ThemeConfig selects a theme preset and optional color overrides.
type ThemeConfig struct {
	Preset        string            `mapstructure:"preset"`
	Text          string            `mapstructure:"text"`
	Subtle        string            `mapstructure:"subtle"`
	Accent        string            `mapstructure:"accent"`
	Warn          string            `mapstructure:"warn"`
	Background    string            `mapstructure:"background"`
	MarkdownStyle string            `mapstructure:"markdown_style"`
	Moods         map[string]string `mapstructure:"moods"` // description -> color
}

// Config holds the application configuration.
type Config struct {
	Storage      string         `mapstructure:"storage"`
	DataDir      string         `mapstructure:"data_dir"`
	SQLiteDriver string         `mapstructure:"sqlite_driver"`
	MaxWidth     int            `mapstructure:"max_width"`
	Acknowledge  bool           `mapstructure:"acknowledge"`
	Theme        ThemeConfig    `mapstructure:"theme"`
	Shell        ShellConfig    `mapstructure:"shell"`
	Log          logging.Config `mapstructure:"log"`
}

// DefaultDataDir returns the default data directory (~/.moodctl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".moodctl")
	}
	return filepath.Join(home, ".moodctl")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "markdown")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("sqlite_driver", "libsql")
	v.SetDefault("max_width", 100)
	v.SetDefault("acknowledge", true)
	v.SetDefault("theme.preset", "dusk")
	v.SetDefault("theme.text", "")
	v.SetDefault("theme.subtle", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.warn", "")
	v.SetDefault("theme.background", "")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("shell.no_mood_icon", "·")
	v.SetDefault("shell.streak_icon", "🔥")
	v.SetDefault("shell.show_count", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.stderr", "auto")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "moodctl"))
		}
		v.AddConfigPath(filepath.Join(DefaultDataDir()))
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MOODCTL_STORAGE, MOODCTL_DATA_DIR, etc.
	v.SetEnvPrefix("MOODCTL")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
