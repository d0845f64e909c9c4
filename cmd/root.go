package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/logging"
	"github.com/chris-regnier/moodctl/internal/moodstore"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
	"github.com/chris-regnier/moodctl/internal/storage/memory"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// closeTimeout bounds how long shutdown waits for pending writes.
const closeTimeout = 5 * time.Second

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	slot           storage.Slot
	moods          *moodstore.Store
)

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "A mood tracking CLI tool",
	Long:  "moodctl records how you feel from a fixed palette of moods and keeps the history in a pluggable storage backend.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		logging.Configure(appConfig.Log)

		slot, err = openSlot(appConfig)
		if err != nil {
			return err
		}
		moods = moodstore.New(slot)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to the history listing
			return historyRun(cmd.Context(), os.Stdout, 0, false)
		}
		loaded := moods.LoadAsync(cmd.Context())
		return ui.RunPicker(moods, loaded, ui.PickerConfig{
			MaxWidth:    appConfig.MaxWidth,
			Acknowledge: appConfig.Acknowledge,
			Theme:       ui.ResolveTheme(appConfig.Theme),
		})
	},
}

// openSlot initializes the configured storage backend.
func openSlot(cfg *config.Config) (storage.Slot, error) {
	switch cfg.Storage {
	case "markdown":
		s, err := markdown.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing markdown storage: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.NewWithDriver(cfg.DataDir, cfg.SQLiteDriver)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// shutdown drains pending writes and releases the storage backend.
func shutdown() {
	log := logging.NewLogger("cmd")
	if moods != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		if err := moods.Close(ctx); err != nil {
			log.WithError(err).Warn("Pending mood writes were not saved")
		}
		cancel()
		moods = nil
	}
	if slot != nil {
		if err := slot.Close(); err != nil {
			log.WithError(err).Warn("Closing storage")
		}
		slot = nil
	}
}

// Execute runs the root command.
func Execute() error {
	defer shutdown()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (markdown|sqlite|memory)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
