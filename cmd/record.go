package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var recordConfirm bool

// ErrUnknownMood is returned when the argument names no catalog option.
var ErrUnknownMood = errors.New("unknown mood")

var recordCmd = &cobra.Command{
	Use:   "record <emoji|description>",
	Short: "Record a mood",
	Long: `Record a mood without opening the picker.

The mood is matched against the palette by emoji or by description
(case-insensitive). Run "moodctl moods" to list the palette.`,
	Example: `  moodctl record happy
  moodctl record 🤔
  moodctl record --confirm frustrated
  moodctl record celebratory --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		if recordConfirm && term.IsTerminal(int(os.Stdin.Fd())) {
			option, ok := mood.DefaultCatalog.Lookup(input)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownMood, input)
			}
			ok, err := ui.Confirm(fmt.Sprintf("Record %s?", option), ui.ResolveTheme(appConfig.Theme))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "Cancelled.")
				return nil
			}
		}
		return recordRun(cmd.Context(), os.Stdout, input)
	},
}

func recordRun(ctx context.Context, w io.Writer, input string) error {
	option, ok := mood.DefaultCatalog.Lookup(input)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMood, input)
	}

	moods.Load(ctx)
	r := moods.Append(option)

	if err := moods.Flush(ctx); err != nil {
		return fmt.Errorf("saving mood: %w", err)
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToRecordJSON(r))
	}
	ui.FormatRecorded(w, r)
	return nil
}

func init() {
	recordCmd.Flags().BoolVar(&recordConfirm, "confirm", false, "ask before recording")
	rootCmd.AddCommand(recordCmd)
}
