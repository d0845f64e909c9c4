package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/moodstore"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	historyLimit    int
	historyMarkdown bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded moods",
	Long: `Show recorded moods, oldest first.

With --json the history is printed in its stored form.`,
	Example: `  moodctl history
  moodctl history --limit 10
  moodctl history --markdown
  moodctl history --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return historyRun(cmd.Context(), os.Stdout, historyLimit, historyMarkdown)
	},
}

func historyRun(ctx context.Context, w io.Writer, limit int, markdown bool) error {
	h := moods.Load(ctx)
	if limit > 0 && len(h) > limit {
		h = h[len(h)-limit:]
	}

	if jsonOutput {
		data, err := moodstore.Encode(h)
		if err != nil {
			return fmt.Errorf("encoding history: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	theme := ui.ResolveTheme(appConfig.Theme)
	var buf bytes.Buffer
	if markdown {
		ui.FormatHistoryMarkdown(&buf, h, appConfig.MaxWidth, theme.MarkdownStyle)
	} else {
		ui.FormatHistory(&buf, h)
	}
	return ui.OutputOrPage(w, buf.String(), false, appConfig.MaxWidth, theme)
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show only the most recent N records")
	historyCmd.Flags().BoolVar(&historyMarkdown, "markdown", false, "render as markdown tables grouped by day")
	rootCmd.AddCommand(historyCmd)
}
