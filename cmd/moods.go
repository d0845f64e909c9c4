package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List the mood palette",
	Example: `  moodctl moods
  moodctl moods --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return moodsRun(os.Stdout)
	},
}

func moodsRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, mood.DefaultCatalog)
	}
	ui.FormatCatalog(w, mood.DefaultCatalog)
	return nil
}

func init() {
	rootCmd.AddCommand(moodsCmd)
}
