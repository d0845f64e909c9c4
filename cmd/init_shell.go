package cmd

import (
	"github.com/chris-regnier/moodctl/internal/shell"
	"github.com/spf13/cobra"
)

var initShellCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Output shell integration script",
	Long: `Output shell integration script for eval.

The script sets up:
- a prompt hook that exports MOODCTL_MOOD, MOODCTL_STREAK and friends
- moodctl_prompt_info, which prints the latest mood and day streak for
  your prompt ("😊 3🔥", or "😊?" when nothing was recorded today)
- a "mood" function: "mood" opens the picker, "mood happy" records
- shell completions

Supported shells: bash, zsh, fish`,
	Example: `  # Add to ~/.bashrc
  eval "$(moodctl init bash)"

  # Add to ~/.zshrc
  eval "$(moodctl init zsh)"
  PROMPT='$(moodctl_prompt_info) %~ %# '

  # Add to ~/.config/fish/config.fish
  moodctl init fish | source`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: shell.Shells,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.WriteInit(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(initShellCmd)
}
