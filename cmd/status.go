package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/chris-regnier/moodctl/internal/shell"
	"github.com/spf13/cobra"
)

// statusData holds the template data for status formatting.
type statusData struct {
	MoodIcon   string
	Mood       string
	TodayCount int
	Streak     int
	StreakIcon string
	Backend    string
	HasMood    bool
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mood prompt status",
	Long: `Show mood status for shell prompt integration.

Outputs the latest mood, the number of moods recorded today and the streak
of consecutive days with at least one mood.

Use --env to output shell environment variable assignments.
Use --format with a Go template for custom output.`,
	Example: `  moodctl status
  moodctl status --env
  moodctl status --format "{{.MoodIcon}} {{.TodayCount}} today"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFlag, _ := cmd.Flags().GetBool("env")
		formatFlag, _ := cmd.Flags().GetString("format")
		return statusRun(cmd.Context(), os.Stdout, envFlag, formatFlag)
	},
}

func statusRun(ctx context.Context, w io.Writer, env bool, format string) error {
	st := shell.ComputeStatus(moods.Load(ctx), time.Now())
	data := buildStatusData(st)

	if env {
		return outputEnv(w, data)
	}
	if format != "" {
		return outputTemplate(w, data, format)
	}
	return outputDefault(w, data)
}

func buildStatusData(st shell.Status) statusData {
	data := statusData{
		MoodIcon:   appConfig.Shell.NoMoodIcon,
		TodayCount: st.TodayCount,
		Streak:     st.Streak,
		StreakIcon: appConfig.Shell.StreakIcon,
		Backend:    appConfig.Storage,
	}
	if st.Latest != nil {
		data.MoodIcon = st.Latest.Mood.Emoji
		data.Mood = st.Latest.Mood.Description
		data.HasMood = true
	}
	return data
}

func outputEnv(w io.Writer, data statusData) error {
	fmt.Fprintf(w, "export MOODCTL_MOOD=%q\n", data.MoodIcon)
	fmt.Fprintf(w, "export MOODCTL_TODAY_COUNT=%q\n", fmt.Sprintf("%d", data.TodayCount))
	fmt.Fprintf(w, "export MOODCTL_STREAK=%q\n", fmt.Sprintf("%d", data.Streak))
	fmt.Fprintf(w, "export MOODCTL_STREAK_ICON=%q\n", data.StreakIcon)
	if data.Backend != "" {
		fmt.Fprintf(w, "export MOODCTL_BACKEND=%q\n", data.Backend)
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	parts := []string{fmt.Sprintf("%s %d%s", data.MoodIcon, data.Streak, data.StreakIcon)}

	if appConfig.Shell.ShowCount {
		parts = append(parts, fmt.Sprintf("%d today", data.TodayCount))
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
	return nil
}

func init() {
	statusCmd.Flags().Bool("env", false, "output shell environment variable assignments")
	statusCmd.Flags().String("format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
