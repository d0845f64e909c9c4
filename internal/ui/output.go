package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

const timeLayout = "2006-01-02 15:04"

// FormatRecorded formats a confirmation message for a new record.
func FormatRecorded(w io.Writer, r mood.Record) {
	fmt.Fprintf(w, "Recorded %s (%s)\n", r.Mood.String(), r.Time().Local().Format(timeLayout))
}

// FormatHistory writes one line per record, oldest first.
func FormatHistory(w io.Writer, h mood.History) {
	if len(h) == 0 {
		fmt.Fprintln(w, "No moods recorded.")
		return
	}
	for _, r := range h {
		fmt.Fprintf(w, "%s  %s  %s\n", r.Time().Local().Format(timeLayout), r.Mood.Emoji, r.Mood.Description)
	}
}

// HistoryMarkdown builds a markdown document of the history grouped by day,
// oldest day first.
func HistoryMarkdown(h mood.History) string {
	var b strings.Builder
	b.WriteString("# Mood history\n\n")
	if len(h) == 0 {
		b.WriteString("_No moods recorded._\n")
		return b.String()
	}

	day := ""
	for _, r := range h {
		t := r.Time().Local()
		if d := t.Format("2006-01-02"); d != day {
			if day != "" {
				b.WriteString("\n")
			}
			day = d
			fmt.Fprintf(&b, "## %s\n\n", d)
			b.WriteString("| Time | Mood | |\n|---|---|---|\n")
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", t.Format("15:04"), r.Mood.Emoji, r.Mood.Description)
	}
	return b.String()
}

// FormatHistoryMarkdown renders the history as markdown with glamour.
func FormatHistoryMarkdown(w io.Writer, h mood.History, width int, markdownStyle string) {
	fmt.Fprintln(w, RenderMarkdownWithStyle(HistoryMarkdown(h), width, markdownStyle))
}

// FormatCatalog lists the palette with the digit that picks each mood.
func FormatCatalog(w io.Writer, c mood.Catalog) {
	for i, o := range c {
		fmt.Fprintf(w, "%d  %s  %s\n", i+1, o.Emoji, o.Description)
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// RecordJSON is the JSON representation of a record for command output.
type RecordJSON struct {
	Emoji       string    `json:"emoji"`
	Description string    `json:"description"`
	Timestamp   int64     `json:"timestamp"`
	Time        time.Time `json:"time"`
}

// ToRecordJSON converts a record for JSON output.
func ToRecordJSON(r mood.Record) RecordJSON {
	return RecordJSON{
		Emoji:       r.Mood.Emoji,
		Description: r.Mood.Description,
		Timestamp:   r.Timestamp,
		Time:        r.Time(),
	}
}
