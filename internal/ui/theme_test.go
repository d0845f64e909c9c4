package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/mood"
)

func TestPresetsColorEveryMood(t *testing.T) {
	for _, name := range Presets() {
		t.Run(name, func(t *testing.T) {
			theme := ResolveTheme(config.ThemeConfig{Preset: name})
			seen := map[lipgloss.Color]string{}
			for _, o := range mood.DefaultCatalog {
				c, ok := theme.Moods[o.Description]
				if !ok || c == "" {
					t.Fatalf("no color for %q", o.Description)
				}
				if prev, dup := seen[c]; dup {
					t.Errorf("%q and %q share color %v", prev, o.Description, c)
				}
				seen[c] = o.Description
				if c == theme.Background {
					t.Errorf("%q is drawn in the background color", o.Description)
				}
			}
			if theme.MarkdownStyle == "" {
				t.Error("expected a markdown style")
			}
		})
	}
}

func TestResolveThemeUnknownPresetFallsBack(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "nonexistent"})
	want := ResolveTheme(config.ThemeConfig{Preset: DefaultPreset})

	if theme.Background != want.Background || theme.MarkdownStyle != want.MarkdownStyle {
		t.Errorf("expected fallback to %s, got %+v", DefaultPreset, theme)
	}
}

func TestResolveThemeMoodOverride(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Preset: "dusk",
		Accent: "#FF0000",
		Moods:  map[string]string{" Happy ": "#FFD700", "pensive": ""},
	})

	happy := mood.DefaultCatalog[2]
	if got := theme.MoodColor(happy); got != "#FFD700" {
		t.Errorf("happy = %v, want #FFD700", got)
	}
	if got := theme.Moods["pensive"]; got != presets["dusk"].Moods["pensive"] {
		t.Errorf("empty override replaced pensive with %v", got)
	}
	if theme.Accent != "#FF0000" {
		t.Errorf("accent = %v, want #FF0000", theme.Accent)
	}

	// Overrides must not leak into the shared preset.
	if presets["dusk"].Moods["happy"] == "#FFD700" {
		t.Error("override mutated the dusk preset")
	}
	if again := ResolveTheme(config.ThemeConfig{Preset: "dusk"}); again.MoodColor(happy) == "#FFD700" {
		t.Error("override visible in a later resolve")
	}
}

func TestMoodColorFallsBackToAccent(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dawn"})
	custom := mood.Option{Emoji: "🫠", Description: "melting"}
	if got := theme.MoodColor(custom); got != theme.Accent {
		t.Errorf("unknown mood color = %v, want accent %v", got, theme.Accent)
	}
}

func TestBadgeStyleUsesMoodColor(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "twilight"})

	for _, o := range mood.DefaultCatalog {
		on := theme.BadgeStyle(o, true)
		if got := on.GetBackground(); got != theme.Moods[o.Description] {
			t.Errorf("%s highlighted background = %v, want %v", o.Description, got, theme.Moods[o.Description])
		}
		if got := on.GetBorderTopForeground(); got != theme.Moods[o.Description] {
			t.Errorf("%s highlighted border = %v, want %v", o.Description, got, theme.Moods[o.Description])
		}

		off := theme.BadgeStyle(o, false)
		if got := off.GetBackground(); got != theme.Background {
			t.Errorf("%s plain background = %v, want %v", o.Description, got, theme.Background)
		}
		if got := off.GetBorderTopForeground(); got != theme.Background {
			t.Errorf("%s plain border should be hidden, got %v", o.Description, got)
		}
	}
}

func TestBadgeKeepsSizeWhenHighlighted(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	o := mood.DefaultCatalog[0]

	on := theme.BadgeStyle(o, true).Render(o.Emoji)
	off := theme.BadgeStyle(o, false).Render(o.Emoji)
	if lipgloss.Width(on) != lipgloss.Width(off) || lipgloss.Height(on) != lipgloss.Height(off) {
		t.Errorf("badge resized on highlight: %dx%d vs %dx%d",
			lipgloss.Width(on), lipgloss.Height(on), lipgloss.Width(off), lipgloss.Height(off))
	}
}

func TestCaptionAndAcknowledgementFollowMood(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dusk"})
	frustrated := mood.DefaultCatalog[4]
	want := theme.Moods["frustrated"]

	if got := theme.CaptionStyle(frustrated).GetForeground(); got != want {
		t.Errorf("caption foreground = %v, want %v", got, want)
	}

	ack := theme.AcknowledgementStyle(frustrated)
	if got := ack.GetBorderTopForeground(); got != want {
		t.Errorf("acknowledgement border = %v, want %v", got, want)
	}
	if got := ack.GetBorderTopBackground(); got != theme.Background {
		t.Errorf("acknowledgement border background = %v, want %v", got, theme.Background)
	}
	if !ack.GetBorderTop() {
		t.Error("expected a framed acknowledgement")
	}
}

func TestFillDimensions(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	lines := strings.Split(stripANSI(theme.Fill("hello", 40, 10, 40)), "\n")

	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d: width %d, want 40", i, w)
		}
	}
}

func TestFillCentersContentColumn(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	first := strings.Split(stripANSI(theme.Fill("hello", 100, 5, 60)), "\n")[0]

	if !strings.HasPrefix(first, strings.Repeat(" ", 20)+"hello") {
		t.Errorf("expected a 20-column margin, got %q", first)
	}
}

func TestFillCutsTallContent(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	out := stripANSI(theme.Fill("a\nb\nc\nd", 10, 2, 10))

	if lineCount(out) != 2 || strings.Contains(out, "c") {
		t.Errorf("expected two rows, got %q", out)
	}
}

func TestFillErasesToEndOfLine(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{})
	for i, line := range strings.Split(theme.Fill("hello", 40, 3, 40), "\n") {
		if !strings.HasSuffix(line, "\x1b[K") {
			t.Errorf("line %d: expected to end with the erase sequence", i)
		}
	}
}

func TestHistoryListUsesThemeBackground(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{Preset: "dawn"})
	l := theme.NewList(nil, 40, 10)

	styles := map[string]lipgloss.Style{
		"Title":                 l.Styles.Title,
		"PaginationStyle":       l.Styles.PaginationStyle,
		"ActivePaginationDot":   l.Styles.ActivePaginationDot,
		"InactivePaginationDot": l.Styles.InactivePaginationDot,
		"NoItems":               l.Styles.NoItems,
	}
	for name, style := range styles {
		if style.GetBackground() != theme.Background {
			t.Errorf("%s: background %v, want %v", name, style.GetBackground(), theme.Background)
		}
	}
}
