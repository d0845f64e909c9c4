package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/mood"
)

// DefaultPreset is used when the config names no preset or an unknown one.
const DefaultPreset = "dusk"

// Theme holds resolved lipgloss colors for TUI rendering. Each mood in the
// palette gets its own color, keyed by description.
type Theme struct {
	Text          lipgloss.Color
	Subtle        lipgloss.Color
	Accent        lipgloss.Color
	Warn          lipgloss.Color
	Background    lipgloss.Color
	Moods         map[string]lipgloss.Color
	MarkdownStyle string
}

var presets = map[string]Theme{
	"dusk": {
		Text:       "#E6E6F0",
		Subtle:     "#7A7F9E",
		Accent:     "#8C93D9",
		Warn:       "#E06C75",
		Background: "#1F2133",
		Moods: map[string]lipgloss.Color{
			"studious":    "#5DA9E9",
			"pensive":     "#B39DDB",
			"happy":       "#F6C85F",
			"celebratory": "#F28CB1",
			"frustrated":  "#E76F51",
		},
		MarkdownStyle: "dark",
	},
	"dawn": {
		Text:       "#2B2D42",
		Subtle:     "#6C6F85",
		Accent:     "#4A5AC7",
		Warn:       "#C0392B",
		Background: "#F7F4EC",
		Moods: map[string]lipgloss.Color{
			"studious":    "#1D6FB8",
			"pensive":     "#6A4C93",
			"happy":       "#B7791F",
			"celebratory": "#C2185B",
			"frustrated":  "#B23A1E",
		},
		MarkdownStyle: "light",
	},
	// The colors of the original mobile picker.
	"twilight": {
		Text:       "#2C3050",
		Subtle:     "#6B7094",
		Accent:     "#454C73",
		Warn:       "#E06C75",
		Background: "#E7F3E7",
		Moods: map[string]lipgloss.Color{
			"studious":    "#454C73",
			"pensive":     "#5C6496",
			"happy":       "#3E7D4F",
			"celebratory": "#8E4585",
			"frustrated":  "#A4462F",
		},
		MarkdownStyle: "light",
	},
}

// Presets returns the names of the built-in themes.
func Presets() []string {
	return []string{"dusk", "dawn", "twilight"}
}

// ResolveTheme picks the configured preset and applies color overrides.
// Mood overrides are matched by description, case-insensitively.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	base, ok := presets[cfg.Preset]
	if !ok {
		base = presets[DefaultPreset]
	}

	t := base
	t.Moods = make(map[string]lipgloss.Color, len(base.Moods))
	for k, v := range base.Moods {
		t.Moods[k] = v
	}

	override := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&t.Text, cfg.Text)
	override(&t.Subtle, cfg.Subtle)
	override(&t.Accent, cfg.Accent)
	override(&t.Warn, cfg.Warn)
	override(&t.Background, cfg.Background)
	for name, color := range cfg.Moods {
		if color != "" {
			t.Moods[strings.ToLower(strings.TrimSpace(name))] = lipgloss.Color(color)
		}
	}
	if cfg.MarkdownStyle != "" {
		t.MarkdownStyle = cfg.MarkdownStyle
	}
	return t
}

// on returns a style with foreground fg over the theme background.
func (t Theme) on(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(t.Background)
}

// MoodColor returns the color of a mood, or the accent for moods the theme
// does not know.
func (t Theme) MoodColor(o mood.Option) lipgloss.Color {
	if c, ok := t.Moods[o.Description]; ok {
		return c
	}
	return t.Accent
}

func (t Theme) HelpStyle() lipgloss.Style   { return t.on(t.Subtle) }
func (t Theme) HeaderStyle() lipgloss.Style { return t.on(t.Text).Bold(true) }
func (t Theme) AccentStyle() lipgloss.Style { return t.on(t.Accent) }
func (t Theme) WarnStyle() lipgloss.Style   { return t.on(t.Warn) }
func (t Theme) PaneStyle() lipgloss.Style   { return t.on(t.Text) }

// BadgeStyle draws one palette entry. The highlighted entry is filled with
// its mood color; the others keep an invisible border so the row does not
// shift when the highlight moves.
func (t Theme) BadgeStyle(o mood.Option, highlighted bool) lipgloss.Style {
	s := t.on(t.Text).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderBackground(t.Background)
	if !highlighted {
		return s.BorderForeground(t.Background)
	}
	c := t.MoodColor(o)
	return s.BorderForeground(c).Background(c)
}

// CaptionStyle draws the description under the highlighted mood.
func (t Theme) CaptionStyle(o mood.Option) lipgloss.Style {
	return t.on(t.MoodColor(o)).Bold(true)
}

// AcknowledgementStyle frames the confirmation image in the color of the
// mood just recorded.
func (t Theme) AcknowledgementStyle(o mood.Option) lipgloss.Style {
	c := t.MoodColor(o)
	return t.on(c).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		BorderBackground(t.Background)
}

// eraseLine sets the background and erases to the end of the line, so the
// theme color reaches the right edge even when width measurement is off.
// The color sequence comes from the lipgloss renderer and is empty on
// terminals without color.
func (t Theme) eraseLine() string {
	seq, _, _ := strings.Cut(lipgloss.NewStyle().Background(t.Background).Render("x"), "x")
	return seq + "\x1b[K"
}

// Fill paints content onto a width by height screen of the theme
// background. When contentWidth is narrower than the screen the content
// column is centered. Content taller than the screen is cut off.
func (t Theme) Fill(content string, width, height, contentWidth int) string {
	bg := lipgloss.NewStyle().Background(t.Background)
	pad := func(n int) string {
		if n <= 0 {
			return ""
		}
		return bg.Render(strings.Repeat(" ", n))
	}

	margin := 0
	if contentWidth > 0 && contentWidth < width {
		margin = (width - contentWidth) / 2
	}
	eol := t.eraseLine()

	src := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		if i >= len(src) {
			out[i] = pad(width) + eol
			continue
		}
		line := src[i]
		out[i] = pad(margin) + line + pad(width-margin-lipgloss.Width(line)) + eol
	}
	return strings.Join(out, "\n")
}

// NewList creates the history list styled with the theme. Filtering is not
// offered, so only the item and pagination styles are set.
func (t Theme) NewList(items []list.Item, width, height int) list.Model {
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = t.on(t.Text).Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = t.on(t.Subtle).Padding(0, 0, 0, 2)
	d.Styles.SelectedTitle = t.on(t.Accent).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Accent).
		BorderBackground(t.Background).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(t.Subtle)

	l := list.New(items, d, width, height)
	l.Styles.Title = t.HeaderStyle()
	l.Styles.TitleBar = lipgloss.NewStyle().Background(t.Background)
	l.Styles.PaginationStyle = t.on(t.Subtle)
	l.Styles.ActivePaginationDot = t.on(t.Accent)
	l.Styles.InactivePaginationDot = t.on(t.Subtle)
	l.Styles.NoItems = t.on(t.Subtle)
	return l
}
