package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/selection"
)

// MoodSource is everything the presentation layer may touch: a read-only
// history snapshot and the single mutation callback.
type MoodSource interface {
	History() mood.History
	SelectMood(option mood.Option)
}

// PickerConfig holds picker TUI settings.
type PickerConfig struct {
	MaxWidth    int          // maximum content width (0 = no limit)
	Acknowledge bool         // show the acknowledgement display after a confirm
	Theme       Theme        // resolved theme
	Catalog     mood.Catalog // palette; DefaultCatalog when empty
}

// Confirmation image shown in the acknowledgement display.
const acknowledgementArt = `   .-""""""-.
 .'          '.
/   O      O   \
:                :
|                |
:   \        /   :
 \   '.____.'   /
  '.          .'
    '-......-'`

// historyLoadedMsg carries the result of the store's initial load.
type historyLoadedMsg struct {
	history mood.History
}

// historyItem implements list.Item for a mood record.
type historyItem struct {
	record mood.Record
}

func (h historyItem) Title() string       { return h.record.Mood.String() }
func (h historyItem) Description() string { return h.record.Time().Local().Format("2006-01-02 15:04") }
func (h historyItem) FilterValue() string { return h.record.Mood.Description }

// pickerModel is the Bubble Tea model for the mood picker.
type pickerModel struct {
	source  MoodSource
	cfg     PickerConfig
	catalog mood.Catalog
	keys    pickerKeyMap
	help    help.Model

	machine *selection.Machine
	cursor  int // index of the highlighted option, -1 when idle
	history mood.History
	last    *mood.Record // record made by the most recent confirm

	loading bool
	loaded  <-chan mood.History

	historyActive bool
	historyList   list.Model

	width  int
	height int
}

func newPickerModel(source MoodSource, loaded <-chan mood.History, cfg PickerConfig) pickerModel {
	catalog := cfg.Catalog
	if len(catalog) == 0 {
		catalog = mood.DefaultCatalog
	}

	historyList := cfg.Theme.NewList(nil, 0, 0)
	historyList.Title = "Mood history"
	historyList.SetShowHelp(false)
	historyList.SetFilteringEnabled(false)

	m := pickerModel{
		source:      source,
		cfg:         cfg,
		catalog:     catalog,
		keys:        defaultPickerKeyMap(),
		help:        help.New(),
		machine:     selection.NewMachine(cfg.Acknowledge, source.SelectMood),
		cursor:      -1,
		history:     source.History(),
		loading:     loaded != nil,
		loaded:      loaded,
		historyList: historyList,
	}
	m.help.Styles.ShortKey = cfg.Theme.AccentStyle()
	m.help.Styles.ShortDesc = cfg.Theme.HelpStyle()
	m.help.Styles.ShortSeparator = cfg.Theme.HelpStyle()
	m.refreshHistory()
	return m
}

func waitForHistory(ch <-chan mood.History) tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{history: <-ch}
	}
}

func (m pickerModel) Init() tea.Cmd {
	if m.loaded != nil {
		return waitForHistory(m.loaded)
	}
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.historyList.SetSize(m.contentWidth(), max(msg.Height-4, 1))
		return m, nil

	case historyLoadedMsg:
		m.loading = false
		// The store may hold appends made while loading; its snapshot wins
		// over the message payload.
		m.refreshHistory()
		return m, nil

	case tea.KeyMsg:
		if m.historyActive {
			return m.updateHistory(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.History) {
			m.historyActive = true
			return m, nil
		}
		if m.machine.State().Phase == selection.Acknowledged {
			return m.updateAcknowledged(msg)
		}
		return m.updateSelecting(msg)
	}
	return m, nil
}

func (m pickerModel) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor <= 0 {
			return m.send(selection.Select{Option: m.catalog[0]}, 0), nil
		}
		return m.send(selection.Select{Option: m.catalog[m.cursor-1]}, m.cursor-1), nil

	case key.Matches(msg, m.keys.Right):
		next := min(m.cursor+1, len(m.catalog)-1)
		return m.send(selection.Select{Option: m.catalog[next]}, next), nil

	case key.Matches(msg, m.keys.Pick):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(m.catalog) {
			return m.send(selection.Select{Option: m.catalog[idx]}, idx), nil
		}

	case key.Matches(msg, m.keys.Confirm):
		return m.send(selection.Confirm{}, -1), nil
	}
	return m, nil
}

func (m pickerModel) updateAcknowledged(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ChooseAnother) {
		return m.send(selection.ChooseAnother{}, -1), nil
	}
	return m, nil
}

func (m pickerModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "tab", "H":
		m.historyActive = false
		return m, nil
	}
	var cmd tea.Cmd
	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}

// send drives the selection machine; confirmed options reach the source
// through the machine's record callback. cursor is the palette index the
// event highlights, or -1.
func (m pickerModel) send(e selection.Event, cursor int) pickerModel {
	state, ran := m.machine.Send(e)
	if len(ran) > 0 {
		m.refreshHistory()
		if r, ok := m.history.Latest(); ok {
			m.last = &r
		}
	}
	if state.Highlighted == nil {
		m.cursor = -1
	} else if cursor >= 0 {
		m.cursor = cursor
	}
	return m
}

func (m *pickerModel) refreshHistory() {
	m.history = m.source.History()
	recent := m.history.Recent(0)
	items := make([]list.Item, len(recent))
	for i, r := range recent {
		items[i] = historyItem{record: r}
	}
	m.historyList.SetItems(items)
}

// contentWidth returns the effective content width, respecting MaxWidth.
func (m pickerModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

func (m pickerModel) View() string {
	var content string
	switch {
	case m.historyActive:
		content = m.viewHistory()
	case m.machine.State().Phase == selection.Acknowledged:
		content = m.viewAcknowledged()
	default:
		content = m.viewSelecting()
	}

	if m.width == 0 || m.height == 0 {
		return content
	}
	return m.cfg.Theme.Fill(content, m.width, m.height, m.contentWidth())
}

func (m pickerModel) viewSelecting() string {
	t := m.cfg.Theme
	var b strings.Builder

	b.WriteString(t.HeaderStyle().Render("How are you right now?"))
	b.WriteString("\n\n")
	b.WriteString(m.viewPalette())
	b.WriteString("\n\n")

	if m.machine.CanConfirm() {
		b.WriteString(t.AccentStyle().Render("[ choose ]"))
	} else {
		b.WriteString(t.HelpStyle().Render("[ choose ]"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(selectingKeys{pickerKeyMap: m.keys, canConfirm: m.machine.CanConfirm()}))
	return b.String()
}

// viewPalette renders the catalog in a row, with the description shown only
// under the highlighted option.
func (m pickerModel) viewPalette() string {
	t := m.cfg.Theme
	current := m.machine.State().Highlighted
	columns := make([]string, len(m.catalog))
	for i, o := range m.catalog {
		highlighted := current != nil && current.Emoji == o.Emoji
		badge := t.BadgeStyle(o, highlighted).Render(o.Emoji)
		caption := ""
		if highlighted {
			caption = t.CaptionStyle(o).Render(o.Description)
		}
		columns[i] = lipgloss.JoinVertical(lipgloss.Center, badge, caption)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m pickerModel) viewStatus() string {
	t := m.cfg.Theme
	if m.loading {
		return t.HelpStyle().Render("loading history…")
	}
	latest, ok := m.history.Latest()
	if !ok {
		return t.HelpStyle().Render("no moods recorded yet")
	}
	return t.HelpStyle().Render(fmt.Sprintf("%d recorded · last: %s at %s",
		len(m.history), latest.Mood.String(), latest.Time().Local().Format("15:04")))
}

func (m pickerModel) viewAcknowledged() string {
	t := m.cfg.Theme
	var b strings.Builder

	if m.last != nil {
		b.WriteString(t.AcknowledgementStyle(m.last.Mood).Render(acknowledgementArt))
		b.WriteString("\n\n")
		b.WriteString(t.HeaderStyle().Render(fmt.Sprintf("Recorded %s at %s",
			m.last.Mood.String(), m.last.Time().Local().Format("15:04"))))
	} else {
		b.WriteString(t.AccentStyle().Render(acknowledgementArt))
		b.WriteString("\n\n")
		b.WriteString(t.HeaderStyle().Render("Recorded"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(acknowledgedKeys{pickerKeyMap: m.keys}))
	return b.String()
}

func (m pickerModel) viewHistory() string {
	t := m.cfg.Theme
	if len(m.history) == 0 {
		return t.HeaderStyle().Render("Mood history") + "\n\n" +
			t.HelpStyle().Render("No moods recorded yet.") + "\n\n" +
			t.HelpStyle().Render("esc back • q quit")
	}
	return t.PaneStyle().Render(m.historyList.View()) + "\n" + t.HelpStyle().Render("↑/↓ scroll • esc back • q quit")
}

// RunPicker launches the interactive mood picker. loaded, when non-nil,
// delivers the result of the store's initial load; the picker accepts input
// before it arrives.
func RunPicker(source MoodSource, loaded <-chan mood.History, cfg PickerConfig) error {
	m := newPickerModel(source, loaded, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
