package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
	maxWidth int // maximum viewport width (0 = no limit)
	width    int
	height   int
	theme    Theme
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), max(msg.Height-1, 1))
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = max(msg.Height-1, 1)
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) contentWidth() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	footer := m.theme.HelpStyle().Render("↑/↓ scroll • q quit")
	return m.theme.Fill(m.viewport.View()+"\n"+footer, m.width, m.height, m.contentWidth())
}

// PageOutput displays content through a Bubble Tea pager when stdout is a TTY
// and the content exceeds the terminal height. Otherwise it writes directly to
// stdout.
func PageOutput(content string, maxWidth int, theme Theme) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Print(content)
		return nil
	}

	_, height, err := term.GetSize(fd)
	if err != nil {
		fmt.Print(content)
		return nil
	}

	if strings.Count(content, "\n")+1 <= height-2 {
		fmt.Print(content)
		return nil
	}

	p := tea.NewProgram(pagerModel{content: content, maxWidth: maxWidth, theme: theme}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// OutputOrPage writes content to w, paging when w is stdout. JSON output is
// never paged.
func OutputOrPage(w io.Writer, content string, jsonOutput bool, maxWidth int, theme Theme) error {
	if !jsonOutput && w == os.Stdout {
		return PageOutput(content, maxWidth, theme)
	}
	_, err := fmt.Fprint(w, content)
	return err
}
