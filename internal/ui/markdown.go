package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererCache holds the glamour renderer for the last width/style pair.
type rendererCache struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
	width    int
	style    string
}

var markdownRenderers rendererCache

func (c *rendererCache) get(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renderer != nil && c.width == width && c.style == style {
		return c.renderer, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	c.renderer, c.width, c.style = renderer, width, style
	return renderer, nil
}

func (c *rendererCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderer, c.width, c.style = nil, 0, ""
}

// RenderMarkdownWithStyle renders markdown using the given glamour style
// ("dark", "light", "notty", ...). It returns content unchanged if rendering
// fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	renderer, err := markdownRenderers.get(width, style)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}
