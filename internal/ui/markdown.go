package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownCache keeps rendered markdown keyed by body, width and palette so
// View does not re-run glamour on every frame.
type markdownCache struct {
	rendered map[string]string
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{rendered: make(map[string]string)}
}

// Render returns body as styled terminal text wrapped to width. Bodies that
// glamour rejects are returned unchanged.
func (c *markdownCache) Render(body string, width int, dark bool) string {
	k := fmt.Sprintf("%d|%t|%s", width, dark, body)
	if out, ok := c.rendered[k]; ok {
		return out
	}

	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	out = strings.Trim(out, "\n")
	c.rendered[k] = out
	return out
}
