package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes styled, line-oriented text for people.
type Console struct {
	w     io.Writer
	style styles
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, style: newStyles(lipgloss.NewRenderer(w))}
}

// Info reports progress.
func (c *Console) Info(format string, args ...any) {
	c.line(c.style.info.Render(fmt.Sprintf(format, args...)))
}

// Msg reports a result.
func (c *Console) Msg(format string, args ...any) {
	c.line(c.style.msg.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Warn(format string, args ...any) {
	c.line(c.style.warn.Render(fmt.Sprintf(format, args...)))
}

// Article writes one listing line: <id>: '<title>', <url>
// The title is written as received; Render would expand its tabs and pad
// multi-line titles.
func (c *Console) Article(id, title, url string) {
	c.line(fmt.Sprintf("%s: '%s', %s",
		c.style.id.Render(id),
		title,
		c.style.link.Render(url),
	))
}

func (c *Console) line(s string) {
	fmt.Fprintln(c.w, s)
}
