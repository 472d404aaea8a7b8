// Package header provides the heading shown above the article list.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsview/internal/presentation/tui/textutil"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Title   string
	Width   int
	Accent  lipgloss.Color
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	title := textutil.SingleLine(p.Title)
	if p.Width > 0 {
		title = textutil.Truncate(title, p.Width)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		MarginBottom(1).
		Render(title)
}
