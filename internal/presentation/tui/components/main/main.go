// Package mainview provides the area holding the heading and the current display.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width   int
	Height  int
	Heading string
	Body    string
}

// Render stacks the heading above the body and clips the result to Height.
// A zero Width or Height leaves that dimension unconstrained.
func Render(p Props) string {
	content := p.Body
	if p.Heading != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, p.Heading, p.Body)
	}

	style := lipgloss.NewStyle().PaddingLeft(1)
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	if p.Height > 0 {
		style = style.Height(p.Height).MaxHeight(p.Height)
	}
	return style.Render(content)
}
