// Package modal provides the help overlay.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Body    string
	Width   int
	Height  int
	Border  lipgloss.Color
}

// Render renders the modal component centered in the given area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	content := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2).
		Render(p.Body)

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}
