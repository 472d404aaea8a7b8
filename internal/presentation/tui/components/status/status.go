// Package status renders the loading and error displays.
package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Loading renders the display shown until the request resolves.
// spinner may be empty.
func Loading(spinner string) string {
	if spinner == "" {
		return "Loading..."
	}
	return spinner + " Loading..."
}

// Error renders the display that replaces the list after any failure.
func Error(err error, color lipgloss.Color) string {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("Error: %s", msg))
}
