package state

import "strings"

// FooterText returns the footer content for the current phase.
// Only the article list has a footer; loading and error displays stand alone.
func FooterText(phase Phase, statusMessage, helpText string) string {
	if phase != Ready {
		return ""
	}
	status := strings.TrimSpace(statusMessage)
	if status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
