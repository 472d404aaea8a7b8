// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize removes escape sequences and control characters from remote text.
// Line breaks and tabs become spaces.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	spaced := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, text)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(spaced))
}

// SingleLine sanitizes text and collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(Sanitize(text)), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// IsWebURL reports whether raw is an absolute http or https URL.
func IsWebURL(raw string) bool {
	if raw == "" || raw != SingleLine(raw) || strings.Contains(raw, " ") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Hyperlink wraps label in an OSC 8 hyperlink to link.
// Anything but a web URL renders the bare label.
func Hyperlink(link, label string) string {
	if !IsWebURL(link) {
		return label
	}
	return ansi.SetHyperlink(link) + label + ansi.ResetHyperlink()
}
