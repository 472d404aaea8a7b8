package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsview/internal/presentation/tui/metrics"
	"github.com/tesso57/newsview/internal/presentation/tui/state"
)

// mainPadding matches the left padding of the main view.
const mainPadding = 1

// UpdateListSizes fits the article list between the heading and the footer.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	footer := footerHeight(s)
	listHeight := clampMin(s.Height-footer-metrics.HeadingLines, 1)
	listWidth := clampMin(s.Width-mainPadding, 1)
	s.ArticleList.SetSize(listWidth, listHeight)
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	helpText := s.Help.ShortHelpView(s.Keys.ShortHelp())
	footer := state.FooterText(s.View.Phase(), s.StatusMessage, helpText)
	if footer == "" {
		return 0
	}
	return lipgloss.Height(footer)
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}

// MainHeight returns the rows left for the main area above the footer.
func MainHeight(s *state.ModelState) int {
	if s.Height <= 0 {
		return 0
	}
	return clampMin(s.Height-footerHeight(s), 1)
}
