package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsview/internal/presentation/tui/metrics"
	"github.com/tesso57/newsview/internal/presentation/tui/textutil"
)

func itemStyles(styles list.DefaultItemStyles, m list.Model, index int) (lipgloss.Style, lipgloss.Style) {
	if index == m.Index() {
		return styles.SelectedTitle, styles.SelectedDesc
	}
	return styles.NormalTitle, styles.NormalDesc
}

// truncateItemText fits text into the list width minus reserved columns.
// It leaves text untouched until the list has been sized.
func truncateItemText(m list.Model, style lipgloss.Style, text string, reserved int) string {
	if m.Width() <= 0 {
		return text
	}
	maxWidth := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding - reserved
	return textutil.Truncate(text, maxWidth)
}

func renderItemText(w io.Writer, text string) {
	_, _ = io.WriteString(w, text)
}
