// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/newsview/internal/presentation/tui/metrics"
	"github.com/tesso57/newsview/internal/presentation/tui/textutil"
)

const readMoreLabel = "Read more"

// ArticleItem interface for items that can be rendered by ArticleDelegate.
type ArticleItem interface {
	list.Item
	Title() string
	Description() string
	URL() string
	Category() string
	PubDate() string
	Thumbnail() string
	HasThumbnail() bool
}

// ArticleDelegate renders one article entry over several lines.
type ArticleDelegate struct {
	Styles list.DefaultItemStyles
	Label  lipgloss.Style
	Muted  lipgloss.Style
}

// NewArticleDelegate creates a new ArticleDelegate using accent and muted colors.
func NewArticleDelegate(accent, muted lipgloss.Color) *ArticleDelegate {
	styles := list.NewDefaultItemStyles()
	styles.SelectedTitle = styles.SelectedTitle.BorderForeground(accent).Foreground(accent)
	styles.SelectedDesc = styles.SelectedDesc.BorderForeground(accent)
	return &ArticleDelegate{
		Styles: styles,
		Label:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(muted),
	}
}

// Height returns the height of the item.
func (d *ArticleDelegate) Height() int {
	return metrics.ArticleLines
}

// Spacing returns the spacing between items.
func (d *ArticleDelegate) Spacing() int {
	return metrics.ArticleSpacing
}

// Update handles messages for the delegate.
func (d *ArticleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *ArticleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(ArticleItem)
	if !ok {
		return
	}

	titleStyle, bodyStyle := itemStyles(d.Styles, m, index)
	labelled := func(label, value string) string {
		value = truncateItemText(m, bodyStyle, textutil.SingleLine(value), len(label)+1)
		return d.Label.Render(label) + " " + value
	}

	link := textutil.SingleLine(i.URL())
	lines := []string{
		truncateItemText(m, bodyStyle, textutil.SingleLine(i.Description()), 0),
		textutil.Hyperlink(link, readMoreLabel) + " " +
			d.Muted.Render(truncateItemText(m, bodyStyle, link, len(readMoreLabel)+1)),
		labelled("Category:", i.Category()),
		labelled("Published:", i.PubDate()),
	}
	if i.HasThumbnail() {
		lines = append(lines, d.Label.Render("Image:")+" "+
			d.Muted.Render(truncateItemText(m, bodyStyle, textutil.SingleLine(i.Thumbnail()), len("Image: "))))
	}

	title := titleStyle.Render(truncateItemText(m, titleStyle, textutil.SingleLine(i.Title()), 0))
	body := bodyStyle.Render(strings.Join(lines, "\n"))
	renderItemText(w, title+"\n"+body)
}
