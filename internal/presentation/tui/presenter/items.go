// Package presenter builds view models for the TUI.
package presenter

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/newsview/internal/domain/news"
	"github.com/tesso57/newsview/internal/presentation/tui/textutil"
)

// Item is a view model for one article entry.
// Position is the article's index in the feed response and is its only identity.
type Item struct {
	Position      int
	TitleText     string
	Desc          string
	Link          string
	CategoryText  string
	Published     string
	ThumbnailLink string
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the article title.
func (i *Item) Title() string { return i.TitleText }

// Description returns the article description.
func (i *Item) Description() string { return i.Desc }

// URL returns the article link.
func (i *Item) URL() string { return i.Link }

// Category returns the article category.
func (i *Item) Category() string { return i.CategoryText }

// PubDate returns the publication date exactly as received.
func (i *Item) PubDate() string { return i.Published }

// Thumbnail returns the thumbnail URL, or an empty string.
func (i *Item) Thumbnail() string { return i.ThumbnailLink }

// HasThumbnail reports whether an image line should be shown.
func (i *Item) HasThumbnail() bool { return strings.TrimSpace(i.ThumbnailLink) != "" }

// NewItem builds the view model for the article at position.
// Feed text is reduced to a single printable line.
func NewItem(position int, a news.Article) *Item {
	return &Item{
		Position:      position,
		TitleText:     textutil.SingleLine(a.Title),
		Desc:          textutil.SingleLine(a.Description),
		Link:          textutil.SingleLine(a.Link),
		CategoryText:  textutil.SingleLine(a.Category),
		Published:     textutil.SingleLine(a.PubDate),
		ThumbnailLink: textutil.SingleLine(a.Thumbnail),
	}
}

// BuildArticleListItems builds list items in feed order.
func BuildArticleListItems(articles []news.Article) []list.Item {
	result := make([]list.Item, len(articles))
	for i, a := range articles {
		result[i] = NewItem(i, a)
	}
	return result
}

// ApplyArticleList replaces the list contents with articles.
func ApplyArticleList(model *list.Model, articles []news.Article) {
	model.SetItems(BuildArticleListItems(articles))
	model.ResetSelected()
}
