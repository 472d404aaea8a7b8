package feed

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/newsview/internal/domain/news"
)

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, client *http.Client, userAgent, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	if userAgent != "" {
		fp.UserAgent = userAgent
	}
	if client != nil {
		fp.Client = client
	}
	return fp.ParseURLWithContext(url, ctx)
}

// RSSSource reads an RSS or Atom document and maps its items to articles.
type RSSSource struct {
	Endpoint  string
	Client    *http.Client
	UserAgent string
}

// NewRSSSource creates an RSSSource.
func NewRSSSource(endpoint string, client *http.Client, userAgent string) *RSSSource {
	return &RSSSource{
		Endpoint:  endpoint,
		Client:    client,
		UserAgent: userAgent,
	}
}

// Articles fetches and parses the document once.
func (s *RSSSource) Articles(ctx context.Context) ([]news.Article, error) {
	parsed, err := ParserFunc(ctx, s.Client, s.UserAgent, s.Endpoint)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, news.ErrResponseNotOK
		}
		return nil, err
	}

	articles := make([]news.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, articleFromItem(item))
	}
	return articles, nil
}

func articleFromItem(item *gofeed.Item) news.Article {
	pub := item.Published
	if pub == "" {
		pub = item.Updated
	}
	var category string
	if len(item.Categories) > 0 {
		category = strings.TrimSpace(item.Categories[0])
	}
	return news.Article{
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		Link:        strings.TrimSpace(item.Link),
		Category:    category,
		PubDate:     pub,
		Thumbnail:   thumbnailOf(item),
	}
}

func thumbnailOf(item *gofeed.Item) string {
	if item.Image != nil && strings.TrimSpace(item.Image.URL) != "" {
		return strings.TrimSpace(item.Image.URL)
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, e := range media["thumbnail"] {
			if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
				return u
			}
		}
		for _, e := range media["content"] {
			u := strings.TrimSpace(e.Attrs["url"])
			if u == "" {
				continue
			}
			if e.Attrs["medium"] == "image" || strings.HasPrefix(e.Attrs["type"], "image/") {
				return u
			}
		}
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
