package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/newsview/internal/application/settings"
	"github.com/tesso57/newsview/internal/domain/news"
)

const techRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Machine learning &amp; AI news</title>
    <link>https://techxplore.com/</link>
    <description>Latest news</description>
    <item>
      <title>Robots learn to fold laundry</title>
      <description>A new model folds shirts.</description>
      <link>https://techxplore.com/news/robots.html</link>
      <category>Robotics</category>
      <pubDate>Mon, 01 Jan 2024 10:00:00 EST</pubDate>
      <media:thumbnail url="https://scx1.b-cdn.net/csz/news/tmb/robots.jpg" width="90" height="90"/>
    </item>
    <item>
      <title>Plain item</title>
      <description>No image here.</description>
      <link>https://techxplore.com/news/plain.html</link>
      <category>Computer Sciences</category>
      <pubDate>Tue, 02 Jan 2024 10:00:00 EST</pubDate>
    </item>
  </channel>
</rss>`

func TestRSSSource_ParsesDocument(t *testing.T) {
	var gotAccept, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(techRSS))
	}))
	defer server.Close()

	src, err := NewSource(settings.Settings{Endpoint: server.URL, Format: settings.FormatRSS, UserAgent: "newsview-test"})
	require.NoError(t, err)

	articles, err := src.Articles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Robots learn to fold laundry", first.Title)
	assert.Equal(t, "A new model folds shirts.", first.Description)
	assert.Equal(t, "https://techxplore.com/news/robots.html", first.Link)
	assert.Equal(t, "Robotics", first.Category)
	assert.Equal(t, "Mon, 01 Jan 2024 10:00:00 EST", first.PubDate)
	assert.Equal(t, "https://scx1.b-cdn.net/csz/news/tmb/robots.jpg", first.Thumbnail)

	assert.False(t, articles[1].HasThumbnail())

	assert.Equal(t, "newsview-test", gotUA)
	assert.True(t, strings.Contains(gotAccept, "application/rss+xml"), "Accept = %q", gotAccept)
}

func TestRSSSource_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewRSSSource(server.URL, nil, "").Articles(context.Background())
	require.ErrorIs(t, err, news.ErrResponseNotOK)
}

func TestRSSSource_MappingFallbacks(t *testing.T) {
	originalParser := ParserFunc
	defer func() { ParserFunc = originalParser }()

	ParserFunc = func(_ context.Context, _ *http.Client, _, _ string) (*gofeed.Feed, error) {
		return &gofeed.Feed{
			Items: []*gofeed.Item{
				{
					Title:   "Atom entry",
					Link:    "https://example.com/a",
					Updated: "2026-01-15T18:32:04Z",
					Image:   &gofeed.Image{URL: "https://example.com/a.png"},
				},
				{
					Title: "Media content",
					Extensions: ext.Extensions{
						"media": {
							"content": []ext.Extension{
								{Name: "content", Attrs: map[string]string{"url": "https://example.com/video.mp4", "type": "video/mp4"}},
								{Name: "content", Attrs: map[string]string{"url": "https://example.com/b.jpg", "medium": "image"}},
							},
						},
					},
				},
				{
					Title:      "Enclosure",
					Enclosures: []*gofeed.Enclosure{{URL: "https://example.com/c.png", Type: "image/png"}},
				},
				nil,
			},
		}, nil
	}

	articles, err := NewRSSSource("https://example.com/feed", nil, "").Articles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "2026-01-15T18:32:04Z", articles[0].PubDate)
	assert.Equal(t, "https://example.com/a.png", articles[0].Thumbnail)
	assert.Empty(t, articles[0].Category)
	assert.Equal(t, "https://example.com/b.jpg", articles[1].Thumbnail)
	assert.Equal(t, "https://example.com/c.png", articles[2].Thumbnail)
}

func TestRSSSource_ParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	_, err := NewRSSSource(server.URL, nil, "").Articles(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, news.ErrResponseNotOK)
}
