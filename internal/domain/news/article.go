// Package news defines the article model received from the feed endpoint.
package news

import "strings"

// Article is one entry of the feed response.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	PubDate     string `json:"pubDate"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// HasThumbnail reports whether the article carries a non-blank thumbnail URL.
func (a Article) HasThumbnail() bool {
	return strings.TrimSpace(a.Thumbnail) != ""
}
