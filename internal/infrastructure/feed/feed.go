// Package feed provides article sources backed by the feed endpoint.
package feed

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tesso57/newsview/internal/application/settings"
	"github.com/tesso57/newsview/internal/application/usecase"
)

const (
	jsonAcceptHeader = "application/json, */*;q=0.5"
	feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
)

type headerTransport struct {
	base      http.RoundTripper
	accept    string
	userAgent string
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" && t.accept != "" {
		clone.Header.Set("Accept", t.accept)
	}
	if clone.Header.Get("User-Agent") == "" && t.userAgent != "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	return base.RoundTrip(clone)
}

func newHTTPClient(cfg settings.Settings, accept string) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: headerTransport{
			base:      http.DefaultTransport,
			accept:    accept,
			userAgent: cfg.UserAgent,
		},
	}
}

// NewSource builds the article source selected by cfg.Format.
func NewSource(cfg settings.Settings) (usecase.ArticleSource, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("feed endpoint is empty")
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", settings.FormatJSON:
		return NewJSONSource(endpoint, newHTTPClient(cfg, jsonAcceptHeader)), nil
	case settings.FormatRSS:
		return NewRSSSource(endpoint, newHTTPClient(cfg, feedAcceptHeader), cfg.UserAgent), nil
	default:
		return nil, fmt.Errorf("unsupported feed format: %q", cfg.Format)
	}
}
