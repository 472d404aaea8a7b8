package feed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tesso57/newsview/internal/domain/news"
)

var errNotArray = errors.New("response body is not a JSON array")

// JSONSource reads a JSON array of articles from a single endpoint.
type JSONSource struct {
	Endpoint string
	Client   *http.Client
}

// NewJSONSource creates a JSONSource. A nil client uses http.DefaultClient.
func NewJSONSource(endpoint string, client *http.Client) *JSONSource {
	return &JSONSource{
		Endpoint: endpoint,
		Client:   client,
	}
}

// Articles issues one GET request and decodes the body.
// Any non-2xx status yields news.ErrResponseNotOK whatever the body says.
func (s *JSONSource) Articles(ctx context.Context) ([]news.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, news.ErrResponseNotOK
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeArticles(body)
}

// decodeArticles requires the whole body to be one JSON array.
func decodeArticles(body []byte) ([]news.Article, error) {
	var articles []news.Article
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, err
	}
	if articles == nil {
		return nil, errNotArray
	}
	return articles, nil
}

func (s *JSONSource) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}
