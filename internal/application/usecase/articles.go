// Package usecase contains application-level services.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/tesso57/newsview/internal/domain/news"
)

// ArticleSource abstracts the feed endpoint.
type ArticleSource interface {
	Articles(ctx context.Context) ([]news.Article, error)
}

// ArticleService loads the article list for the view.
type ArticleService struct {
	Source ArticleSource
	Logger *slog.Logger
	Now    func() time.Time
}

// NewArticleService constructs an ArticleService.
func NewArticleService(source ArticleSource, logger *slog.Logger) ArticleService {
	return ArticleService{
		Source: source,
		Logger: logger,
	}
}

// Load asks the source for articles once. It never retries.
// Every failure is returned as a *news.FeedUnavailableError.
func (s ArticleService) Load(ctx context.Context) ([]news.Article, error) {
	log := s.logger()
	if s.Source == nil {
		return nil, news.Unavailable(errSourceMissing)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := s.now()
	log.Debug("loading articles")
	articles, err := s.Source.Articles(ctx)
	elapsed := s.now().Sub(start)
	if err != nil {
		log.Warn("article load failed", slog.Any("error", err), slog.Duration("elapsed", elapsed))
		return nil, news.Unavailable(err)
	}
	if articles == nil {
		articles = []news.Article{}
	}
	log.Info("articles loaded", slog.Int("count", len(articles)), slog.Duration("elapsed", elapsed))
	return articles, nil
}

func (s ArticleService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (s ArticleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
