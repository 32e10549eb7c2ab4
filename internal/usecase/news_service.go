package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ligaescolar/kings-api/internal/domain/news"
	"github.com/ligaescolar/kings-api/internal/platform/id"
	"github.com/ligaescolar/kings-api/internal/platform/logging"
)

type PublishNewsInput struct {
	Title string
	Body  string
}

type NewsService struct {
	newsRepo news.Repository
	idGen    id.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewNewsService(newsRepo news.Repository, idGen id.Generator, logger *logging.Logger) *NewsService {
	return &NewsService{
		newsRepo: newsRepo,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *NewsService) ListNews(ctx context.Context, limit int) ([]news.Item, error) {
	items, err := s.newsRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	return items, nil
}

func (s *NewsService) PublishNews(ctx context.Context, input PublishNewsInput) (news.Item, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.PublishNews")
	defer span.End()

	newsID, err := s.idGen.NewID()
	if err != nil {
		return news.Item{}, fmt.Errorf("generate news id: %w", err)
	}

	item := news.Item{
		ID:          newsID,
		Title:       strings.TrimSpace(input.Title),
		Body:        strings.TrimSpace(input.Body),
		PublishedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return news.Item{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.newsRepo.Create(ctx, item); err != nil {
		return news.Item{}, fmt.Errorf("create news: %w", err)
	}

	s.logger.InfoContext(ctx, "news published", "news_id", item.ID)

	return item, nil
}
