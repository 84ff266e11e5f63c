package movies

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmcdole/popcorn/internal/domain"
)

// Service wraps the movie-data client with query rules and logging.
type Service struct {
	client domain.MovieClient
	logger *slog.Logger
}

// NewService creates a new movie service.
func NewService(client domain.MovieClient, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Search looks up titles matching query. Queries shorter than
// domain.MinQueryLength return (nil, nil) without touching the network.
func (s *Service) Search(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	if domain.QueryTooShort(query) {
		return nil, nil
	}

	results, err := s.client.Search(ctx, query)
	switch {
	case err == nil:
		s.logger.Debug("search complete", "query", query, "results", len(results))
		return results, nil
	case errors.Is(err, domain.ErrMovieNotFound):
		s.logger.Debug("search found nothing", "query", query)
	case errors.Is(err, context.Canceled):
		s.logger.Debug("search cancelled", "query", query)
	default:
		s.logger.Warn("search failed", "query", query, "error", err)
	}
	return nil, err
}

// GetDetail fetches the full record for id.
func (s *Service) GetDetail(ctx context.Context, id string) (*domain.MovieDetail, error) {
	detail, err := s.client.GetDetail(ctx, id)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Warn("detail fetch failed", "id", id, "error", err)
		}
		return nil, err
	}
	s.logger.Debug("fetched detail", "id", id, "title", detail.Title)
	return detail, nil
}
