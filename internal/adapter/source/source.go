package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/popcorn/internal/adapter"
	"github.com/mmcdole/popcorn/internal/adapter/source/omdb"
	"github.com/mmcdole/popcorn/internal/domain"
)

// SourceConfig contains the configuration needed to create a MovieClient
type SourceConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	Debug      bool
}

// NewClient creates the movie-data client.
// This factory function abstracts away the specific backend implementation.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.MovieClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required (set api.key or POPCORN_API_KEY)")
	}

	return omdb.NewClient(omdb.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		Debug:      cfg.Debug,
	}, logger), nil
}

// NewClientFromConfig creates a MovieClient from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.MovieClient, error) {
	return NewClient(&SourceConfig{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.Key,
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.MaxRetries,
		Debug:      cfg.API.Debug,
	}, logger)
}
