package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/popcorn/internal/domain"
)

const (
	DefaultBaseURL = "https://www.omdbapi.com/"

	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	defaultRetryWait  = 500 * time.Millisecond
	userAgent         = "popcorn/1.0"
)

// Config holds configuration for the OMDb client
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int           // 0 uses the default; negative disables retries
	RetryWait  time.Duration // Initial backoff between retries
	Debug      bool          // Log request/response details at debug level
}

// Client implements domain.MovieClient for the OMDb API
type Client struct {
	resty   *resty.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

// NewClient creates a new OMDb API client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	switch {
	case cfg.MaxRetries == 0:
		cfg.MaxRetries = defaultMaxRetries
	case cfg.MaxRetries < 0:
		cfg.MaxRetries = 0
	}
	if cfg.RetryWait == 0 {
		cfg.RetryWait = defaultRetryWait
	}

	r := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(8*cfg.RetryWait).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	// Retry on network errors, 5xx and rate limiting; never on a cancelled context
	r.AddRetryCondition(func(resp *resty.Response, err error) bool {
		if resp != nil && resp.Request != nil && resp.Request.Context().Err() != nil {
			return false
		}
		if err != nil {
			return true
		}
		return resp.StatusCode() >= 500 || resp.StatusCode() == http.StatusTooManyRequests
	})

	c := &Client{
		resty:   r,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}

	if cfg.Debug {
		r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			c.logger.Debug("omdb request", "method", req.Method, "params", redact(req.QueryParam))
			return nil
		})
		r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			body := resp.String()
			if len(body) > 1000 {
				body = body[:1000] + "... (truncated)"
			}
			c.logger.Debug("omdb response", "status", resp.StatusCode(), "time", resp.Time(), "body", body)
			return nil
		})
	}

	return c
}

// Search returns the matches for a title query in API order.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	var resp SearchResponse
	if err := c.get(ctx, map[string]string{"s": query}, &resp); err != nil {
		return nil, err
	}
	if !resp.found() {
		c.logger.Debug("omdb search found nothing", "query", query, "reason", resp.Error)
		return nil, domain.ErrMovieNotFound
	}
	return MapSearchItems(resp.Search), nil
}

// GetDetail returns the full record for an IMDb identifier.
func (c *Client) GetDetail(ctx context.Context, id string) (*domain.MovieDetail, error) {
	var resp DetailResponse
	if err := c.get(ctx, map[string]string{"i": id}, &resp); err != nil {
		return nil, err
	}
	if !resp.found() {
		c.logger.Debug("omdb detail found nothing", "id", id, "reason", resp.Error)
		return nil, domain.ErrMovieNotFound
	}
	return MapDetail(id, resp), nil
}

// get performs the request and decodes the body into dest.
// Order of checks: transport error, HTTP status, body decoding. The
// Response marker is left to the caller, so a non-success status is always
// a transport failure even if its body carries Response=False.
func (c *Client) get(ctx context.Context, params map[string]string, dest any) error {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParam("apikey", c.apiKey).
		SetQueryParams(params).
		Get(c.baseURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Warn("omdb request failed", "error", err)
		return fmt.Errorf("%w (%v)", domain.ErrTransport, err)
	}

	if !resp.IsSuccess() {
		c.logger.Warn("omdb request error", "status", resp.StatusCode())
		return fmt.Errorf("%w (status %d)", domain.ErrTransport, resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), dest); err != nil {
		c.logger.Error("omdb decode failed", "error", err, "bodyLen", len(resp.Body()))
		return fmt.Errorf("%w (invalid response: %v)", domain.ErrTransport, err)
	}
	return nil
}

// redact hides the API key in logged query parameters
func redact(q map[string][]string) map[string][]string {
	out := make(map[string][]string, len(q))
	for k, v := range q {
		if k == "apikey" {
			out[k] = []string{"***"}
			continue
		}
		out[k] = v
	}
	return out
}
