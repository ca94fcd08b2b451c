package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iconidentify/skygallery/internal/config"
	"github.com/iconidentify/skygallery/internal/domain"
)

// maxFeedSize caps how much of a response body is read.
const maxFeedSize = 32 << 20

// HTTPSource implements Source with a single HTTP GET per fetch.
type HTTPSource struct {
	client    *http.Client
	url       string
	userAgent string
	logger    *slog.Logger
}

// NewHTTPSource creates a feed source for cfg.URL.
func NewHTTPSource(cfg config.FeedConfig) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger used for fetch diagnostics.
func (s *HTTPSource) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// URL returns the feed location.
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch downloads and decodes the feed. Failures are not retried.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, domain.NewFeedError("create request", s.url, err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewFeedError("send request", s.url,
			fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewFeedError("fetch", s.url,
			fmt.Errorf("%w: unexpected status code: %d", domain.ErrFeedUnavailable, resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, domain.NewFeedError("read body", s.url,
			fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err))
	}

	items, err := Decode(data)
	if err != nil {
		return nil, domain.NewFeedError("decode", s.url, err)
	}

	s.logger.Debug("feed fetched", "url", s.url, "items", len(items), "bytes", len(data))
	return items, nil
}
