// Package fetch provides the HTTP implementation of the page fetcher.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/lexislabs/lexis-cli/internal/core/ports/driven"
)

// Ensure HTTPFetcher implements the interface.
var _ driven.PageFetcher = (*HTTPFetcher)(nil)

const (
	// defaultTimeout bounds a single page fetch.
	defaultTimeout = 10 * time.Second

	// fetchRate throttles outbound requests to one per second, which
	// keeps the resolver well inside public wiki crawl etiquette.
	fetchRate = 1.0

	// maxBodyBytes caps the response body read. Reference pages are
	// rarely over 2MB; anything larger is truncated, not rejected.
	maxBodyBytes = 8 << 20

	userAgent = "lexis-cli (+https://github.com/lexislabs/lexis-cli)"
)

// HTTPFetcher fetches reference pages over HTTP with a per-request
// timeout and a proactive rate limit.
type HTTPFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures the fetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used in tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = client
	}
}

// New creates an HTTP page fetcher.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(fetchRate), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a GET request and returns the status code and body.
// The rate limiter is consulted before the request goes out; a context
// cancelled while waiting aborts the fetch.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (int, string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return 0, "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response body: %w", err)
	}

	return resp.StatusCode, string(body), nil
}
