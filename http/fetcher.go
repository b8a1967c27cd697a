// Package http provides HTTP implementations of blogsmith.Fetcher and a
// JSON API server exposing the generation pipeline.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/blogsmith"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is a desktop browser user agent. Some origins serve
// degraded content to clients they do not recognize.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// Ensure Fetcher implements blogsmith.Fetcher at compile time.
var _ blogsmith.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", blogsmith.Errorf(blogsmith.EINVALID, "Please provide a valid URL")
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", blogsmith.Errorf(blogsmith.ENOTFOUND, "Page not found (404)")
	case resp.StatusCode == http.StatusForbidden:
		return "", blogsmith.Errorf(blogsmith.EFORBIDDEN, "Access forbidden - website blocks automated access")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", blogsmith.Errorf(blogsmith.EUNREACHABLE, "Failed to scrape website content (HTTP %d)", resp.StatusCode)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", blogsmith.Errorf(blogsmith.EUNREACHABLE, "Failed to scrape website content: %v", err)
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", classify(err)
	}

	return string(b), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classify maps transport errors to application error codes.
// Caller cancellation is returned unchanged.
func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return blogsmith.Errorf(blogsmith.ETIMEOUT, "Request timeout - website took too long to respond")
	}

	return blogsmith.Errorf(blogsmith.EUNREACHABLE, "Website not found or unreachable")
}
