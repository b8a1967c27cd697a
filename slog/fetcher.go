// Package slog provides decorators that log calls to blogsmith services
// using log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blogsmith"
)

// Ensure LoggingFetcher implements blogsmith.Fetcher.
var _ blogsmith.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   blogsmith.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next blogsmith.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingExtractor implements blogsmith.Extractor.
var _ blogsmith.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   blogsmith.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next blogsmith.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the size of the extracted page.
func (e *LoggingExtractor) Extract(pageURL, html string) (page *blogsmith.SourcePage, err error) {
	defer func(begin time.Time) {
		var title string
		var runes, keywords int
		if page != nil {
			title = page.Title
			runes = blogsmith.RuneLen(page.Body)
			keywords = len(page.Keywords)
		}
		e.logger.Info("extract",
			"url", pageURL,
			"title", title,
			"body_runes", runes,
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(pageURL, html)
}
