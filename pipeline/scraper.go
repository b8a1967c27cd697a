// Package pipeline implements the generation workflow: scraping a page,
// analyzing it, writing one article per angle and illustrating the results.
package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/blogsmith"
)

// Ensure Scraper implements blogsmith.Scraper at compile time.
var _ blogsmith.Scraper = (*Scraper)(nil)

// Scraper fetches a page once and extracts its content.
type Scraper struct {
	Fetcher   blogsmith.Fetcher
	Extractor blogsmith.Extractor
}

// Scrape validates url, fetches it and extracts a SourcePage.
// Invalid URLs are rejected before any network call.
func (s *Scraper) Scrape(ctx context.Context, url string) (*blogsmith.SourcePage, error) {
	url = strings.TrimSpace(url)
	if err := blogsmith.ValidateURL(url); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	page, err := s.Extractor.Extract(url, html)
	if err != nil {
		return nil, err
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}

	return page, nil
}
