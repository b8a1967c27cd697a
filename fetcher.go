package blogsmith

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the raw HTML.
	// Implementations classify failures as ENOTFOUND, EFORBIDDEN,
	// EUNREACHABLE or ETIMEOUT. The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
