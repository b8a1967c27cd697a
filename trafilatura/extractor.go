package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/blogsmith"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements blogsmith.Extractor at compile time.
var _ blogsmith.Extractor = (*Extractor)(nil)

// Extractor refines a base extraction with go-trafilatura. The body is
// replaced by the extracted main text; metadata fills in what the base
// extractor missed and page tags are merged into keywords.
type Extractor struct {
	base blogsmith.Extractor
}

// NewExtractor creates a new Extractor on top of base.
func NewExtractor(base blogsmith.Extractor) *Extractor {
	return &Extractor{base: base}
}

// Extract processes raw HTML and returns the refined page.
func (e *Extractor) Extract(pageURL, rawHTML string) (*blogsmith.SourcePage, error) {
	page, err := e.base.Extract(pageURL, rawHTML)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawHTML) == "" {
		return page, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return page, nil
	}

	if body := blogsmith.NormalizeBody(result.ContentText); body != "" {
		page.Body = body
	}
	if page.Description == "" {
		page.Description = strings.TrimSpace(result.Metadata.Description)
	}
	if (page.Title == "" || page.Title == blogsmith.DefaultTitle) && result.Metadata.Title != "" {
		page.Title = strings.TrimSpace(result.Metadata.Title)
	}
	page.Keywords = blogsmith.DedupeKeywords(append(page.Keywords, result.Metadata.Tags...))

	return page, nil
}
