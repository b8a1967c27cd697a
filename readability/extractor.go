package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/blogsmith"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements blogsmith.Extractor at compile time.
var _ blogsmith.Extractor = (*Extractor)(nil)

// Extractor refines a base extraction with go-readability. The base
// extractor supplies title and keywords; readability supplies the body
// and, when the page has no meta description, the excerpt.
type Extractor struct {
	base blogsmith.Extractor
}

// NewExtractor creates a new Extractor on top of base.
func NewExtractor(base blogsmith.Extractor) *Extractor {
	return &Extractor{base: base}
}

// Extract runs the base extractor and replaces its body with the main
// article text found by readability. If readability finds nothing the base
// result is returned unchanged.
func (e *Extractor) Extract(pageURL, rawHTML string) (*blogsmith.SourcePage, error) {
	page, err := e.base.Extract(pageURL, rawHTML)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawHTML) == "" {
		return page, nil
	}

	u, _ := url.Parse(pageURL)
	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return page, nil
	}

	if body := blogsmith.NormalizeBody(article.TextContent); body != "" {
		page.Body = body
	}
	if page.Description == "" {
		page.Description = strings.TrimSpace(article.Excerpt)
	}

	return page, nil
}
