package mock

import "github.com/fwojciec/blogsmith"

var _ blogsmith.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of blogsmith.Extractor.
type Extractor struct {
	ExtractFn func(pageURL, html string) (*blogsmith.SourcePage, error)
}

func (e *Extractor) Extract(pageURL, html string) (*blogsmith.SourcePage, error) {
	return e.ExtractFn(pageURL, html)
}
