package blogsmith

// Extractor reduces raw HTML to source content.
type Extractor interface {
	// Extract parses html and returns the page's title, description,
	// normalized body and keywords. pageURL is recorded on the result.
	// Extract does not enforce MinBodyLength; callers validate the page.
	Extract(pageURL, html string) (*SourcePage, error)
}
