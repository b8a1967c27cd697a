package blogsmith

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Limits applied to extracted source content. Lengths are counted in runes.
const (
	MinBodyLength    = 50
	MaxBodyLength    = 5000
	MaxKeywords      = 10
	TruncationMarker = "..."
)

// DefaultTitle is used when a page has neither a <title> nor an <h1>.
const DefaultTitle = "Untitled"

// SourcePage is the canonical content extracted from a web page.
// It is created once per extraction and never modified afterwards.
type SourcePage struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Keywords    []string `json:"keywords"`
}

// Validate returns an error if the page does not carry usable content.
func (p *SourcePage) Validate() error {
	if RuneLen(p.Body) < MinBodyLength {
		return Errorf(EEMPTY, "Unable to extract meaningful content from the webpage")
	}
	return nil
}

// Scraper fetches a URL and reduces it to a SourcePage.
type Scraper interface {
	// Scrape returns EINVALID for malformed URLs without touching the
	// network, one of EUNREACHABLE, ENOTFOUND, EFORBIDDEN or ETIMEOUT for
	// fetch failures, and EEMPTY when the page has no usable text.
	Scrape(ctx context.Context, url string) (*SourcePage, error)
}

// ValidateURL returns EINVALID unless raw is an absolute http or https URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "Please provide a valid URL")
	}
	return nil
}

// NormalizeBody collapses whitespace runs to single spaces, trims the
// result and truncates it to MaxBodyLength runes followed by the
// truncation marker.
func NormalizeBody(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if RuneLen(s) > MaxBodyLength {
		return Truncate(s, MaxBodyLength) + TruncationMarker
	}
	return s
}

// SplitKeywords splits a comma separated meta keywords value.
func SplitKeywords(meta string) []string {
	if strings.TrimSpace(meta) == "" {
		return nil
	}
	parts := strings.Split(meta, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		keywords = append(keywords, strings.TrimSpace(p))
	}
	return keywords
}

// DedupeKeywords trims each keyword, drops empty ones and duplicates while
// preserving first-seen order, and caps the result at MaxKeywords.
// The result is never nil.
func DedupeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	result := make([]string, 0, MaxKeywords)
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, k)
		if len(result) == MaxKeywords {
			break
		}
	}
	return result
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
