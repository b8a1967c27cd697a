// Package goquery implements blogsmith.Extractor with CSS selector
// heuristics on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blogsmith"
)

// Ensure Extractor implements blogsmith.Extractor at compile time.
var _ blogsmith.Extractor = (*Extractor)(nil)

// NoiseSelector matches markup that never contributes to the page body.
const NoiseSelector = "script, style, nav, footer, aside, .advertisement, .ad, .social-share"

// minContainerLength is the number of runes a container's text must exceed
// to be accepted as the page body.
const minContainerLength = 200

// BodySelectors lists body container candidates in priority order.
var BodySelectors = []string{
	"article",
	".content",
	".post-content",
	".entry-content",
	".main-content",
	"main",
	".container",
	"body",
}

// descriptionSelectors lists meta tags consulted for the description.
var descriptionSelectors = []string{
	`meta[name="description"]`,
	`meta[property="og:description"]`,
	`meta[name="twitter:description"]`,
}

// Extractor reduces HTML to a SourcePage using a prioritized selector chain.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the page content. Noise markup is
// removed before any text is read.
func (e *Extractor) Extract(pageURL, html string) (*blogsmith.SourcePage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(NoiseSelector).Remove()

	return &blogsmith.SourcePage{
		URL:         pageURL,
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
		Body:        blogsmith.NormalizeBody(extractBody(doc)),
		Keywords:    extractKeywords(doc),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	if title := collapse(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := collapse(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return blogsmith.DefaultTitle
}

func extractDescription(doc *goquery.Document) string {
	for _, selector := range descriptionSelectors {
		content, _ := doc.Find(selector).First().Attr("content")
		if content = strings.TrimSpace(content); content != "" {
			return content
		}
	}
	return ""
}

// extractBody returns the text of the first container exceeding
// minContainerLength runes, or all paragraph texts joined by spaces.
func extractBody(doc *goquery.Document) string {
	for _, selector := range BodySelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(sel.Text())
		if blogsmith.RuneLen(text) > minContainerLength {
			return text
		}
	}

	paragraphs := doc.Find("p").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	return strings.Join(paragraphs, " ")
}

// extractKeywords merges meta keywords with h1-h3 heading texts.
func extractKeywords(doc *goquery.Document) []string {
	meta, _ := doc.Find(`meta[name="keywords"]`).First().Attr("content")
	keywords := blogsmith.SplitKeywords(meta)

	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if text := collapse(s.Text()); text != "" {
			keywords = append(keywords, text)
		}
	})

	return blogsmith.DedupeKeywords(keywords)
}

// collapse trims s and collapses inner whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
