package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/blogsmith"
)

// Fallback article content used when generation or parsing fails.
const (
	fallbackExcerptLength = 800
	fallbackTitle         = "Web Content"
	fallbackImagePrompt   = "Professional blog header image representing insights and analysis, modern design with data visualization elements"
	fallbackSuffix        = "-fallback"
)

// LogFunc is a printf-style logging function.
type LogFunc func(format string, args ...any)

// Ensure Writer implements blogsmith.ArticleWriter at compile time.
var _ blogsmith.ArticleWriter = (*Writer)(nil)

// Writer drafts one article per call. It never fails: backend and parse
// errors produce a deterministic fallback article instead.
type Writer struct {
	Text    blogsmith.TextGenerator
	Model   string
	Timeout time.Duration

	// Now returns the creation timestamp. Defaults to time.Now.
	Now func() time.Time

	// Logf, if set, receives the reason for each fallback.
	Logf LogFunc
}

// Write drafts the article described by req.
func (w *Writer) Write(ctx context.Context, req blogsmith.ArticleRequest) blogsmith.Article {
	id := fmt.Sprintf("article_%s_%d", req.RunID, req.Index)

	content, err := w.generate(ctx, req)
	if err != nil {
		if w.Logf != nil {
			w.Logf("article %d (%s): using fallback: %v", req.Index, req.Angle, err)
		}
		return w.fallback(id+fallbackSuffix, req)
	}

	return blogsmith.Article{
		ID:          id,
		Angle:       req.Angle,
		Title:       content.Title,
		Body:        content.Content,
		Summary:     content.Summary,
		ImagePrompt: content.ImagePrompt,
		CreatedAt:   w.now(),
	}
}

func (w *Writer) generate(ctx context.Context, req blogsmith.ArticleRequest) (*ArticleContent, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutOr(w.Timeout, DefaultTextTimeout))
	defer cancel()

	reply, err := w.Text.GenerateText(ctx, blogsmith.TextRequest{
		Prompt:       BuildArticlePrompt(req.Analysis, req.Page.Body, req.Angle, req.Index),
		SystemPrompt: BuildArticleSystemPrompt(req.Angle),
		Model:        w.Model,
	})
	if err != nil {
		return nil, blogsmith.Errorf(blogsmith.EGENERATION, "Failed to generate text content: %v", err)
	}

	return ParseArticle(reply)
}

func (w *Writer) fallback(id string, req blogsmith.ArticleRequest) blogsmith.Article {
	title := req.Page.Title
	if title == "" {
		title = fallbackTitle
	}

	var body strings.Builder
	fmt.Fprintf(&body, "# Insights from %s\n\n", title)
	fmt.Fprintf(&body, "Based on the content from %s, here are some key insights:\n\n", req.Page.URL)
	fmt.Fprintf(&body, "%s...\n\n", blogsmith.Truncate(req.Page.Body, fallbackExcerptLength))
	body.WriteString("## Key Takeaways\n\n")
	body.WriteString("- Understanding the main concepts\n")
	body.WriteString("- Practical applications\n")
	body.WriteString("- Future implications\n\n")
	body.WriteString("This analysis provides valuable perspectives on the topic and its broader context.")

	return blogsmith.Article{
		ID:          id,
		Angle:       req.Angle,
		Title:       "Insights from " + title,
		Body:        body.String(),
		Summary:     fmt.Sprintf("Key insights and analysis based on content from %s.", title),
		ImagePrompt: fallbackImagePrompt,
		CreatedAt:   w.now(),
	}
}

func (w *Writer) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// ArticleContent is the JSON object the model is asked to return.
type ArticleContent struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	ImagePrompt string `json:"imagePrompt"`
}

// ParseArticle decodes a model reply into ArticleContent. A surrounding
// markdown code fence is tolerated. Returns EPARSE if the reply is not a
// JSON object or lacks a title or content.
func ParseArticle(reply string) (*ArticleContent, error) {
	var content ArticleContent
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &content); err != nil {
		return nil, blogsmith.Errorf(blogsmith.EPARSE, "invalid article JSON: %v", err)
	}
	if strings.TrimSpace(content.Title) == "" || strings.TrimSpace(content.Content) == "" {
		return nil, blogsmith.Errorf(blogsmith.EPARSE, "article JSON missing title or content")
	}
	return &content, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	// Drop the opening fence line, including any language tag.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		return ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
