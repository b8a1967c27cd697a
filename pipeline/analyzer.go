package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/blogsmith"
)

// DefaultTextTimeout bounds each text generation call.
const DefaultTextTimeout = 60 * time.Second

// Ensure Analyzer implements blogsmith.Analyzer at compile time.
var _ blogsmith.Analyzer = (*Analyzer)(nil)

// Analyzer asks the text backend for a structured summary of source text.
// The reply is returned as-is.
type Analyzer struct {
	Text    blogsmith.TextGenerator
	Model   string
	Timeout time.Duration
}

// Analyze returns the raw analysis payload, or EGENERATION when the backend
// fails or exceeds the timeout.
func (a *Analyzer) Analyze(ctx context.Context, body string) (blogsmith.Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutOr(a.Timeout, DefaultTextTimeout))
	defer cancel()

	reply, err := a.Text.GenerateText(ctx, blogsmith.TextRequest{
		Prompt:       BuildAnalysisPrompt(body),
		SystemPrompt: AnalysisSystemPrompt,
		Model:        a.Model,
	})
	if err != nil {
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "Failed to generate text content: %v", err)
	}

	return blogsmith.Analysis(reply), nil
}

func timeoutOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
