package blogsmith

import "context"

// Outcome is the envelope returned by a generation run.
type Outcome struct {
	Success    bool       `json:"success"`
	Articles   []Article  `json:"articles"`
	SourcePage SourcePage `json:"sourcePage"`
	Error      string     `json:"error,omitempty"`
}

// FailedOutcome returns the envelope for a run that failed with err:
// no articles and a zero-value source page placeholder.
func FailedOutcome(err error) *Outcome {
	return &Outcome{
		Success:    false,
		Articles:   []Article{},
		SourcePage: SourcePage{Keywords: []string{}},
		Error:      ErrorMessage(err),
	}
}

// Stage identifies a step of a generation run.
type Stage string

// Stages in the order a successful run passes through them.
const (
	StageExtracting         Stage = "extracting"
	StageAnalyzing          Stage = "analyzing"
	StageGeneratingArticles Stage = "generating_articles"
	StageGeneratingImages   Stage = "generating_images"
	StageMerging            Stage = "merging"
	StageDone               Stage = "done"
	StageFailed             Stage = "failed"
)

// ProgressFunc is called as a run enters each stage. It is informational
// and must not block.
type ProgressFunc func(Stage)

// Pipeline runs the full URL-to-articles workflow and exposes its
// independently addressable sub-operations.
type Pipeline interface {
	// Generate never returns nil. Only extraction and analysis failures
	// produce an unsuccessful outcome.
	Generate(ctx context.Context, url string, progress ProgressFunc) *Outcome

	// Scrape extracts a source page; see Scraper.
	Scrape(ctx context.Context, url string) (*SourcePage, error)

	// Draft analyzes a page and writes one article per angle without images.
	// It fails only when analysis fails.
	Draft(ctx context.Context, page *SourcePage) (*ArticleBatch, error)

	// Illustrate generates one image per prompt. It never fails.
	Illustrate(ctx context.Context, prompts []string) *IllustrationBatch
}
