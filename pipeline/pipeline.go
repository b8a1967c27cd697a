package pipeline

import (
	"context"

	"github.com/fwojciec/blogsmith"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure Pipeline implements blogsmith.Pipeline at compile time.
var _ blogsmith.Pipeline = (*Pipeline)(nil)

// Pipeline runs extraction, analysis, article writing and illustration.
// Articles and images are produced concurrently; results keep angle order.
type Pipeline struct {
	Scraper     blogsmith.Scraper
	Analyzer    blogsmith.Analyzer
	Writer      blogsmith.ArticleWriter
	Illustrator blogsmith.Illustrator

	// NewRunID returns the identifier embedded in article IDs.
	// Defaults to uuid.NewString.
	NewRunID func() string
}

// Generate runs the full workflow for url. It never returns nil; fatal
// errors from extraction or analysis produce a failed outcome.
func (p *Pipeline) Generate(ctx context.Context, url string, progress blogsmith.ProgressFunc) *blogsmith.Outcome {
	report := func(s blogsmith.Stage) {
		if progress != nil {
			progress(s)
		}
	}

	report(blogsmith.StageExtracting)
	page, err := p.Scraper.Scrape(ctx, url)
	if err != nil {
		report(blogsmith.StageFailed)
		return blogsmith.FailedOutcome(err)
	}

	batch, err := p.draft(ctx, page, report)
	if err != nil {
		report(blogsmith.StageFailed)
		return blogsmith.FailedOutcome(err)
	}

	report(blogsmith.StageGeneratingImages)
	prompts := make([]string, len(batch.Articles))
	for i, a := range batch.Articles {
		prompts[i] = a.ImagePrompt
	}
	images := p.Illustrate(ctx, prompts)

	report(blogsmith.StageMerging)
	articles := make([]blogsmith.Article, len(batch.Articles))
	for i, a := range batch.Articles {
		articles[i] = a.WithImage(images.Images[i].URL)
	}

	report(blogsmith.StageDone)
	return &blogsmith.Outcome{
		Success:    true,
		Articles:   articles,
		SourcePage: *page,
	}
}

// Scrape extracts page without generating anything.
func (p *Pipeline) Scrape(ctx context.Context, url string) (*blogsmith.SourcePage, error) {
	return p.Scraper.Scrape(ctx, url)
}

// Draft analyzes page and writes one article per angle, without images.
func (p *Pipeline) Draft(ctx context.Context, page *blogsmith.SourcePage) (*blogsmith.ArticleBatch, error) {
	return p.draft(ctx, page, func(blogsmith.Stage) {})
}

func (p *Pipeline) draft(ctx context.Context, page *blogsmith.SourcePage, report func(blogsmith.Stage)) (*blogsmith.ArticleBatch, error) {
	report(blogsmith.StageAnalyzing)
	analysis, err := p.Analyzer.Analyze(ctx, page.Body)
	if err != nil {
		return nil, err
	}

	report(blogsmith.StageGeneratingArticles)
	runID := p.runID()
	angles := blogsmith.Angles()
	articles := make([]blogsmith.Article, len(angles))

	// Writers never fail, so the group only serves as a join barrier.
	var g errgroup.Group
	for i, angle := range angles {
		g.Go(func() error {
			articles[i] = p.Writer.Write(ctx, blogsmith.ArticleRequest{
				RunID:    runID,
				Page:     page,
				Analysis: analysis,
				Angle:    angle,
				Index:    i,
			})
			return nil
		})
	}
	_ = g.Wait()

	return &blogsmith.ArticleBatch{Articles: articles, Analysis: analysis}, nil
}

// Illustrate renders one image per prompt concurrently. Results are in
// prompt order and failed renders carry placeholders.
func (p *Pipeline) Illustrate(ctx context.Context, prompts []string) *blogsmith.IllustrationBatch {
	images := make([]blogsmith.Illustration, len(prompts))

	var g errgroup.Group
	for i, prompt := range prompts {
		g.Go(func() error {
			images[i] = p.Illustrator.Illustrate(ctx, prompt, i)
			return nil
		})
	}
	_ = g.Wait()

	return blogsmith.NewIllustrationBatch(images)
}

func (p *Pipeline) runID() string {
	if p.NewRunID != nil {
		return p.NewRunID()
	}
	return uuid.NewString()
}
