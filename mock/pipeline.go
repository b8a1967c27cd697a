package mock

import (
	"context"

	"github.com/fwojciec/blogsmith"
)

var (
	_ blogsmith.Scraper       = (*Scraper)(nil)
	_ blogsmith.Analyzer      = (*Analyzer)(nil)
	_ blogsmith.ArticleWriter = (*ArticleWriter)(nil)
	_ blogsmith.Illustrator   = (*Illustrator)(nil)
	_ blogsmith.Pipeline      = (*Pipeline)(nil)
)

// Scraper is a mock implementation of blogsmith.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*blogsmith.SourcePage, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*blogsmith.SourcePage, error) {
	return s.ScrapeFn(ctx, url)
}

// Analyzer is a mock implementation of blogsmith.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, body string) (blogsmith.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, body string) (blogsmith.Analysis, error) {
	return a.AnalyzeFn(ctx, body)
}

// ArticleWriter is a mock implementation of blogsmith.ArticleWriter.
type ArticleWriter struct {
	WriteFn func(ctx context.Context, req blogsmith.ArticleRequest) blogsmith.Article
}

func (w *ArticleWriter) Write(ctx context.Context, req blogsmith.ArticleRequest) blogsmith.Article {
	return w.WriteFn(ctx, req)
}

// Illustrator is a mock implementation of blogsmith.Illustrator.
type Illustrator struct {
	IllustrateFn func(ctx context.Context, prompt string, index int) blogsmith.Illustration
}

func (il *Illustrator) Illustrate(ctx context.Context, prompt string, index int) blogsmith.Illustration {
	return il.IllustrateFn(ctx, prompt, index)
}

// Pipeline is a mock implementation of blogsmith.Pipeline.
type Pipeline struct {
	GenerateFn   func(ctx context.Context, url string, progress blogsmith.ProgressFunc) *blogsmith.Outcome
	ScrapeFn     func(ctx context.Context, url string) (*blogsmith.SourcePage, error)
	DraftFn      func(ctx context.Context, page *blogsmith.SourcePage) (*blogsmith.ArticleBatch, error)
	IllustrateFn func(ctx context.Context, prompts []string) *blogsmith.IllustrationBatch
}

func (p *Pipeline) Generate(ctx context.Context, url string, progress blogsmith.ProgressFunc) *blogsmith.Outcome {
	return p.GenerateFn(ctx, url, progress)
}

func (p *Pipeline) Scrape(ctx context.Context, url string) (*blogsmith.SourcePage, error) {
	return p.ScrapeFn(ctx, url)
}

func (p *Pipeline) Draft(ctx context.Context, page *blogsmith.SourcePage) (*blogsmith.ArticleBatch, error) {
	return p.DraftFn(ctx, page)
}

func (p *Pipeline) Illustrate(ctx context.Context, prompts []string) *blogsmith.IllustrationBatch {
	return p.IllustrateFn(ctx, prompts)
}
