package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/blogsmith"
	main "github.com/fwojciec/blogsmith/cmd/blogsmith"
	"github.com/fwojciec/blogsmith/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftCmd_Run(t *testing.T) {
	t.Parallel()

	scrape := func(_ context.Context, url string) (*blogsmith.SourcePage, error) {
		return &blogsmith.SourcePage{URL: url, Title: "Go", Body: "body"}, nil
	}

	t.Run("scrapes then drafts articles", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		var stages []blogsmith.Stage
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pipeline: &mock.Pipeline{
				ScrapeFn: scrape,
				DraftFn: func(_ context.Context, page *blogsmith.SourcePage) (*blogsmith.ArticleBatch, error) {
					assert.Equal(t, "Go", page.Title)
					return &blogsmith.ArticleBatch{
						Articles: []blogsmith.Article{{ID: "article_r_0", Title: "Draft One", Body: "text"}},
						Analysis: "{}",
					}, nil
				},
			},
			Progress: func(s blogsmith.Stage) { stages = append(stages, s) },
		}

		err := (&main.DraftCmd{URL: "https://example.com"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Draft One")
		assert.NotContains(t, stdout.String(), "![")
		assert.Equal(t, []blogsmith.Stage{
			blogsmith.StageExtracting,
			blogsmith.StageGeneratingArticles,
			blogsmith.StageDone,
		}, stages)
	})

	t.Run("prints batch as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Pipeline: &mock.Pipeline{
				ScrapeFn: scrape,
				DraftFn: func(_ context.Context, _ *blogsmith.SourcePage) (*blogsmith.ArticleBatch, error) {
					return &blogsmith.ArticleBatch{Articles: []blogsmith.Article{}, Analysis: "raw analysis"}, nil
				},
			},
		}

		err := (&main.DraftCmd{URL: "https://example.com", JSON: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"analysis": "raw analysis"`)
	})

	t.Run("reports analysis failure", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Pipeline: &mock.Pipeline{
				ScrapeFn: scrape,
				DraftFn: func(_ context.Context, _ *blogsmith.SourcePage) (*blogsmith.ArticleBatch, error) {
					return nil, blogsmith.Errorf(blogsmith.EGENERATION, "Failed to generate text content")
				},
			},
		}

		err := (&main.DraftCmd{URL: "https://example.com"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Failed to generate text content")
	})
}
