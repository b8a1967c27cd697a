package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/mock"
	bsslog "github.com/fwojciec/blogsmith/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><p>post</p></html>", nil
			},
		}

		fetcher := bsslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/blog/post")

		require.NoError(t, err)
		assert.Equal(t, "<html><p>post</p></html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/blog/post")
		assert.Contains(t, output, "bytes=24")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := bsslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/blog/post")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := bsslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs page size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(pageURL, _ string) (*blogsmith.SourcePage, error) {
				return &blogsmith.SourcePage{URL: pageURL, Title: "Post", Body: "héllo", Keywords: []string{"go"}}, nil
			},
		}

		ext := bsslog.NewLoggingExtractor(inner, logger)
		page, err := ext.Extract("https://example.com/blog/post", "<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Post", page.Title)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "title=Post")
		assert.Contains(t, output, "body_runes=5")
		assert.Contains(t, output, "keywords=1")
	})

	t.Run("logs error without page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_, _ string) (*blogsmith.SourcePage, error) {
				return nil, errors.New("parse failed")
			},
		}

		_, err := bsslog.NewLoggingExtractor(inner, logger).Extract("https://example.com", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"parse failed\"")
	})
}
