package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/blogsmith"
)

// Ensure LoggingTextGenerator implements blogsmith.TextGenerator.
var _ blogsmith.TextGenerator = (*LoggingTextGenerator)(nil)

// LoggingTextGenerator wraps a TextGenerator with logging. Prompts are not
// logged, only their sizes.
type LoggingTextGenerator struct {
	next   blogsmith.TextGenerator
	logger *slog.Logger
}

// NewLoggingTextGenerator creates a new LoggingTextGenerator.
func NewLoggingTextGenerator(next blogsmith.TextGenerator, logger *slog.Logger) *LoggingTextGenerator {
	return &LoggingTextGenerator{next: next, logger: logger}
}

// GenerateText logs the call and delegates to the wrapped generator.
func (g *LoggingTextGenerator) GenerateText(ctx context.Context, req blogsmith.TextRequest) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate text",
			"model", req.Model,
			"prompt_runes", blogsmith.RuneLen(req.Prompt),
			"reply_runes", blogsmith.RuneLen(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateText(ctx, req)
}

// Ensure LoggingImageGenerator implements blogsmith.ImageGenerator.
var _ blogsmith.ImageGenerator = (*LoggingImageGenerator)(nil)

// LoggingImageGenerator wraps an ImageGenerator with logging.
type LoggingImageGenerator struct {
	next   blogsmith.ImageGenerator
	logger *slog.Logger
}

// NewLoggingImageGenerator creates a new LoggingImageGenerator.
func NewLoggingImageGenerator(next blogsmith.ImageGenerator, logger *slog.Logger) *LoggingImageGenerator {
	return &LoggingImageGenerator{next: next, logger: logger}
}

// GenerateImage logs the call and delegates to the wrapped generator.
func (g *LoggingImageGenerator) GenerateImage(ctx context.Context, req blogsmith.ImageRequest) (url string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate image",
			"model", req.Model,
			"image", imageRef(url),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateImage(ctx, req)
}

// imageRef shortens inline data URLs so log lines stay readable.
func imageRef(url string) string {
	if strings.HasPrefix(url, "data:") {
		if i := strings.IndexByte(url, ','); i >= 0 {
			return url[:i] + ",..."
		}
	}
	return url
}
