package mock

import (
	"context"

	"github.com/fwojciec/blogsmith"
)

var (
	_ blogsmith.TextGenerator  = (*TextGenerator)(nil)
	_ blogsmith.ImageGenerator = (*ImageGenerator)(nil)
)

// TextGenerator is a mock implementation of blogsmith.TextGenerator.
type TextGenerator struct {
	GenerateTextFn func(ctx context.Context, req blogsmith.TextRequest) (string, error)
}

func (g *TextGenerator) GenerateText(ctx context.Context, req blogsmith.TextRequest) (string, error) {
	return g.GenerateTextFn(ctx, req)
}

// ImageGenerator is a mock implementation of blogsmith.ImageGenerator.
type ImageGenerator struct {
	GenerateImageFn func(ctx context.Context, req blogsmith.ImageRequest) (string, error)
}

func (g *ImageGenerator) GenerateImage(ctx context.Context, req blogsmith.ImageRequest) (string, error) {
	return g.GenerateImageFn(ctx, req)
}
