package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/blogsmith"
)

// DefaultImageTimeout bounds each image generation call.
const DefaultImageTimeout = 300 * time.Second

// PlaceholderURL returns the placeholder image for position index (0-based).
func PlaceholderURL(index int) string {
	return fmt.Sprintf("https://placehold.co/800x450?text=Blog+Image+%d", index+1)
}

// errEmptyImage is returned when the backend succeeds without a reference.
var errEmptyImage = errors.New("image backend returned no image")

// Ensure Illustrator implements blogsmith.Illustrator at compile time.
var _ blogsmith.Illustrator = (*Illustrator)(nil)

// Illustrator renders one header image per call. Failures yield a
// placeholder so every slot is filled.
type Illustrator struct {
	Images  blogsmith.ImageGenerator
	Model   string
	Timeout time.Duration
}

// Illustrate renders prompt for position index.
func (il *Illustrator) Illustrate(ctx context.Context, prompt string, index int) blogsmith.Illustration {
	enhanced := BuildImagePrompt(prompt)

	ctx, cancel := context.WithTimeout(ctx, timeoutOr(il.Timeout, DefaultImageTimeout))
	defer cancel()

	url, err := il.Images.GenerateImage(ctx, blogsmith.ImageRequest{
		Prompt: enhanced,
		Model:  il.Model,
	})
	if err == nil && url == "" {
		err = errEmptyImage
	}
	if err != nil {
		return blogsmith.Illustration{
			Index:  index,
			URL:    PlaceholderURL(index),
			Prompt: prompt,
			Error:  err.Error(),
		}
	}

	return blogsmith.Illustration{
		Index:   index,
		URL:     url,
		Prompt:  enhanced,
		Success: true,
	}
}
