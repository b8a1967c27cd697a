package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/mock"
	"github.com/fwojciec/blogsmith/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestIllustrator_Illustrate(t *testing.T) {
	t.Parallel()

	t.Run("returns generated image", func(t *testing.T) {
		t.Parallel()

		var got blogsmith.ImageRequest
		il := &pipeline.Illustrator{
			Model: "image-model",
			Images: &mock.ImageGenerator{
				GenerateImageFn: func(_ context.Context, req blogsmith.ImageRequest) (string, error) {
					got = req
					return "https://img.example.com/1.png", nil
				},
			},
		}

		img := il.Illustrate(context.Background(), "a gopher", 0)

		want := "Professional blog header image: a gopher. High quality, clean design, suitable for web article. Modern, visually appealing, 16:9 aspect ratio."
		assert.Equal(t, blogsmith.Illustration{
			Index:   0,
			URL:     "https://img.example.com/1.png",
			Prompt:  want,
			Success: true,
		}, img)
		assert.Equal(t, blogsmith.ImageRequest{Prompt: want, Model: "image-model"}, got)
	})

	t.Run("returns placeholder on failure", func(t *testing.T) {
		t.Parallel()

		il := &pipeline.Illustrator{
			Images: &mock.ImageGenerator{
				GenerateImageFn: func(_ context.Context, _ blogsmith.ImageRequest) (string, error) {
					return "", errors.New("rejected")
				},
			},
		}

		img := il.Illustrate(context.Background(), "a gopher", 2)

		assert.Equal(t, 2, img.Index)
		assert.Equal(t, "https://placehold.co/800x450?text=Blog+Image+3", img.URL)
		assert.Equal(t, "a gopher", img.Prompt)
		assert.False(t, img.Success)
		assert.Equal(t, "rejected", img.Error)
	})

	t.Run("treats empty reference as failure", func(t *testing.T) {
		t.Parallel()

		il := &pipeline.Illustrator{
			Images: &mock.ImageGenerator{
				GenerateImageFn: func(_ context.Context, _ blogsmith.ImageRequest) (string, error) {
					return "", nil
				},
			},
		}

		img := il.Illustrate(context.Background(), "x", 0)

		assert.False(t, img.Success)
		assert.Equal(t, pipeline.PlaceholderURL(0), img.URL)
		assert.NotEmpty(t, img.Error)
	})
}
