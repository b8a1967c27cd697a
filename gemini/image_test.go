package gemini_test

import (
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestDataURL(t *testing.T) {
	t.Parallel()

	t.Run("encodes first image", func(t *testing.T) {
		t.Parallel()

		url, err := gemini.DataURL(&genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte("png"), MIMEType: "image/jpeg"}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,cG5n", url)
	})

	t.Run("defaults to png", func(t *testing.T) {
		t.Parallel()

		url, err := gemini.DataURL(&genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{
				{Image: &genai.Image{ImageBytes: []byte("png")}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,cG5n", url)
	})

	t.Run("reports filtered image", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.DataURL(&genai.GenerateImagesResponse{
			GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "safety"}},
		})

		assert.Equal(t, blogsmith.EGENERATION, blogsmith.ErrorCode(err))
		assert.Contains(t, blogsmith.ErrorMessage(err), "safety")
	})

	t.Run("rejects empty response", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.DataURL(&genai.GenerateImagesResponse{})

		assert.Equal(t, blogsmith.EGENERATION, blogsmith.ErrorCode(err))
	})
}
