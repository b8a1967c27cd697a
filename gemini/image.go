package gemini

import (
	"context"
	"encoding/base64"

	"github.com/fwojciec/blogsmith"
	"google.golang.org/genai"
)

// DefaultImageModel is the Imagen model used when none is configured.
const DefaultImageModel = "imagen-4.0-generate-001"

// Ensure ImageGenerator implements blogsmith.ImageGenerator at compile time.
var _ blogsmith.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator implements blogsmith.ImageGenerator using Imagen.
// Images are returned inline as data URLs.
type ImageGenerator struct {
	client *genai.Client
	model  string
}

// NewImageGenerator creates a new ImageGenerator. An empty model selects
// DefaultImageModel.
func NewImageGenerator(client *genai.Client, model string) *ImageGenerator {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageGenerator{client: client, model: model}
}

// GenerateImage renders one 16:9 image for req.Prompt.
func (g *ImageGenerator) GenerateImage(ctx context.Context, req blogsmith.ImageRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	resp, err := g.client.Models.GenerateImages(ctx, model, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "16:9",
	})
	if err != nil {
		return "", err
	}

	return DataURL(resp)
}

// DataURL returns the first generated image in resp as a data URL.
func DataURL(resp *genai.GenerateImagesResponse) (string, error) {
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "imagen returned no images")
	}

	img := resp.GeneratedImages[0]
	if img.Image == nil || len(img.Image.ImageBytes) == 0 {
		if img.RAIFilteredReason != "" {
			return "", blogsmith.Errorf(blogsmith.EGENERATION, "image filtered: %s", img.RAIFilteredReason)
		}
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "imagen returned empty image")
	}

	mime := img.Image.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Image.ImageBytes), nil
}
