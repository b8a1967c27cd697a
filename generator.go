package blogsmith

import "context"

// TextRequest is a single text generation call.
type TextRequest struct {
	Prompt       string
	SystemPrompt string // optional
	Model        string // optional, backend default when empty
}

// ImageRequest is a single image generation call.
type ImageRequest struct {
	Prompt string
	Model  string // optional, backend default when empty
}

// TextGenerator generates text from a prompt.
type TextGenerator interface {
	// GenerateText returns the model's reply. The context bounds the call.
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}

// ImageGenerator generates an image from a prompt.
type ImageGenerator interface {
	// GenerateImage returns a URL-like reference to the generated image,
	// either a remote URL or a data URL.
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}
