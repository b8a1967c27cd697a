// Package openai implements text and image generation against any
// OpenAI-compatible API, including gateways configured with a custom base URL.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/blogsmith"
	openai "github.com/sashabaranov/go-openai"
)

// Default models used when none is configured.
const (
	DefaultTextModel  = "gpt-4o-mini"
	DefaultImageModel = openai.CreateImageModelDallE3
)

// NewClient returns a client for apiKey. An empty baseURL selects the
// public OpenAI endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(cfg)
}

// Ensure TextGenerator implements blogsmith.TextGenerator at compile time.
var _ blogsmith.TextGenerator = (*TextGenerator)(nil)

// TextGenerator implements blogsmith.TextGenerator with chat completions.
type TextGenerator struct {
	client *openai.Client
	model  string
}

// NewTextGenerator creates a new TextGenerator. An empty model selects
// DefaultTextModel.
func NewTextGenerator(client *openai.Client, model string) *TextGenerator {
	if model == "" {
		model = DefaultTextModel
	}
	return &TextGenerator{client: client, model: model}
}

// GenerateText sends the system and user prompts as one chat turn.
func (g *TextGenerator) GenerateText(ctx context.Context, req blogsmith.TextRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	var messages []openai.ChatCompletionMessage
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "no content in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Ensure ImageGenerator implements blogsmith.ImageGenerator at compile time.
var _ blogsmith.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator implements blogsmith.ImageGenerator with the images API.
type ImageGenerator struct {
	client *openai.Client
	model  string
}

// NewImageGenerator creates a new ImageGenerator. An empty model selects
// DefaultImageModel.
func NewImageGenerator(client *openai.Client, model string) *ImageGenerator {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageGenerator{client: client, model: model}
}

// GenerateImage renders one landscape image and returns its URL. Backends
// that answer with inline data are returned as a data URL.
func (g *ImageGenerator) GenerateImage(ctx context.Context, req blogsmith.ImageRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          model,
		N:              1,
		Size:           openai.CreateImageSize1792x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "no image data received")
	}

	img := resp.Data[0]
	switch {
	case img.URL != "":
		return img.URL, nil
	case img.B64JSON != "":
		return "data:image/png;base64," + img.B64JSON, nil
	default:
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "no image data received")
	}
}
