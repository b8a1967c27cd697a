package gemini

import (
	"context"

	"github.com/fwojciec/blogsmith"
	"google.golang.org/genai"
)

// DefaultTextModel is used when neither the generator nor the request
// names a model.
const DefaultTextModel = "gemini-2.5-flash"

// Ensure TextGenerator implements blogsmith.TextGenerator at compile time.
var _ blogsmith.TextGenerator = (*TextGenerator)(nil)

// TextGenerator implements blogsmith.TextGenerator using Google Gemini.
type TextGenerator struct {
	client *genai.Client
	model  string
}

// NewTextGenerator creates a new TextGenerator. An empty model selects
// DefaultTextModel.
func NewTextGenerator(client *genai.Client, model string) *TextGenerator {
	if model == "" {
		model = DefaultTextModel
	}
	return &TextGenerator{client: client, model: model}
}

// GenerateText sends a single-turn prompt and returns the reply text.
func (g *TextGenerator) GenerateText(ctx context.Context, req blogsmith.TextRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req.SystemPrompt),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", blogsmith.Errorf(blogsmith.EGENERATION, "gemini returned empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for a request with the given
// system prompt.
func BuildConfig(systemPrompt string) *genai.GenerateContentConfig {
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}
	return config
}
