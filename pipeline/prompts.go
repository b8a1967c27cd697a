package pipeline

import (
	"fmt"
	"strings"

	"github.com/fwojciec/blogsmith"
)

// Prompt input limits, in runes.
const (
	analysisInputLength = 2000
	articleInputLength  = 1500
)

// AnalysisSystemPrompt instructs the model to summarize source content as JSON.
const AnalysisSystemPrompt = `You are a content analyst. Analyze the provided website content and return a JSON object with the following structure:
{
  "mainTopics": ["topic1", "topic2", "topic3"],
  "keyInsights": ["insight1", "insight2", "insight3"],
  "contentType": "article|blog|product|service|news|other",
  "targetAudience": "description of target audience",
  "tone": "formal|casual|professional|educational|marketing"
}

Provide only the JSON object, no additional text.`

// BuildAnalysisPrompt builds the user prompt for content analysis from the
// first 2000 runes of body.
func BuildAnalysisPrompt(body string) string {
	return "Analyze this website content: " + blogsmith.Truncate(body, analysisInputLength) + "..."
}

// BuildArticleSystemPrompt returns the system prompt for writing an article
// from the given angle.
func BuildArticleSystemPrompt(angle blogsmith.Angle) string {
	return fmt.Sprintf(`You are an expert blog writer. Generate a high-quality blog post based on the source content and analysis provided.

Return ONLY a JSON object with this exact structure:
{
  "title": "Engaging blog post title",
  "content": "Full blog post content in markdown format (minimum 500 words)",
  "summary": "Brief 2-3 sentence summary",
  "imagePrompt": "Detailed prompt for generating a relevant hero image (be specific about style, elements, mood)"
}

Blog type: %s
Make the content unique, engaging, and valuable to readers. The content should be substantially different from the source while being inspired by it.`, angle)
}

// BuildArticlePrompt builds the user prompt for article index (0-based).
// The prompt numbers articles from 1.
func BuildArticlePrompt(analysis blogsmith.Analysis, body string, angle blogsmith.Angle, index int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Source Content Analysis: %s\n\n", analysis)
	fmt.Fprintf(&sb, "Source Content: %s\n\n", blogsmith.Truncate(body, articleInputLength))
	fmt.Fprintf(&sb, "Create blog post #%d of type %q.", index+1, string(angle))
	return sb.String()
}

// BuildImagePrompt wraps an article's image prompt in the house style.
func BuildImagePrompt(prompt string) string {
	return "Professional blog header image: " + prompt + ". High quality, clean design, suitable for web article. Modern, visually appealing, 16:9 aspect ratio."
}
