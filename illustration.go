package blogsmith

import "context"

// Illustration is the outcome of generating one article image.
// URL is always renderable: failed generations carry a placeholder.
type Illustration struct {
	Index   int    `json:"index"`
	URL     string `json:"url"`
	Prompt  string `json:"prompt"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// IllustrationStats counts the outcomes of an illustration batch.
type IllustrationStats struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// IllustrationBatch is the result of illustrating a list of prompts.
// Images are in prompt order.
type IllustrationBatch struct {
	Images []Illustration    `json:"images"`
	Stats  IllustrationStats `json:"stats"`
}

// NewIllustrationBatch computes stats for images.
func NewIllustrationBatch(images []Illustration) *IllustrationBatch {
	stats := IllustrationStats{Total: len(images)}
	for _, img := range images {
		if img.Success {
			stats.Successful++
		} else {
			stats.Failed++
		}
	}
	return &IllustrationBatch{Images: images, Stats: stats}
}

// Illustrator generates header images for articles.
type Illustrator interface {
	// Illustrate never fails. index is the 0-based position of the
	// article the image belongs to.
	Illustrate(ctx context.Context, prompt string, index int) Illustration
}
