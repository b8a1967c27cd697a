package blogsmith

import (
	"context"
	"time"
)

// Angle is an editorial framing used to diversify articles from one source.
type Angle string

// Supported angles, in declaration order.
const (
	AngleEducational Angle = "Educational/How-to Guide"
	AngleOpinion     Angle = "Opinion/Analysis Piece"
	AngleCommentary  Angle = "News/Trends Commentary"
)

// Angles returns the fixed angle set in declaration order. Article i of a
// run is always written from Angles()[i].
func Angles() []Angle {
	return []Angle{AngleEducational, AngleOpinion, AngleCommentary}
}

// Analysis is the structured summary of a source page as returned by the
// text backend. It is passed through to article prompts without validation.
type Analysis string

// Article is a generated derivative article.
type Article struct {
	ID          string    `json:"id"`
	Angle       Angle     `json:"angle"`
	Title       string    `json:"title"`
	Body        string    `json:"body"` // Markdown
	Summary     string    `json:"summary"`
	ImagePrompt string    `json:"imagePrompt"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WithImage returns a copy of the article with ImageURL set.
func (a Article) WithImage(url string) Article {
	a.ImageURL = url
	return a
}

// ArticleRequest holds the inputs for writing one article.
type ArticleRequest struct {
	RunID    string
	Page     *SourcePage
	Analysis Analysis
	Angle    Angle
	Index    int // 0-based position in Angles()
}

// ArticleBatch is the result of analyzing a page and writing one article
// per angle, without illustrations.
type ArticleBatch struct {
	Articles []Article `json:"articles"`
	Analysis Analysis  `json:"analysis"`
}

// Analyzer summarizes source text before article generation.
type Analyzer interface {
	// Analyze returns EGENERATION when the text backend fails.
	Analyze(ctx context.Context, body string) (Analysis, error)
}

// ArticleWriter writes a single article. It never fails: backend and parse
// errors are absorbed into a fallback article of the same shape.
type ArticleWriter interface {
	Write(ctx context.Context, req ArticleRequest) Article
}
