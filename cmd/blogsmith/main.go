package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/gemini"
	"github.com/fwojciec/blogsmith/goquery"
	bshttp "github.com/fwojciec/blogsmith/http"
	"github.com/fwojciec/blogsmith/openai"
	"github.com/fwojciec/blogsmith/pipeline"
	"github.com/fwojciec/blogsmith/readability"
	bsslog "github.com/fwojciec/blogsmith/slog"
	"github.com/fwojciec/blogsmith/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// Services for end-to-end testing. When set, wiring is skipped.
	Pipeline     blogsmith.Pipeline
	TokenCounter blogsmith.TokenCounter

	fetcher blogsmith.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("blogsmith"),
		kong.Description("Turn a web page into illustrated blog articles."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'blogsmith --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	configPath := cli.Config
	if configPath == "" {
		configPath = defaultConfigPath(m.Getenv)
	}
	cfg, err := LoadConfig(configPath, cli.Config != "", m.Getenv)
	if err != nil {
		return err
	}
	if cli.Backend != "" {
		cfg.Backend = cli.Backend
	}
	if cli.Extractor != "" {
		cfg.Extractor = cli.Extractor
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Progress = func(s blogsmith.Stage) {
			logger.Info("stage", "stage", string(s))
		}
	}

	if m.Pipeline == nil {
		p, err := m.wire(ctx, cfg, cmd, logger, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		m.Pipeline = p
	}
	deps.Pipeline = m.Pipeline

	if cmd == "generate" && cli.Generate.Stats {
		if m.TokenCounter == nil {
			tc, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			m.TokenCounter = tc
		}
		deps.Tokens = m.TokenCounter
	}

	return kongCtx.Run(deps)
}

// wire builds the pipeline for cmd. Generation backends are only created
// for commands that use them.
func (m *Main) wire(ctx context.Context, cfg Config, cmd string, logger *slog.Logger, stderr io.Writer) (*pipeline.Pipeline, error) {
	var fetcher blogsmith.Fetcher = bshttp.NewFetcher(bshttp.WithTimeout(cfg.Timeouts.Fetch))
	m.fetcher = fetcher

	var extractor blogsmith.Extractor = goquery.NewExtractor()
	switch cfg.Extractor {
	case ExtractorReadability:
		extractor = readability.NewExtractor(extractor)
	case ExtractorTrafilatura:
		extractor = trafilatura.NewExtractor(extractor)
	}

	if logger != nil {
		fetcher = bsslog.NewLoggingFetcher(fetcher, logger)
		extractor = bsslog.NewLoggingExtractor(extractor, logger)
	}

	p := &pipeline.Pipeline{
		Scraper: &pipeline.Scraper{Fetcher: fetcher, Extractor: extractor},
	}
	if cmd == "extract" {
		return p, nil
	}

	text, images, err := newGenerators(ctx, cfg, stderr)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		text = bsslog.NewLoggingTextGenerator(text, logger)
		images = bsslog.NewLoggingImageGenerator(images, logger)
	}

	var logf pipeline.LogFunc
	if logger != nil {
		logf = func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		}
	}

	p.Analyzer = &pipeline.Analyzer{Text: text, Timeout: cfg.Timeouts.Text}
	p.Writer = &pipeline.Writer{Text: text, Timeout: cfg.Timeouts.Text, Logf: logf}
	p.Illustrator = &pipeline.Illustrator{Images: images, Timeout: cfg.Timeouts.Image}
	return p, nil
}

// newGenerators connects to the configured backend.
func newGenerators(ctx context.Context, cfg Config, stderr io.Writer) (blogsmith.TextGenerator, blogsmith.ImageGenerator, error) {
	switch cfg.Backend {
	case BackendOpenAI:
		if cfg.OpenAI.APIKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set.")
			return nil, nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
		return openai.NewTextGenerator(client, cfg.OpenAI.TextModel),
			openai.NewImageGenerator(client, cfg.OpenAI.ImageModel), nil

	default:
		if cfg.Gemini.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewTextGenerator(client, cfg.Gemini.TextModel),
			gemini.NewImageGenerator(client, cfg.Gemini.ImageModel), nil
	}
}
