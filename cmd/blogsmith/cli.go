package main

import (
	"context"
	"io"

	"github.com/fwojciec/blogsmith"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline blogsmith.Pipeline
	Tokens   blogsmith.TokenCounter
	Progress blogsmith.ProgressFunc
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `help:"Settings file (YAML). Defaults to $BLOGSMITH_CONFIG or ~/.blogsmith/config.yaml"`
	Backend   string `short:"b" help:"Generation backend: gemini or openai"`
	Extractor string `short:"e" help:"Content extractor: selectors, readability or trafilatura"`
	Verbose   bool   `short:"v" help:"Log each backend call and pipeline stage to stderr"`

	Generate   GenerateCmd   `cmd:"" help:"Generate illustrated articles from a web page"`
	Extract    ExtractCmd    `cmd:"" help:"Extract title, description, body and keywords from a web page"`
	Draft      DraftCmd      `cmd:"" help:"Generate articles from a web page without images"`
	Illustrate IllustrateCmd `cmd:"" help:"Generate header images for prompts"`
	Serve      ServeCmd      `cmd:"" help:"Serve the JSON API"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL   string `arg:"" help:"Source page URL"`
	JSON  bool   `help:"Print the result envelope as JSON"`
	Stats bool   `help:"Report approximate token counts per article"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Source page URL"`
	JSON bool   `help:"Print the page as JSON"`
}

// DraftCmd is the "draft" subcommand.
type DraftCmd struct {
	URL  string `arg:"" help:"Source page URL"`
	JSON bool   `help:"Print articles and analysis as JSON"`
}

// IllustrateCmd is the "illustrate" subcommand.
type IllustrateCmd struct {
	Prompts []string `arg:"" help:"Image prompts, one image each"`
	JSON    bool     `help:"Print images and stats as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
