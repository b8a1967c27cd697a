package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/gemini"
	bshttp "github.com/fwojciec/blogsmith/http"
	"github.com/fwojciec/blogsmith/openai"
	"github.com/fwojciec/blogsmith/pipeline"
	"gopkg.in/yaml.v3"
)

// Supported backends.
const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
)

// Supported extractors.
const (
	ExtractorSelectors   = "selectors"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Config holds settings loaded from the YAML settings file.
type Config struct {
	Backend   string         `yaml:"backend"`
	Extractor string         `yaml:"extractor"`
	Gemini    GeminiConfig   `yaml:"gemini"`
	OpenAI    OpenAIConfig   `yaml:"openai"`
	Timeouts  TimeoutsConfig `yaml:"timeouts"`
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
	APIKey     string `yaml:"-"`
}

// OpenAIConfig configures the OpenAI-compatible backend.
type OpenAIConfig struct {
	BaseURL    string `yaml:"base_url"`
	TextModel  string `yaml:"text_model"`
	ImageModel string `yaml:"image_model"`
	APIKey     string `yaml:"-"`
}

// TimeoutsConfig bounds each stage. Values use Go duration syntax ("10s").
type TimeoutsConfig struct {
	Fetch time.Duration `yaml:"fetch"`
	Text  time.Duration `yaml:"text"`
	Image time.Duration `yaml:"image"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendGemini,
		Extractor: ExtractorSelectors,
		Gemini: GeminiConfig{
			TextModel:  gemini.DefaultTextModel,
			ImageModel: gemini.DefaultImageModel,
		},
		OpenAI: OpenAIConfig{
			TextModel:  openai.DefaultTextModel,
			ImageModel: openai.DefaultImageModel,
		},
		Timeouts: TimeoutsConfig{
			Fetch: bshttp.DefaultFetchTimeout,
			Text:  pipeline.DefaultTextTimeout,
			Image: pipeline.DefaultImageTimeout,
		},
	}
}

// LoadConfig reads settings from path over the defaults and applies
// secrets from the environment. A missing file is only an error when
// required is set.
func LoadConfig(path string, required bool, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !required:
			// No settings file; keep defaults.
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, blogsmith.Errorf(blogsmith.EINVALID, "invalid config %q: %v", path, err)
			}
		}
	}

	cfg.Gemini.APIKey = getenv("GEMINI_API_KEY")
	cfg.OpenAI.APIKey = getenv("OPENAI_API_KEY")
	if baseURL := getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.OpenAI.BaseURL = baseURL
	}

	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGemini, BackendOpenAI:
	default:
		return blogsmith.Errorf(blogsmith.EINVALID, "unknown backend %q (want gemini or openai)", c.Backend)
	}
	switch c.Extractor {
	case ExtractorSelectors, ExtractorReadability, ExtractorTrafilatura:
	default:
		return blogsmith.Errorf(blogsmith.EINVALID, "unknown extractor %q (want selectors, readability or trafilatura)", c.Extractor)
	}
	return nil
}

// defaultConfigPath returns BLOGSMITH_CONFIG or ~/.blogsmith/config.yaml.
func defaultConfigPath(getenv func(string) string) string {
	if path := getenv("BLOGSMITH_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blogsmith", "config.yaml")
}
