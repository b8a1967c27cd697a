package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/blogsmith"
	"github.com/fwojciec/blogsmith/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// newTestClient returns a genai client pointed at srv.
func newTestClient(t *testing.T, srv *httptest.Server) *genai.Client {
	t.Helper()

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  srv.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return client
}

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
}

func TestTextGenerator_GenerateText(t *testing.T) {
	t.Parallel()

	t.Run("sends prompt and system instruction", func(t *testing.T) {
		t.Parallel()

		reqCh := make(chan generateRequest, 1)
		pathCh := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body generateRequest
			_ = json.NewDecoder(r.Body).Decode(&body)
			reqCh <- body
			pathCh <- r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"mainTopics\":[]}"}]}}]}`))
		}))
		defer srv.Close()

		g := gemini.NewTextGenerator(newTestClient(t, srv), "")

		got, err := g.GenerateText(context.Background(), blogsmith.TextRequest{
			Prompt:       "Analyze this",
			SystemPrompt: "You are a content analyst.",
			Model:        "test-model",
		})

		require.NoError(t, err)
		assert.Equal(t, `{"mainTopics":[]}`, got)

		body := <-reqCh
		require.Len(t, body.Contents, 1)
		assert.Equal(t, "Analyze this", body.Contents[0].Parts[0].Text)
		require.NotNil(t, body.SystemInstruction)
		assert.Equal(t, "You are a content analyst.", body.SystemInstruction.Parts[0].Text)
		assert.True(t, strings.HasSuffix(<-pathCh, "models/test-model:generateContent"))
	})

	t.Run("uses default model", func(t *testing.T) {
		t.Parallel()

		pathCh := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pathCh <- r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`))
		}))
		defer srv.Close()

		g := gemini.NewTextGenerator(newTestClient(t, srv), "")

		_, err := g.GenerateText(context.Background(), blogsmith.TextRequest{Prompt: "hi"})

		require.NoError(t, err)
		assert.Contains(t, <-pathCh, gemini.DefaultTextModel)
	})

	t.Run("returns error on empty response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		g := gemini.NewTextGenerator(newTestClient(t, srv), "m")

		_, err := g.GenerateText(context.Background(), blogsmith.TextRequest{Prompt: "hi"})

		assert.Equal(t, blogsmith.EGENERATION, blogsmith.ErrorCode(err))
	})

	t.Run("returns error on API failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer srv.Close()

		g := gemini.NewTextGenerator(newTestClient(t, srv), "m")

		_, err := g.GenerateText(context.Background(), blogsmith.TextRequest{Prompt: "hi"})

		require.Error(t, err)
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("sets system instruction", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig("be brief")

		require.NotNil(t, config.SystemInstruction)
		require.Len(t, config.SystemInstruction.Parts, 1)
		assert.Equal(t, "be brief", config.SystemInstruction.Parts[0].Text)
		require.NotNil(t, config.Temperature)
	})

	t.Run("omits empty system instruction", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig("")

		assert.Nil(t, config.SystemInstruction)
	})
}
