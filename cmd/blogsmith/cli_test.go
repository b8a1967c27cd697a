package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/blogsmith/cmd/blogsmith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"generate", "extract", "draft", "illustrate", "serve"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesFlags(t *testing.T) {
	t.Parallel()

	t.Run("generate with global flags", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"--backend", "openai", "-e", "readability", "-v", "generate", "https://example.com", "--json", "--stats"})

		require.NoError(t, err)
		assert.Equal(t, "openai", cli.Backend)
		assert.Equal(t, "readability", cli.Extractor)
		assert.True(t, cli.Verbose)
		assert.Equal(t, "https://example.com", cli.Generate.URL)
		assert.True(t, cli.Generate.JSON)
		assert.True(t, cli.Generate.Stats)
	})

	t.Run("illustrate takes several prompts", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"illustrate", "a gopher", "a whale"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a gopher", "a whale"}, cli.Illustrate.Prompts)
	})

	t.Run("serve defaults to port 8080", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"serve"})

		require.NoError(t, err)
		assert.Equal(t, ":8080", cli.Serve.Addr)
	})
}
