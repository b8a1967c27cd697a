package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/blogsmith"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	out := deps.Pipeline.Generate(deps.Ctx, c.URL, deps.Progress)

	if c.JSON {
		if err := writeJSON(deps.Stdout, out); err != nil {
			return err
		}
	}
	if !out.Success {
		fmt.Fprintf(deps.Stderr, "error: %s\n", out.Error)
		return errors.New(out.Error)
	}

	if !c.JSON {
		for i, a := range out.Articles {
			writeArticle(deps.Stdout, i, a)
		}
	}

	if c.Stats && deps.Tokens != nil {
		writeStats(deps, out.Articles)
	}
	return nil
}

// writeStats prints approximate token counts. Counting failures are skipped.
func writeStats(deps *Dependencies, articles []blogsmith.Article) {
	var total int
	for i, a := range articles {
		n, err := deps.Tokens.CountTokens(deps.Ctx, a.Title+"\n\n"+a.Body)
		if err != nil {
			continue
		}
		total += n
		fmt.Fprintf(deps.Stderr, "article %d: ~%d tokens\n", i+1, n)
	}
	fmt.Fprintf(deps.Stderr, "total: ~%d tokens\n", total)
}
