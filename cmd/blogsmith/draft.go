package main

import (
	"fmt"

	"github.com/fwojciec/blogsmith"
)

// Run executes the draft command.
func (c *DraftCmd) Run(deps *Dependencies) error {
	progress := func(s blogsmith.Stage) {
		if deps.Progress != nil {
			deps.Progress(s)
		}
	}

	progress(blogsmith.StageExtracting)
	page, err := deps.Pipeline.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}

	progress(blogsmith.StageGeneratingArticles)
	batch, err := deps.Pipeline.Draft(deps.Ctx, page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}
	progress(blogsmith.StageDone)

	if c.JSON {
		return writeJSON(deps.Stdout, batch)
	}
	for i, a := range batch.Articles {
		writeArticle(deps.Stdout, i, a)
	}
	return nil
}
