package main

import (
	"fmt"

	"github.com/fwojciec/blogsmith"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	page, err := deps.Pipeline.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", blogsmith.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, page)
	}
	writePage(deps.Stdout, page)
	return nil
}
