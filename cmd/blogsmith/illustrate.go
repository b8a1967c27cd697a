package main

import "fmt"

// Run executes the illustrate command.
func (c *IllustrateCmd) Run(deps *Dependencies) error {
	batch := deps.Pipeline.Illustrate(deps.Ctx, c.Prompts)

	if c.JSON {
		return writeJSON(deps.Stdout, batch)
	}

	for _, img := range batch.Images {
		if img.Success {
			fmt.Fprintf(deps.Stdout, "%d. %s\n", img.Index+1, img.URL)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%d. %s (placeholder: %s)\n", img.Index+1, img.URL, img.Error)
	}
	fmt.Fprintf(deps.Stderr, "%d images: %d succeeded, %d failed\n",
		batch.Stats.Total, batch.Stats.Successful, batch.Stats.Failed)
	return nil
}
