package main

import (
	"fmt"

	bshttp "github.com/fwojciec/blogsmith/http"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := bshttp.NewServer(deps.Pipeline)
	srv.Addr = c.Addr

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stderr, "listening on %s\n", srv.URL())

	<-deps.Ctx.Done()
	return srv.Close()
}
