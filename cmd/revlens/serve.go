package main

import (
	"fmt"
	"os"
	"os/signal"

	revgin "github.com/reviewlens/revlens/gin"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := revgin.NewServer()
	server.Addr = c.Addr
	server.Summarizer = deps.Summarizer
	server.Logger = deps.Logger
	if !c.NoHistory {
		server.ExtractionService = deps.Extractions
	}

	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %v\n", c.Addr, err)
		return err
	}
	defer server.Close()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	select {
	case <-stop:
	case <-deps.Ctx.Done():
	}

	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
