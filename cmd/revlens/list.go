package main

import (
	"fmt"

	"github.com/reviewlens/revlens"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := revlens.ExtractionFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'revlens extract --save' to create one.")
		return nil
	}

	for _, e := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d reviews  %s\n",
			e.ID, e.ExtractedAt.Format("2006-01-02 15:04"), len(e.Reviews), e.URL)
	}

	return nil
}
