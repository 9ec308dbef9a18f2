package main

import (
	"encoding/json"
	"fmt"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/extract"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	extractor, err := extract.New(deps.Accessor, deps.Selectors, extract.WithLogger(deps.Logger))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		return err
	}

	extraction, err := extractor.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		return err
	}

	if len(extraction.Reviews) == 0 {
		fmt.Fprintf(deps.Stderr, "No reviews found at %s. The page may use selectors not in the config.\n", c.URL)
		return revlens.Errorf(revlens.ENOTFOUND, "no reviews found")
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, extraction)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := deps.Extractions.CreateExtraction(deps.Ctx, extraction); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving extraction: %s\n", revlens.ErrorMessage(err))
		} else if err := deps.Extractions.AttachSummary(deps.Ctx, extraction.ID, summary); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving summary: %s\n", revlens.ErrorMessage(err))
		}
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
