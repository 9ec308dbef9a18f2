package main

import (
	"fmt"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	extractor, err := extract.New(deps.Accessor, deps.Selectors, extract.WithLogger(deps.Logger))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		return err
	}

	runner := &extract.Runner{
		Extractor:   extractor,
		Limiter:     extract.NewDomainLimiter(c.RPS),
		Concurrency: c.Concurrency,
	}

	extractions, err := runner.Run(deps.Ctx, c.URLs, func(p extract.Progress) {
		if p.Err != nil {
			fmt.Fprintf(deps.Stderr, "error extracting %s: %s\n", p.URL, revlens.ErrorMessage(p.Err))
			return
		}
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] extracted", p.Completed, p.Total)
	})
	if err != nil {
		return err
	}
	if len(c.URLs) > 0 {
		fmt.Fprintln(deps.Stdout)
	}

	for _, extraction := range extractions {
		printExtraction(deps, extraction)

		if c.Save {
			if err := deps.Extractions.CreateExtraction(deps.Ctx, extraction); err != nil {
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", extraction.URL, revlens.ErrorMessage(err))
			}
		}
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d of %d pages\n", len(extractions), len(c.URLs))
	return nil
}

func printExtraction(deps *Dependencies, extraction *revlens.Extraction) {
	fmt.Fprintf(deps.Stdout, "\n%s\n", extraction.URL)
	if extraction.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", extraction.Title)
	}
	fmt.Fprintf(deps.Stdout, "Reviews (%d):\n", len(extraction.Reviews))
	fmt.Fprintln(deps.Stdout, revlens.FormatReviews(extraction.Reviews))
}
