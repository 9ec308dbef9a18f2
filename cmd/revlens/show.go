package main

import (
	"fmt"

	"github.com/reviewlens/revlens"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	extraction, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		if revlens.ErrorCode(err) == revlens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: extraction %q not found. Use 'revlens list' to see stored extractions.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		}
		return err
	}

	printExtraction(deps, extraction)

	summary, err := deps.Extractions.FindSummaryByExtraction(deps.Ctx, extraction.ID)
	if err != nil {
		if revlens.ErrorCode(err) == revlens.ENOTFOUND {
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nSummary (%s): %s\n", summary.Source, summary.OneLineSummary)
	fmt.Fprintf(deps.Stdout, "Sentiment: %s (score=%.2f)\n", summary.OverallSentiment, summary.Score)
	if len(summary.Pros) > 0 {
		fmt.Fprintf(deps.Stdout, "Pros:\n%s\n", revlens.FormatReviews(summary.Pros))
	}
	if len(summary.Cons) > 0 {
		fmt.Fprintf(deps.Stdout, "Cons:\n%s\n", revlens.FormatReviews(summary.Cons))
	}
	return nil
}
