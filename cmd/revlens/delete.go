package main

import (
	"fmt"

	"github.com/reviewlens/revlens"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return revlens.Errorf(revlens.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Extractions.DeleteExtraction(deps.Ctx, c.ID); err != nil {
		if revlens.ErrorCode(err) == revlens.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: extraction %q not found. Use 'revlens list' to see stored extractions.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", revlens.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted extraction %q\n", c.ID)
	return nil
}
