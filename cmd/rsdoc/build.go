package main

import (
	"fmt"

	"github.com/fwojciec/rsdoc"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	if err := deps.Builder.Build(deps.Ctx, c.Dir); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Documentation cache updated.")
	return nil
}
