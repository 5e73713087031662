package main

import (
	"fmt"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/lookup"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	page, err := openPage(deps, c.Crate, c.Online)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		if !c.Online && rsdoc.ErrorCode(err) == rsdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Hint: run 'rsdoc build' to generate the cache, or retry with --online\n")
		}
		return err
	}

	if len(page.Groups) == 0 {
		fmt.Fprintf(deps.Stdout, "No documented items found for %s.\n", c.Crate)
		return nil
	}

	fmt.Fprint(deps.Stdout, deps.Renderer.Render(page.Groups))
	return nil
}

// openPage runs the open-and-extract pipeline for one crate.
func openPage(deps *Dependencies, crate string, online bool) (*rsdoc.Page, error) {
	l := &lookup.Lookup{
		Source:    deps.source(online),
		Extractor: deps.Extractor,
		Logger:    deps.Logger,
	}
	return l.Open(deps.Ctx, crate)
}
