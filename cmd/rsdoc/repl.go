package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/rsdoc"
)

// Run executes the repl command: an interactive session that looks up
// crates and searches the currently open page by item name.
func (c *ReplCmd) Run(deps *Dependencies) error {
	var page *rsdoc.Page
	var index rsdoc.Index

	fmt.Fprintln(deps.Stdout, "Commands: lookup <crate>, find <name>, quit")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, ">> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch {
		case fields[0] == "quit" || fields[0] == "exit":
			return scanner.Err()

		case fields[0] == "lookup" && len(fields) == 2:
			p, err := openPage(deps, fields[1], c.Online)
			if err != nil {
				fmt.Fprintf(deps.Stdout, "error: %s\n", rsdoc.ErrorMessage(err))
				if !c.Online && rsdoc.ErrorCode(err) == rsdoc.ENOTFOUND {
					fmt.Fprintln(deps.Stdout, "Hint: run 'rsdoc build' to generate the cache, or restart with --online")
				}
				continue
			}

			// The index lives exactly as long as the open page.
			page = p
			index = rsdoc.BuildIndex(page)
			fmt.Fprint(deps.Stdout, deps.Renderer.Render(page.Groups))

		case fields[0] == "find" && len(fields) == 2:
			if page == nil {
				fmt.Fprintln(deps.Stdout, "No crate open. Use 'lookup <crate>' first.")
				continue
			}

			listing, ok := index.Find(fields[1])
			if !ok {
				fmt.Fprintf(deps.Stdout, "No item named %q in %s.\n", fields[1], page.Crate)
				continue
			}
			fmt.Fprintf(deps.Stdout, "%s\n  %s\n", listing.Name, listing.URL)

		default:
			fmt.Fprintln(deps.Stdout, "Unknown command")
		}
	}

	return scanner.Err()
}
