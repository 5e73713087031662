package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/rsdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Local     rsdoc.Source
	Remote    rsdoc.Source
	Extractor rsdoc.Extractor
	Renderer  rsdoc.Renderer
	Builder   rsdoc.DocBuilder
}

// source picks the page source for the requested mode.
func (d *Dependencies) source(online bool) rsdoc.Source {
	if online {
		return d.Remote
	}
	return d.Local
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lookup LookupCmd `cmd:"" help:"Show the documented items of a crate"`
	Repl   ReplCmd   `cmd:"" help:"Interactive lookup session"`
	Build  BuildCmd  `cmd:"" help:"Regenerate the local documentation cache with cargo doc"`

	Verbose bool `short:"v" help:"Log page source activity"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Crate  string `arg:"" help:"Crate name"`
	Online bool   `help:"Fetch from docs.rs instead of the local cache"`
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct {
	Online bool `help:"Fetch from docs.rs instead of the local cache"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Crate directory to build docs for"`
}
