// Package lookup orchestrates the open-and-extract pipeline that turns a
// crate name into a structured documentation page.
package lookup

import (
	"context"
	"log/slog"

	"github.com/fwojciec/rsdoc"
)

// Lookup wires a page source and an extractor into the single lookup
// operation the CLI consumes. Each call produces a fresh, independently
// owned page; nothing is cached between crates.
type Lookup struct {
	Source    rsdoc.Source
	Extractor rsdoc.Extractor

	// Logger is optional; nil disables logging.
	Logger *slog.Logger
}

// Open resolves the index page for crate and extracts its listing
// groups. Failure classification comes from the source (ENOTFOUND,
// EUNAVAILABLE); the extractor only fails with EINVALID.
func (l *Lookup) Open(ctx context.Context, crate string) (*rsdoc.Page, error) {
	html, base, err := l.Source.Open(ctx, crate)
	if err != nil {
		return nil, err
	}

	groups, err := l.Extractor.Extract(html, base)
	if err != nil {
		return nil, err
	}

	if l.Logger != nil {
		l.Logger.Info("extracted listings",
			"crate", crate,
			"groups", len(groups),
		)
	}

	return &rsdoc.Page{
		Crate:  crate,
		HTML:   html,
		Base:   base,
		Groups: groups,
	}, nil
}
