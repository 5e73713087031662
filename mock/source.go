package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.Source = (*Source)(nil)

// Source is a mock implementation of rsdoc.Source.
type Source struct {
	OpenFn func(ctx context.Context, crate string) (string, string, error)
}

func (s *Source) Open(ctx context.Context, crate string) (string, string, error) {
	return s.OpenFn(ctx, crate)
}
