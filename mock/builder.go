package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.DocBuilder = (*DocBuilder)(nil)

// DocBuilder is a mock implementation of rsdoc.DocBuilder.
type DocBuilder struct {
	BuildFn func(ctx context.Context, dir string) error
}

func (b *DocBuilder) Build(ctx context.Context, dir string) error {
	return b.BuildFn(ctx, dir)
}
