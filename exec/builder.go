// Package exec triggers external documentation builds via the cargo CLI.
package exec

import (
	"context"
	"io"
	"os/exec"

	"github.com/fwojciec/rsdoc"
)

// Ensure CargoBuilder implements rsdoc.DocBuilder at compile time.
var _ rsdoc.DocBuilder = (*CargoBuilder)(nil)

// CargoBuilder regenerates the local documentation cache by running
// `cargo doc`. This is the only path that writes to the cache.
type CargoBuilder struct {
	// Stdout and Stderr receive the build output when set.
	Stdout io.Writer
	Stderr io.Writer
}

// NewCargoBuilder creates a new CargoBuilder.
func NewCargoBuilder() *CargoBuilder {
	return &CargoBuilder{}
}

// Build runs `cargo doc --no-deps` in dir, blocking until it completes.
func (b *CargoBuilder) Build(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "cargo", "doc", "--no-deps")
	cmd.Dir = dir
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr

	if err := cmd.Run(); err != nil {
		return rsdoc.Errorf(rsdoc.EUNAVAILABLE, "cargo doc failed: %v", err)
	}
	return nil
}
