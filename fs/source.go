// Package fs provides a filesystem-backed implementation of rsdoc.Source
// that reads the cargo-doc cache.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/rsdoc"
)

// Ensure Source implements rsdoc.Source at compile time.
var _ rsdoc.Source = (*Source)(nil)

// Source reads a crate's index page from the local cargo-doc cache at
// <dir>/target/doc/<crate>/all.html. The cache is read-only from this
// package's perspective; regenerating it is the exec package's job.
type Source struct {
	dir string
}

// NewSource creates a Source rooted at dir. An empty dir means the
// working directory is resolved at Open time.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Open reads the cached index page for crate. A missing file returns
// ENOTFOUND; a file that cannot be read or is not valid UTF-8 returns
// EUNAVAILABLE. The path read serves as the base location.
func (s *Source) Open(ctx context.Context, crate string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	dir := s.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", rsdoc.Errorf(rsdoc.EUNAVAILABLE, "resolving working directory: %v", err)
		}
		dir = wd
	}

	path := filepath.Join(dir, "target", "doc", crate, rsdoc.IndexFile)

	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", "", rsdoc.Errorf(rsdoc.ENOTFOUND, "no cached documentation for crate %q at %q", crate, path)
	} else if err != nil {
		return "", "", rsdoc.Errorf(rsdoc.EUNAVAILABLE, "reading cached index page %q: %v", path, err)
	}

	if !utf8.Valid(contents) {
		return "", "", rsdoc.Errorf(rsdoc.EUNAVAILABLE, "cached index page %q is not valid UTF-8", path)
	}

	return string(contents), path, nil
}
