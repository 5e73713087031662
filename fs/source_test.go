package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rsdoc"
	rsdocfs "github.com/fwojciec/rsdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Source implements rsdoc.Source at compile time.
var _ rsdoc.Source = (*rsdocfs.Source)(nil)

// writeCache lays out a cargo-doc cache for crate under dir and returns
// the index page path.
func writeCache(t *testing.T, dir, crate string, contents []byte) string {
	t.Helper()

	crateDir := filepath.Join(dir, "target", "doc", crate)
	require.NoError(t, os.MkdirAll(crateDir, 0755))

	path := filepath.Join(crateDir, "all.html")
	require.NoError(t, os.WriteFile(path, contents, 0644))
	return path
}

func TestSource_Open(t *testing.T) {
	t.Parallel()

	t.Run("returns contents and path for a cached crate", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeCache(t, dir, "serde", []byte("<html>all items</html>"))

		source := rsdocfs.NewSource(dir)
		html, base, err := source.Open(context.Background(), "serde")

		require.NoError(t, err)
		assert.Equal(t, "<html>all items</html>", html)
		assert.Equal(t, path, base)
	})

	t.Run("cache miss is not found", func(t *testing.T) {
		t.Parallel()

		source := rsdocfs.NewSource(t.TempDir())
		_, _, err := source.Open(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.ENOTFOUND, rsdoc.ErrorCode(err))
	})

	t.Run("undecodable cache file is a load failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeCache(t, dir, "serde", []byte{0xff, 0xfe, 0xfd})

		source := rsdocfs.NewSource(dir)
		_, _, err := source.Open(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
	})

	t.Run("unreadable cache file is a load failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		// A directory where the index file should be forces a read error
		// without relying on permission bits.
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "target", "doc", "serde", "all.html"), 0755))

		source := rsdocfs.NewSource(dir)
		_, _, err := source.Open(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		source := rsdocfs.NewSource(t.TempDir())
		_, _, err := source.Open(ctx, "serde")

		require.Error(t, err)
	})
}
