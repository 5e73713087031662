package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/rsdoc"
	rsdochttp "github.com/fwojciec/rsdoc/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Source implements rsdoc.Source at compile time.
var _ rsdoc.Source = (*rsdochttp.Source)(nil)

// newDocsServer simulates a docs host: the crate landing page redirects
// to a version-qualified location which serves the index page.
func newDocsServer(t *testing.T, indexStatus int, indexBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/serde", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/serde/1.0.0/serde/", http.StatusFound)
	})
	mux.HandleFunc("/serde/1.0.0/serde/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>landing</html>"))
	})
	mux.HandleFunc("/serde/1.0.0/serde/all.html", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(indexStatus)
		_, _ = w.Write([]byte(indexBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSource_Open(t *testing.T) {
	t.Parallel()

	t.Run("follows the landing redirect before fetching the index", func(t *testing.T) {
		t.Parallel()

		server := newDocsServer(t, http.StatusOK, "<html>all items</html>")

		source := rsdochttp.NewSource(rsdochttp.WithRootURL(server.URL))
		html, base, err := source.Open(context.Background(), "serde")

		require.NoError(t, err)
		assert.Equal(t, "<html>all items</html>", html)
		assert.Equal(t, server.URL+"/serde/1.0.0/serde/all.html", base)
	})

	t.Run("non-success index status means no published docs", func(t *testing.T) {
		t.Parallel()

		server := newDocsServer(t, http.StatusNotFound, "not found")

		source := rsdochttp.NewSource(rsdochttp.WithRootURL(server.URL))
		_, _, err := source.Open(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.ENOTFOUND, rsdoc.ErrorCode(err))
	})

	t.Run("transport failure on the landing request is a load failure", func(t *testing.T) {
		t.Parallel()

		source := rsdochttp.NewSource(
			rsdochttp.WithRootURL("http://non-existent-host.invalid"),
			rsdochttp.WithTimeout(100*time.Millisecond),
		)
		_, _, err := source.Open(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
	})

	t.Run("timeout on the landing request is a load failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		source := rsdochttp.NewSource(
			rsdochttp.WithRootURL(server.URL),
			rsdochttp.WithTimeout(20*time.Millisecond),
		)
		_, _, err := source.Open(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
	})

	t.Run("transport failure on the index request is a load failure", func(t *testing.T) {
		t.Parallel()

		// The landing handler answers, then the server dies before the
		// index request.
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/serde" {
				_, _ = w.Write([]byte("landing"))
				go server.CloseClientConnections()
				return
			}
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		source := rsdochttp.NewSource(
			rsdochttp.WithRootURL(server.URL),
			rsdochttp.WithTimeout(50*time.Millisecond),
		)
		_, _, err := source.Open(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := newDocsServer(t, http.StatusOK, "<html>all items</html>")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		source := rsdochttp.NewSource(rsdochttp.WithRootURL(server.URL))
		_, _, err := source.Open(ctx, "serde")

		require.Error(t, err)
		assert.Equal(t, rsdoc.EUNAVAILABLE, rsdoc.ErrorCode(err))
	})
}
