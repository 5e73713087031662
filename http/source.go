// Package http provides an HTTP-based implementation of rsdoc.Source
// that fetches a crate's index page from a documentation host.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/rsdoc"
)

// DefaultRootURL is the documentation host queried for crate landing
// pages.
const DefaultRootURL = "https://docs.rs"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Source implements rsdoc.Source at compile time.
var _ rsdoc.Source = (*Source)(nil)

// Source retrieves a crate's index page over HTTP. The canonical address
// of a crate's docs embeds a version that isn't known up front, so Open
// performs two requests: the landing page reveals the version-qualified
// location through its redirect, and the index page is fetched from there.
type Source struct {
	client  *http.Client
	rootURL string
	timeout time.Duration
}

// Option configures a Source.
type Option func(*Source)

// WithClient sets the HTTP client. The client must follow redirects for
// the landing-page resolution to work; the default client does.
func WithClient(client *http.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// WithRootURL sets the documentation host root.
// Defaults to DefaultRootURL.
func WithRootURL(rootURL string) Option {
	return func(s *Source) {
		s.rootURL = rootURL
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// NewSource creates a new HTTP-backed Source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		rootURL: DefaultRootURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// Open fetches the index page for crate and returns its contents along
// with the resolved index URL as the base location.
//
// Transport failures on either request return EUNAVAILABLE. A non-2xx
// status on the index request returns ENOTFOUND: the host is reachable,
// the crate just has no published docs there. The landing page's own
// status is ignored, only its resolved address matters.
func (s *Source) Open(ctx context.Context, crate string) (string, string, error) {
	landingURL := s.rootURL + "/" + crate

	resolved, err := s.resolveLanding(ctx, landingURL)
	if err != nil {
		return "", "", err
	}

	// docs.rs resolved addresses end in a slash, so plain concatenation
	// yields the index page address.
	indexURL := resolved + rsdoc.IndexFile

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return "", "", rsdoc.Errorf(rsdoc.EINTERNAL, "building index request for %q: %v", indexURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", rsdoc.Errorf(rsdoc.EUNAVAILABLE, "fetching index page %q: %v", indexURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", rsdoc.Errorf(rsdoc.ENOTFOUND, "no documentation for crate %q (HTTP %d)", crate, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", rsdoc.Errorf(rsdoc.EUNAVAILABLE, "reading index page %q: %v", indexURL, err)
	}

	return string(body), indexURL, nil
}

// resolveLanding requests the crate landing page and returns the final
// address after redirects.
func (s *Source) resolveLanding(ctx context.Context, landingURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, landingURL, nil)
	if err != nil {
		return "", rsdoc.Errorf(rsdoc.EINVALID, "building landing request for %q: %v", landingURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", rsdoc.Errorf(rsdoc.EUNAVAILABLE, "fetching landing page %q: %v", landingURL, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused for the index request.
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.Request.URL.String(), nil
}
