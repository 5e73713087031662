package rsdoc

import (
	"net/url"
	"strings"
)

// IndexFile is the conventional name of the rustdoc "list of all items"
// page, both on docs.rs and in the local cargo-doc cache.
const IndexFile = "all.html"

// Resolver turns a relative reference from the index page into an
// absolute one. Resolve reports false when the reference cannot be
// resolved; callers must skip the entry rather than emit a broken link.
type Resolver interface {
	Resolve(relative string) (string, bool)
}

// ResolverForBase picks the resolution strategy for a base location:
// URL-join semantics when the base is a well-formed absolute URL,
// index-filename substitution otherwise (a local filesystem mirror).
func ResolverForBase(base string) Resolver {
	if u, err := url.Parse(base); err == nil && u.IsAbs() && u.Host != "" {
		return NewURLResolver(u)
	}
	return NewPathResolver(base, IndexFile)
}

// URLResolver joins relative references onto an absolute base URL using
// standard URL resolution rules.
type URLResolver struct {
	base *url.URL
}

// NewURLResolver creates a URLResolver for the given base URL.
func NewURLResolver(base *url.URL) *URLResolver {
	return &URLResolver{base: base}
}

// Resolve joins relative onto the base URL. A parse failure on relative
// drops the reference; the base itself was validated up front.
func (r *URLResolver) Resolve(relative string) (string, bool) {
	ref, err := url.Parse(relative)
	if err != nil {
		return "", false
	}
	return r.base.ResolveReference(ref).String(), true
}

// PathResolver resolves references against a local filesystem mirror by
// replacing the trailing index filename in the base path. This only
// supports plain filenames as references (no "../" segments), which is
// all the cargo-doc index page emits. A base whose earlier path segments
// also contain the index filename would resolve wrongly; replacing only
// the last occurrence keeps the common layouts correct.
type PathResolver struct {
	base      string
	indexFile string
}

// NewPathResolver creates a PathResolver for the given base path and
// index filename.
func NewPathResolver(base, indexFile string) *PathResolver {
	return &PathResolver{base: base, indexFile: indexFile}
}

// Resolve substitutes the trailing index filename with relative.
// Reports false when the base does not contain the index filename.
func (r *PathResolver) Resolve(relative string) (string, bool) {
	i := strings.LastIndex(r.base, r.indexFile)
	if i < 0 {
		return "", false
	}
	return r.base[:i] + relative + r.base[i+len(r.indexFile):], true
}
