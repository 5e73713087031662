package rsdoc

import "strings"

// Index is a flat, searchable view over all listings of one page.
// It is derived and ephemeral: rebuilt whenever a new page is opened,
// never persisted, and shares its listings with the page's groups.
type Index []Listing

// BuildIndex flattens a page's groups into an index, preserving group
// order then listing order. Listings are not deduplicated.
func BuildIndex(page *Page) Index {
	var index Index
	for _, group := range page.Groups {
		index = append(index, group.Listings...)
	}
	return index
}

// Find returns the listing whose name best matches the query.
//
// Two passes: first the earliest exact match, then, only if no exact
// match exists anywhere, the earliest name with the query as a trailing
// substring. Two separate passes matter here: a later exact match must
// outrank an earlier suffix match, which a single combined scan would
// return first.
func (ix Index) Find(query string) (Listing, bool) {
	for _, l := range ix {
		if l.Name == query {
			return l, true
		}
	}
	for _, l := range ix {
		if strings.HasSuffix(l.Name, query) {
			return l, true
		}
	}
	return Listing{}, false
}
