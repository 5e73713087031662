// Package goquery implements listing extraction from rustdoc HTML using
// CSS selection.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rsdoc"
)

// Ensure Extractor implements rsdoc.Extractor at compile time.
var _ rsdoc.Extractor = (*Extractor)(nil)

// navClasses are first class tokens that mark navigation and sidebar
// lists on a rustdoc page. Containers carrying them are not listing
// groups and are skipped wholesale.
var navClasses = map[string]bool{
	"block":         true,
	"sidebar":       true,
	"sidebar-elems": true,
}

// Extractor turns a rustdoc "list of all items" page into ordered
// listing groups. It performs no network or filesystem access.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page and returns its listing groups in document
// order. Each group's container is classified by its first class token;
// classless and navigation containers are skipped. Anchors without an
// href, and anchors whose target cannot be resolved against base, are
// skipped individually. Groups left empty after filtering are dropped.
func (e *Extractor) Extract(html string, base string) ([]rsdoc.Group, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rsdoc.Errorf(rsdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	resolver := rsdoc.ResolverForBase(base)

	var groups []rsdoc.Group
	doc.Find("ul").Each(func(_ int, container *goquery.Selection) {
		class, ok := container.Attr("class")
		if !ok {
			return
		}

		tokens := strings.Fields(class)
		if len(tokens) == 0 || navClasses[tokens[0]] {
			return
		}
		kind := rsdoc.KindForClass(tokens[0])

		var listings []rsdoc.Listing
		container.Find("a").Each(func(_ int, anchor *goquery.Selection) {
			href, ok := anchor.Attr("href")
			if !ok {
				return
			}

			resolved, ok := resolver.Resolve(href)
			if !ok {
				return
			}

			// Name is the anchor's raw text; rustdoc emits the item
			// path verbatim, so no trimming.
			listings = append(listings, rsdoc.Listing{
				Name: anchor.Text(),
				URL:  resolved,
			})
		})

		if len(listings) == 0 {
			return
		}
		groups = append(groups, rsdoc.Group{Kind: kind, Listings: listings})
	})

	return groups, nil
}
