package mock

import "github.com/fwojciec/rsdoc"

var _ rsdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of rsdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string, base string) ([]rsdoc.Group, error)
}

func (e *Extractor) Extract(html string, base string) ([]rsdoc.Group, error) {
	return e.ExtractFn(html, base)
}
