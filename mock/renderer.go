package mock

import "github.com/fwojciec/rsdoc"

var _ rsdoc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of rsdoc.Renderer.
type Renderer struct {
	RenderFn func(groups []rsdoc.Group) string
}

func (r *Renderer) Render(groups []rsdoc.Group) string {
	return r.RenderFn(groups)
}
