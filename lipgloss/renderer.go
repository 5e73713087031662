// Package lipgloss renders listing groups as styled terminal tables.
package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/rsdoc"
)

// Ensure Renderer implements rsdoc.Renderer at compile time.
var _ rsdoc.Renderer = (*Renderer)(nil)

var (
	// headingStyle for group section headings
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	// nameStyle for listed item names
	nameStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("220"))

	// groupStyle boxes each group under its heading
	groupStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1)
)

// Renderer renders groups one section per kind, heading first, one item
// name per row.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the styled table for the groups, preserving their order.
// An empty group slice renders to an empty string.
func (r *Renderer) Render(groups []rsdoc.Group) string {
	if len(groups) == 0 {
		return ""
	}

	sections := make([]string, 0, len(groups))
	for _, group := range groups {
		var b strings.Builder
		b.WriteString(headingStyle.Render(group.Kind.Label()))
		for _, listing := range group.Listings {
			b.WriteString("\n")
			b.WriteString(nameStyle.Render(listing.Name))
		}
		sections = append(sections, groupStyle.Render(b.String()))
	}

	return strings.Join(sections, "\n") + "\n"
}
