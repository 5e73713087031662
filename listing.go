package rsdoc

import "context"

// Kind identifies the documentation category of a listing group.
type Kind string

// Documentation item kinds found on a rustdoc "list of all items" page.
const (
	KindModule   Kind = "module"
	KindStruct   Kind = "struct"
	KindType     Kind = "type"
	KindTrait    Kind = "trait"
	KindEnum     Kind = "enum"
	KindFunction Kind = "function"
	KindConstant Kind = "constant"
	KindOther    Kind = "other"
)

// kindLabels maps each kind to its section heading.
var kindLabels = map[Kind]string{
	KindModule:   "Modules",
	KindStruct:   "Structs",
	KindType:     "Types",
	KindTrait:    "Traits",
	KindEnum:     "Enums",
	KindFunction: "Functions",
	KindConstant: "Constants",
	KindOther:    "Other",
}

// Label returns the human-readable section heading for the kind.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return kindLabels[KindOther]
}

// classKinds is the fixed, case-sensitive mapping from the first class
// token of a listing container to its kind.
var classKinds = map[string]Kind{
	"modules":   KindModule,
	"structs":   KindStruct,
	"typedefs":  KindType,
	"traits":    KindTrait,
	"enums":     KindEnum,
	"functions": KindFunction,
	"constants": KindConstant,
}

// KindForClass maps a container's class token to a Kind. Unrecognized
// tokens map to KindOther so that categories rustdoc adds later still
// surface instead of being dropped.
func KindForClass(token string) Kind {
	if kind, ok := classKinds[token]; ok {
		return kind
	}
	return KindOther
}

// Listing is one documented item: its display name and the absolute URL
// of its documentation page. Name may be empty when the source markup is
// malformed; duplicates across groups are permitted.
type Listing struct {
	Name string
	URL  string
}

// Group is an ordered set of listings sharing one kind. A Group is only
// materialized when it has at least one listing; listing order follows
// document order.
type Group struct {
	Kind     Kind
	Listings []Listing
}

// Page is the extracted index page for one crate. Immutable after
// construction; it lives for the duration of one lookup session.
type Page struct {
	Crate  string
	HTML   string
	Base   string
	Groups []Group
}

// Source obtains the raw index page for a crate along with the base
// location its relative links resolve against.
// Returns ENOTFOUND if the crate has no discoverable documentation and
// EUNAVAILABLE if the source was reachable but could not be read.
type Source interface {
	Open(ctx context.Context, crate string) (html string, base string, err error)
}

// Extractor turns a raw index page into ordered listing groups.
// Malformed anchors are skipped per entry; the only failure mode is
// EINVALID when the document is not an index page at all.
type Extractor interface {
	Extract(html string, base string) ([]Group, error)
}

// Renderer renders listing groups for display.
type Renderer interface {
	Render(groups []Group) string
}

// DocBuilder triggers an external documentation build to (re)generate
// the local cache. The core never writes to the cache itself.
type DocBuilder interface {
	Build(ctx context.Context, dir string) error
}
