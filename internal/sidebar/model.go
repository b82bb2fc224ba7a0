package sidebar

import "slices"

// TargetKind discriminates the two destinations an Entry may point at.
type TargetKind int

const (
	TargetSlug TargetKind = iota + 1
	TargetLink
)

func (k TargetKind) String() string {
	switch k {
	case TargetSlug:
		return "slug"
	case TargetLink:
		return "link"
	}
	return "unknown"
}

// Target is the destination of an Entry: either an internal page slug or an
// external link, never both.
type Target struct {
	kind  TargetKind
	value string
}

// Slug returns a target referencing an internal documentation page.
func Slug(s string) Target { return Target{kind: TargetSlug, value: s} }

// Link returns a target referencing an external absolute URL.
func Link(u string) Target { return Target{kind: TargetLink, value: u} }

func (t Target) Kind() TargetKind { return t.kind }
func (t Target) Value() string    { return t.value }
func (t Target) IsLink() bool     { return t.kind == TargetLink }

// Node is either a *Group or an *Entry.
type Node interface {
	Label() string
	node()
}

// Entry is a leaf of the navigation tree.
type Entry struct {
	label  string
	target Target
	badge  string
}

// NewEntry returns a leaf entry. An optional badge is displayed next to the
// label by the theme.
func NewEntry(label string, target Target, badge ...string) *Entry {
	e := &Entry{label: label, target: target}
	if len(badge) > 0 {
		e.badge = badge[0]
	}
	return e
}

func (e *Entry) Label() string  { return e.label }
func (e *Entry) Target() Target { return e.target }
func (e *Entry) Badge() string  { return e.badge }
func (*Entry) node()            {}

// Group is an internal node holding an ordered list of children. A group with
// no items is valid and reserves a section for later entries.
type Group struct {
	label     string
	items     []Node
	collapsed bool
}

// NewGroup returns a group holding items in the given order.
func NewGroup(label string, items ...Node) *Group {
	return &Group{label: label, items: slices.Clone(items)}
}

// Collapse returns a copy of g that the theme renders collapsed by default.
func (g *Group) Collapse() *Group {
	c := *g
	c.collapsed = true
	return &c
}

func (g *Group) Label() string   { return g.label }
func (g *Group) Collapsed() bool { return g.collapsed }
func (g *Group) Len() int        { return len(g.items) }

// Items returns a copy of the group's children.
func (g *Group) Items() []Node { return slices.Clone(g.items) }

func (*Group) node() {}

// Forest is the ordered list of top-level groups making up a site's sidebar.
// It is immutable once built.
type Forest struct {
	groups []*Group
}

// NewForest returns a forest of the given top-level groups.
func NewForest(groups ...*Group) Forest {
	return Forest{groups: slices.Clone(groups)}
}

func (f Forest) Len() int { return len(f.groups) }

// Groups returns a copy of the top-level groups.
func (f Forest) Groups() []*Group { return slices.Clone(f.groups) }
