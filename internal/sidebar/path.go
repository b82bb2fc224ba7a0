package sidebar

import (
	"fmt"
	"slices"
	"strings"
)

// Step is one hop from a parent to a child: the child's index among its
// siblings and its label.
type Step struct {
	Index int
	Label string
}

// Path locates a node in the forest. The first step indexes the top-level
// groups, every further step the items of the group before it.
type Path []Step

// String renders the path in index form, e.g. "sidebar[3].items[1]".
func (p Path) String() string {
	if len(p) == 0 {
		return "sidebar"
	}
	var b strings.Builder
	for i, s := range p {
		if i == 0 {
			fmt.Fprintf(&b, "sidebar[%d]", s.Index)
			continue
		}
		fmt.Fprintf(&b, ".items[%d]", s.Index)
	}
	return b.String()
}

// Labels renders the group chain by label, e.g. "Reporting > LCOV Reporter".
func (p Path) Labels() string {
	labels := make([]string, len(p))
	for i, s := range p {
		labels[i] = s.Label
	}
	return strings.Join(labels, " > ")
}

func (p Path) child(index int, label string) Path {
	c := slices.Clip(p)
	return append(c, Step{Index: index, Label: label})
}
