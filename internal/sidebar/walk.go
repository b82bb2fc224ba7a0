package sidebar

import "iter"

// Walk yields every node in pre-order along with its position. Each call
// starts a fresh traversal.
func Walk(f Forest) iter.Seq2[Path, Node] {
	return func(yield func(Path, Node) bool) {
		for i, g := range f.groups {
			if !walk(Path{}.child(i, g.label), g, yield) {
				return
			}
		}
	}
}

func walk(p Path, n Node, yield func(Path, Node) bool) bool {
	if !yield(p, n) {
		return false
	}
	g, ok := n.(*Group)
	if !ok {
		return true
	}
	for i, c := range g.items {
		if !walk(p.child(i, c.Label()), c, yield) {
			return false
		}
	}
	return true
}

// Flatten yields every leaf entry depth-first in menu order.
func Flatten(f Forest) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, n := range Walk(f) {
			if e, ok := n.(*Entry); ok && !yield(e) {
				return
			}
		}
	}
}
