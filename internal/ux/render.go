package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/olton/easytest-doc/internal/sidebar"
	"github.com/olton/easytest-doc/internal/site"
)

// Diagnostics prints every sidebar validation error, one per line, with the
// path of the offending node.
func Diagnostics(w io.Writer, errs sidebar.ValidationErrors) {
	red.Fprintf(w, "Validation failed with %d error(s):\n", len(errs))
	for _, e := range errs {
		loc := e.Path.String()
		if labels := e.Path.Labels(); strings.TrimSpace(labels) != "" {
			loc += " " + dim.Sprintf("(%s)", labels)
		}
		fmt.Fprintf(w, "  %s %s: %s", yellow.Sprintf("[%s]", e.Rule), loc, e.Detail)
		if e.First != nil {
			fmt.Fprintf(w, " %s", dim.Sprintf("(first at %s)", e.First))
		}
		fmt.Fprintln(w)
	}
}

// RenderTree prints the navigation tree as it will appear in the menu.
func RenderTree(w io.Writer, f sidebar.Forest) {
	for p, n := range sidebar.Walk(f) {
		indent := strings.Repeat("  ", len(p)-1)
		switch n := n.(type) {
		case *sidebar.Group:
			suffix := ""
			if n.Len() == 0 {
				suffix = dim.Sprint(" (empty)")
			} else if n.Collapsed() {
				suffix = dim.Sprint(" (collapsed)")
			}
			fmt.Fprintf(w, "%s%s%s\n", indent, bold.Sprint(n.Label()), suffix)
		case *sidebar.Entry:
			t := n.Target()
			arrow := "→"
			if t.IsLink() {
				arrow = "↗"
			}
			badge := ""
			if n.Badge() != "" {
				badge = " " + yellow.Sprintf("[%s]", n.Badge())
			}
			fmt.Fprintf(w, "%s%s%s %s %s\n", indent, n.Label(), badge, dim.Sprint(arrow), cyan.Sprint(t.Value()))
		}
	}
}

// RenderManifest prints one line per page: ID, section, label and target.
func RenderManifest(w io.Writer, pages []site.Page) {
	for _, p := range pages {
		target := p.Slug
		if p.External() {
			target = p.Link
		}
		fmt.Fprintf(w, "%s  %-20s %-28s %s\n", dim.Sprint(p.ID), p.Section, p.Label, cyan.Sprint(target))
	}
}
