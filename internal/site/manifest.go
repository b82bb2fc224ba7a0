package site

import (
	"github.com/google/uuid"

	"github.com/olton/easytest-doc/internal/sidebar"
)

// pageNamespace seeds page IDs so they stay stable across builds.
var pageNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/olton/easytest-doc/pages"))

// Page is one navigable destination of the site, for sitemap-style consumers.
type Page struct {
	ID       uuid.UUID `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Section  string    `json:"section" yaml:"section"`
	Position string    `json:"position" yaml:"position"`
	Slug     string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Link     string    `json:"link,omitempty" yaml:"link,omitempty"`
}

// External reports whether the page lives outside the site.
func (p Page) External() bool { return p.Link != "" }

// Manifest lists every sidebar entry in menu order. IDs are name-based
// (UUIDv5) on the entry's section, label and target, so the same sidebar
// always yields the same manifest and reordering keeps IDs stable.
func Manifest(cfg *SiteConfig) []Page {
	var pages []Page
	for path, n := range sidebar.Walk(cfg.Sidebar()) {
		e, ok := n.(*sidebar.Entry)
		if !ok {
			continue
		}
		t := e.Target()
		section := sidebar.Path(path[:len(path)-1]).Labels()
		p := Page{
			ID:       pageID(section, e.Label(), t),
			Label:    e.Label(),
			Section:  section,
			Position: path.String(),
		}
		if t.IsLink() {
			p.Link = t.Value()
		} else {
			p.Slug = t.Value()
		}
		pages = append(pages, p)
	}
	return pages
}

func pageID(section, label string, t sidebar.Target) uuid.UUID {
	name := section + "\x00" + label + "\x00" + t.Kind().String() + ":" + t.Value()
	return uuid.NewSHA1(pageNamespace, []byte(name))
}
