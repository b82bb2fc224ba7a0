package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olton/easytest-doc/internal/sidebar"
)

// Export formats understood by Encode and Export.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatMJS  = "mjs"
)

// Formats lists the export formats in display order.
var Formats = []string{FormatJSON, FormatYAML, FormatMJS}

type navNode struct {
	Label     string     `json:"label" yaml:"label"`
	Slug      string     `json:"slug,omitempty" yaml:"slug,omitempty"`
	Link      string     `json:"link,omitempty" yaml:"link,omitempty"`
	Badge     string     `json:"badge,omitempty" yaml:"badge,omitempty"`
	Collapsed bool       `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     *[]navNode `json:"items,omitempty" yaml:"items,omitempty"`
}

// options is the object shape the site generator's docs integration expects.
type options struct {
	Title           string           `json:"title" yaml:"title"`
	EditLink        *EditLink        `json:"editLink,omitempty" yaml:"editLink,omitempty"`
	Logo            *Logo            `json:"logo,omitempty" yaml:"logo,omitempty"`
	Favicon         *string          `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	Social          *Social          `json:"social,omitempty" yaml:"social,omitempty"`
	Sidebar         []navNode        `json:"sidebar" yaml:"sidebar"`
	Plugins         []string         `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	CustomCSS       []string         `json:"customCss,omitempty" yaml:"customCss,omitempty"`
	Components      *Components      `json:"components,omitempty" yaml:"components,omitempty"`
	LastUpdated     bool             `json:"lastUpdated" yaml:"lastUpdated"`
	ExpressiveCode  *ExpressiveCode  `json:"expressiveCode,omitempty" yaml:"expressiveCode,omitempty"`
	TableOfContents *TableOfContents `json:"tableOfContents" yaml:"tableOfContents"`
	Credits         bool             `json:"credits" yaml:"credits"`
}

func (c *SiteConfig) options() options {
	m := c.Meta()
	return options{
		Title:           m.Title,
		EditLink:        m.EditLink,
		Logo:            m.Logo,
		Favicon:         m.Favicon,
		Social:          m.Social,
		Sidebar:         navNodes(c.sidebar),
		Plugins:         m.Plugins,
		CustomCSS:       m.CustomCSS,
		Components:      m.Components,
		LastUpdated:     m.LastUpdated,
		ExpressiveCode:  m.ExpressiveCode,
		TableOfContents: m.TableOfContents,
		Credits:         m.Credits,
	}
}

func navNodes(f sidebar.Forest) []navNode {
	groups := f.Groups()
	out := make([]navNode, 0, len(groups))
	for _, g := range groups {
		out = append(out, navNodeOf(g))
	}
	return out
}

func navNodeOf(n sidebar.Node) navNode {
	switch n := n.(type) {
	case *sidebar.Group:
		items := make([]navNode, 0, n.Len())
		for _, c := range n.Items() {
			items = append(items, navNodeOf(c))
		}
		return navNode{Label: n.Label(), Collapsed: n.Collapsed(), Items: &items}
	case *sidebar.Entry:
		nn := navNode{Label: n.Label(), Badge: n.Badge()}
		if t := n.Target(); t.IsLink() {
			nn.Link = t.Value()
		} else {
			nn.Slug = t.Value()
		}
		return nn
	}
	panic(fmt.Sprintf("site: unexpected sidebar node %T", n))
}

// MarshalJSON renders the configuration as the generator's options object.
func (c *SiteConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.options())
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg *SiteConfig, format string) error {
	switch format {
	case FormatJSON, FormatMJS:
		data, err := json.MarshalIndent(cfg.options(), "", "  ")
		if err != nil {
			return err
		}
		if format == FormatMJS {
			data = append(append([]byte("export default "), data...), ';')
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg.options()); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("site: unknown export format %q (must be json, yaml, or mjs)", format)
}

// Export writes cfg to path atomically.
func Export(cfg *SiteConfig, path, format string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes(), 0644)
}

// writeFileAtomic writes data to a temporary file next to path, fsyncs it and
// renames it over path, so a crash never leaves a half-written export.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
