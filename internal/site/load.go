package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/olton/easytest-doc/internal/sidebar"
)

// FileName is the site configuration file looked up in a project root.
const FileName = "docsite.yaml"

// sidebarSource is the `sidebar` option: either an inline list of groups or
// the path of a separate sidebar file, relative to the site file.
type sidebarSource struct {
	File   string
	Inline []any
}

func (s *sidebarSource) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if err := n.Decode(&s.File); err != nil {
			return err
		}
		if s.File == "" {
			return fmt.Errorf("line %d: 'sidebar' file name is empty", n.Line)
		}
		return nil
	case yaml.SequenceNode:
		return n.Decode(&s.Inline)
	}
	return fmt.Errorf("line %d: 'sidebar' must be a file name or a list of groups", n.Line)
}

type siteFile struct {
	Meta    `yaml:",inline"`
	Sidebar *sidebarSource `yaml:"sidebar"`
}

// Load reads the site file at path, builds and validates its sidebar and
// assembles the result. Sidebar validation problems are returned together as
// sidebar.ValidationErrors; schema and option problems abort on the first.
func Load(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf siteFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Msg: fmt.Sprintf("%s: %v", path, err)}
	}

	forest, err := loadSidebar(path, sf.Sidebar)
	if err != nil {
		return nil, err
	}
	if err := sidebar.Validate(forest); err != nil {
		return nil, err
	}
	return Assemble(sf.Meta, forest)
}

func loadSidebar(sitePath string, src *sidebarSource) (sidebar.Forest, error) {
	switch {
	case src == nil:
		return sidebar.Forest{}, &ConfigError{Field: "sidebar", Msg: "is required"}
	case src.File != "":
		p := src.File
		if !filepath.IsAbs(p) {
			p = filepath.Join(filepath.Dir(sitePath), p)
		}
		return sidebar.LoadFile(p)
	}
	return sidebar.Build(src.Inline)
}
