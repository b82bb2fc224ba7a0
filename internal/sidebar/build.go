package sidebar

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var knownKeys = map[string]bool{
	"label":     true,
	"slug":      true,
	"link":      true,
	"items":     true,
	"collapsed": true,
	"badge":     true,
}

// Build converts the decoded, weakly-typed sidebar literal into a Forest.
// raw is the list of top-level groups as produced by decoding YAML or JSON
// into an `any`. The first malformed node aborts the build with a *SchemaError.
func Build(raw []any) (Forest, error) {
	groups := make([]*Group, 0, len(raw))
	for i, r := range raw {
		n, err := buildNode(Path{}, i, r)
		if err != nil {
			return Forest{}, err
		}
		g, ok := n.(*Group)
		if !ok {
			return Forest{}, &SchemaError{
				Path: Path{{Index: i, Label: n.Label()}},
				Msg:  "top-level node must be a group with 'items'",
			}
		}
		groups = append(groups, g)
	}
	return Forest{groups: groups}, nil
}

func buildNode(parent Path, index int, raw any) (Node, error) {
	fields, ok := asMap(raw)
	if !ok {
		return nil, &SchemaError{Path: parent.child(index, ""), Msg: fmt.Sprintf("node must be a mapping, got %s", describe(raw))}
	}

	label, err := stringField(fields, "label")
	if err != nil {
		return nil, &SchemaError{Path: parent.child(index, ""), Msg: err.Error()}
	}
	path := parent.child(index, label)
	fail := func(format string, args ...any) error {
		return &SchemaError{Path: path, Msg: fmt.Sprintf(format, args...)}
	}

	var unknown []string
	for k := range fields {
		if !knownKeys[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fail("unknown key(s) %s", strings.Join(unknown, ", "))
	}

	_, hasSlug := fields["slug"]
	_, hasLink := fields["link"]
	rawItems, hasItems := fields["items"]

	switch {
	case hasSlug && hasLink:
		return nil, fail("entry has both 'slug' and 'link'")
	case hasItems && (hasSlug || hasLink):
		return nil, fail("node has both 'items' and a target")
	case !hasItems && !hasSlug && !hasLink:
		return nil, fail("node has neither 'slug'/'link' nor 'items'")
	}

	if hasItems {
		if _, ok := fields["badge"]; ok {
			return nil, fail("'badge' is only valid on entries")
		}
		list, ok := rawItems.([]any)
		if !ok && rawItems != nil {
			return nil, fail("'items' must be a sequence, got %s", describe(rawItems))
		}
		collapsed := false
		if v, ok := fields["collapsed"]; ok {
			b, ok := v.(bool)
			if !ok {
				return nil, fail("'collapsed' must be a boolean, got %s", describe(v))
			}
			collapsed = b
		}
		g := &Group{label: label, collapsed: collapsed, items: make([]Node, 0, len(list))}
		for j, child := range list {
			n, err := buildNode(path, j, child)
			if err != nil {
				return nil, err
			}
			g.items = append(g.items, n)
		}
		return g, nil
	}

	if _, ok := fields["collapsed"]; ok {
		return nil, fail("'collapsed' is only valid on groups")
	}
	badge, err := stringField(fields, "badge")
	if err != nil {
		return nil, fail("%v", err)
	}
	var target Target
	if hasSlug {
		s, err := stringField(fields, "slug")
		if err != nil {
			return nil, fail("%v", err)
		}
		target = Slug(s)
	} else {
		l, err := stringField(fields, "link")
		if err != nil {
			return nil, fail("%v", err)
		}
		target = Link(l)
	}
	return &Entry{label: label, target: target, badge: badge}, nil
}

// Parse decodes a YAML (or JSON) sidebar document and builds a Forest.
func Parse(data []byte) (Forest, error) {
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Forest{}, fmt.Errorf("sidebar: %w", err)
	}
	return Build(raw)
}

// LoadFile reads and builds the sidebar stored at path.
func LoadFile(path string) (Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Forest{}, err
	}
	f, err := Parse(data)
	if err != nil {
		return Forest{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func asMap(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	}
	return nil, false
}

func stringField(fields map[string]any, key string) (string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("'%s' must be a string, got %s", key, describe(v))
	}
	return s, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "mapping"
	}
	return fmt.Sprintf("%T", v)
}
