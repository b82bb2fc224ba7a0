package sidebar

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// Validate checks the forest's invariants in a single depth-first pass and
// returns every violation as ValidationErrors, or nil when the forest is
// valid. For duplicated sibling labels the first occurrence is canonical and
// each later one is reported.
func Validate(f Forest) error {
	var errs ValidationErrors
	add := func(p Path, rule Rule, format string, args ...any) *ValidationError {
		e := &ValidationError{Path: p, Rule: rule, Detail: fmt.Sprintf(format, args...)}
		errs = append(errs, e)
		return e
	}

	// sibling labels keyed by parent path
	seen := make(map[string]map[string]Path)
	for p, n := range Walk(f) {
		label := n.Label()
		if strings.TrimSpace(label) == "" {
			add(p, RuleEmptyLabel, "empty label")
		} else {
			parent := Path(p[:len(p)-1]).String()
			siblings := seen[parent]
			if siblings == nil {
				siblings = make(map[string]Path)
				seen[parent] = siblings
			}
			if first, dup := siblings[label]; dup {
				add(p, RuleDuplicateLabel, "duplicate label %q", label).First = first
			} else {
				siblings[label] = p
			}
		}

		e, ok := n.(*Entry)
		if !ok {
			continue
		}
		switch t := e.Target(); t.Kind() {
		case TargetSlug:
			if msg := checkSlug(t.Value()); msg != "" {
				add(p, RuleMalformedSlug, "slug %q %s", t.Value(), msg)
			}
		case TargetLink:
			if msg := checkLink(t.Value()); msg != "" {
				add(p, RuleMalformedLink, "link %q %s", t.Value(), msg)
			}
		default:
			add(p, RuleMalformedSlug, "entry has no target")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// checkSlug returns why s is not a relative page path, or "" if it is.
func checkSlug(s string) string {
	switch {
	case s == "":
		return "is empty"
	case schemeRe.MatchString(s):
		return "must be a relative path, not a URL"
	case strings.HasPrefix(s, "/"):
		return "must not start with '/'"
	case strings.HasSuffix(s, "/"):
		return "must not end with '/'"
	case strings.ContainsAny(s, " \t\r\n?#\\"):
		return "contains whitespace, '?', '#' or '\\'"
	}
	for _, seg := range strings.Split(s, "/") {
		switch seg {
		case "":
			return "contains an empty path segment"
		case ".", "..":
			return "contains a relative segment " + seg
		}
	}
	return ""
}

// checkLink returns why s is not an absolute URL, or "" if it is.
func checkLink(s string) string {
	if s == "" {
		return "is empty"
	}
	u, err := url.Parse(s)
	if err != nil {
		return "is not a valid URL"
	}
	if u.Scheme == "" {
		return "must be an absolute URL with a scheme"
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return "has no host"
	}
	return ""
}
