package sidebar

import (
	"fmt"
	"strings"
)

// SchemaError reports a raw node that cannot be interpreted as a group or an
// entry. It aborts Build.
type SchemaError struct {
	Path Path
	Msg  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sidebar: %s: %s", e.Path, e.Msg)
}

// Rule names the invariant a ValidationError violates.
type Rule string

const (
	RuleEmptyLabel     Rule = "empty-label"
	RuleDuplicateLabel Rule = "duplicate-label"
	RuleMalformedSlug  Rule = "malformed-slug"
	RuleMalformedLink  Rule = "malformed-link"
)

// ValidationError is a single invariant violation found by Validate.
type ValidationError struct {
	Path   Path
	Rule   Rule
	Detail string
	// First is the canonical occurrence for RuleDuplicateLabel.
	First Path
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Path.String())
	if labels := e.Path.Labels(); strings.TrimSpace(labels) != "" {
		fmt.Fprintf(&b, " (%s)", labels)
	}
	b.WriteString(": ")
	b.WriteString(e.Detail)
	if e.First != nil {
		fmt.Fprintf(&b, " (first at %s)", e.First)
	}
	return b.String()
}

// ValidationErrors is every violation found in one pass, in traversal order.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	switch len(errs) {
	case 0:
		return "sidebar: no errors"
	case 1:
		return "sidebar: " + errs[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "sidebar: %d validation errors:", len(errs))
	for _, e := range errs {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// ByRule returns the errors violating rule.
func (errs ValidationErrors) ByRule(rule Rule) ValidationErrors {
	var out ValidationErrors
	for _, e := range errs {
		if e.Rule == rule {
			out = append(out, e)
		}
	}
	return out
}
