package sidebar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	var errs ValidationErrors
	require.True(t, errors.As(err, &errs), "expected ValidationErrors, got %v", err)
	return errs
}

func TestValidate_DuplicateSiblingLabel(t *testing.T) {
	f, err := Build([]any{
		group("Reporting",
			entry("LCOV Reporter", "reporting/lcov"),
			entry("LCOV Reporter", "reporting/lcov2"),
		),
	})
	require.NoError(t, err)

	errs := validationErrors(t, Validate(f))
	require.Len(t, errs, 1)
	e := errs[0]
	assert.Equal(t, RuleDuplicateLabel, e.Rule)
	assert.Equal(t, "sidebar[0].items[1]", e.Path.String())
	assert.Equal(t, "sidebar[0].items[0]", e.First.String())
	assert.Equal(t,
		`sidebar[0].items[1] (Reporting > LCOV Reporter): duplicate label "LCOV Reporter" (first at sidebar[0].items[0])`,
		e.Error())
}

func TestValidate_OneErrorPerExtraDuplicate(t *testing.T) {
	f := NewForest(NewGroup("G",
		NewEntry("Same", Slug("a")),
		NewEntry("Other", Slug("b")),
		NewEntry("Same", Slug("c")),
		NewEntry("Same", Slug("d")),
	))
	errs := validationErrors(t, Validate(f))
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, "sidebar[0].items[0]", e.First.String())
	}
	assert.Equal(t, "sidebar[0].items[2]", errs[0].Path.String())
	assert.Equal(t, "sidebar[0].items[3]", errs[1].Path.String())
}

func TestValidate_SameLabelInDifferentGroups(t *testing.T) {
	f := NewForest(
		NewGroup("Testing Frameworks", NewEntry("Metro UI", Slug("frameworks/metroui"))),
		NewGroup("Resources", NewEntry("Metro UI", Link("https://metroui.org.ua"))),
	)
	assert.NoError(t, Validate(f))
}

func TestValidate_DuplicateTopLevelGroups(t *testing.T) {
	f := NewForest(NewGroup("Features"), NewGroup("Features"))
	errs := validationErrors(t, Validate(f))
	require.Len(t, errs, 1)
	assert.Equal(t, "sidebar[1]", errs[0].Path.String())
}

func TestValidate_CollectsAll(t *testing.T) {
	f := NewForest(
		NewGroup("",
			NewEntry(" ", Slug("ok")),
			NewEntry("Scheme", Slug("https://example.com/page")),
		),
		NewGroup("Links",
			NewEntry("Relative", Link("github.com/olton/latte")),
			NewEntry("No host", Link("https:///path")),
			NewGroup("Nested", NewEntry("Dots", Slug("a/../b"))),
		),
	)
	errs := validationErrors(t, Validate(f))
	assert.Len(t, errs.ByRule(RuleEmptyLabel), 2)
	assert.Len(t, errs.ByRule(RuleMalformedSlug), 2)
	assert.Len(t, errs.ByRule(RuleMalformedLink), 2)
	assert.Len(t, errs, 6)
	assert.Equal(t, "sidebar[1].items[2].items[0]", errs[len(errs)-1].Path.String())
	assert.Contains(t, errs.Error(), "6 validation errors")
}

func TestValidate_SlugRules(t *testing.T) {
	tests := []struct {
		slug string
		ok   bool
	}{
		{"getting-started/overview", true},
		{"index", true},
		{"features/spying", true},
		{"", false},
		{"/features/core", false},
		{"features/core/", false},
		{"features//core", false},
		{"./features", false},
		{"features/../core", false},
		{"features core", false},
		{"features?x=1", false},
		{"features#top", false},
		{"features\\core", false},
		{"mailto:me@example.com", false},
		{"https://example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := Validate(NewForest(NewGroup("G", NewEntry("e", Slug(tt.slug)))))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			errs := validationErrors(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, RuleMalformedSlug, errs[0].Rule)
		})
	}
}

func TestValidate_LinkRules(t *testing.T) {
	tests := []struct {
		link string
		ok   bool
	}{
		{"https://plugins.jetbrains.com/plugin/27190-latte-test-runner", true},
		{"http://metroui.org.ua", true},
		{"mailto:author@pimenov.com.ua", true},
		{"", false},
		{"pimenov.com.ua", false},
		{"/relative/path", false},
		{"https://", false},
		{"http://[::1", false},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			err := Validate(NewForest(NewGroup("G", NewEntry("e", Link(tt.link)))))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			errs := validationErrors(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, RuleMalformedLink, errs[0].Rule)
		})
	}
}

func TestValidate_ErrorsUnwrap(t *testing.T) {
	err := Validate(NewForest(NewGroup("G", NewEntry("", Slug("a")))))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, RuleEmptyLabel, ve.Rule)
}

func TestFlatten_OrderAndRestartable(t *testing.T) {
	f := NewForest(
		NewGroup("A", NewEntry("a1", Slug("a/1")), NewGroup("A2", NewEntry("a2", Slug("a/2")))),
		NewGroup("B"),
		NewGroup("C", NewEntry("c1", Link("https://c.example"))),
	)
	collect := func() []string {
		var out []string
		for e := range Flatten(f) {
			out = append(out, e.Label())
		}
		return out
	}
	first := collect()
	assert.Equal(t, []string{"a1", "a2", "c1"}, first)
	assert.Equal(t, first, collect())
}

func TestFlatten_EarlyStop(t *testing.T) {
	f := NewForest(NewGroup("A", NewEntry("a", Slug("a")), NewEntry("b", Slug("b"))))
	var got []string
	for e := range Flatten(f) {
		got = append(got, e.Label())
		break
	}
	assert.Equal(t, []string{"a"}, got)
}

func TestWalk_Paths(t *testing.T) {
	f := NewForest(NewGroup("A", NewGroup("B", NewEntry("c", Slug("c")))))
	var paths []string
	for p := range Walk(f) {
		paths = append(paths, p.String())
	}
	assert.Equal(t, []string{"sidebar[0]", "sidebar[0].items[0]", "sidebar[0].items[0].items[0]"}, paths)
}

// rawForest draws a valid authored sidebar literal: unique sibling labels,
// well-formed slugs and links, possibly empty or nested groups.
func rawForest() *rapid.Generator[[]any] {
	segment := rapid.StringMatching(`[a-z][a-z0-9-]{0,8}`)
	var node func(t *rapid.T, depth int, name string) any
	node = func(t *rapid.T, depth int, name string) any {
		kind := 0
		if depth < 3 {
			kind = rapid.IntRange(0, 2).Draw(t, "kind")
		} else {
			kind = rapid.IntRange(1, 2).Draw(t, "kind")
		}
		label := fmt.Sprintf("%s %s", rapid.StringMatching(`[A-Z][a-z]{0,6}`).Draw(t, "label"), name)
		switch kind {
		case 0:
			n := rapid.IntRange(0, 4).Draw(t, "items")
			items := make([]any, 0, n)
			for i := 0; i < n; i++ {
				items = append(items, node(t, depth+1, fmt.Sprint(i)))
			}
			return group(label, items...)
		case 1:
			return entry(label, segment.Draw(t, "slug")+"/"+segment.Draw(t, "page"))
		}
		return link(label, "https://"+segment.Draw(t, "host")+".example/"+segment.Draw(t, "path"))
	}
	return rapid.Custom(func(t *rapid.T) []any {
		n := rapid.IntRange(0, 5).Draw(t, "groups")
		out := make([]any, 0, n)
		for i := 0; i < n; i++ {
			size := rapid.IntRange(0, 4).Draw(t, "size")
			items := make([]any, 0, size)
			for j := 0; j < size; j++ {
				items = append(items, node(t, 1, fmt.Sprint(j)))
			}
			out = append(out, group(fmt.Sprintf("Group %d", i), items...))
		}
		return out
	})
}

func TestProperty_ValidForestsValidate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f, err := Build(rawForest().Draw(t, "forest"))
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if err := Validate(f); err != nil {
			t.Fatalf("validate: %v", err)
		}
	})
}

func TestProperty_FlattenDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f, err := Build(rawForest().Draw(t, "forest"))
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		var a, b []*Entry
		for e := range Flatten(f) {
			a = append(a, e)
		}
		for e := range Flatten(f) {
			b = append(b, e)
		}
		if len(a) != len(b) {
			t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("entry %d differs", i)
			}
		}
	})
}

func TestProperty_DuplicatesReportedOncePerExtra(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		copies := rapid.IntRange(1, 6).Draw(t, "copies")
		items := []any{entry("Unique", "unique")}
		for i := 0; i < copies; i++ {
			items = append(items, entry("Twin", fmt.Sprintf("twin/%d", i)))
		}
		f, err := Build([]any{group("G", items...)})
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		err = Validate(f)
		if copies == 1 {
			if err != nil {
				t.Fatalf("unexpected: %v", err)
			}
			return
		}
		var errs ValidationErrors
		if !errors.As(err, &errs) {
			t.Fatalf("expected ValidationErrors, got %v", err)
		}
		if got := len(errs.ByRule(RuleDuplicateLabel)); got != copies-1 {
			t.Fatalf("duplicate errors = %d, want %d", got, copies-1)
		}
	})
}
