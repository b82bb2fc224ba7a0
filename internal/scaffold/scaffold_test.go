package scaffold

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olton/easytest-doc/internal/sidebar"
	"github.com/olton/easytest-doc/internal/site"
	"github.com/olton/easytest-doc/internal/ux"
)

func init() {
	ux.Stdout = io.Discard
}

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, name := range []string{site.FileName, SidebarFileName} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s not created: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := site.Load(filepath.Join(dir, site.FileName))
	if err != nil {
		t.Fatalf("site.Load failed on generated config: %v", err)
	}

	m := cfg.Meta()
	if m.Title != "EasyTest" {
		t.Fatalf("Title = %q, want EasyTest", m.Title)
	}
	if m.TableOfContents.MinHeadingLevel != 2 || m.TableOfContents.MaxHeadingLevel != 4 {
		t.Fatalf("tableOfContents = %+v, want 2..4", *m.TableOfContents)
	}

	wantGroups := []string{"Getting Started", "Features", "Advanced", "Reporting", "Testing Frameworks", "Resources"}
	groups := cfg.Sidebar().Groups()
	if len(groups) != len(wantGroups) {
		t.Fatalf("expected %d groups, got %d", len(wantGroups), len(groups))
	}
	for i, want := range wantGroups {
		if groups[i].Label() != want {
			t.Fatalf("group %d: expected %q, got %q", i, want, groups[i].Label())
		}
	}

	var entries, links int
	for e := range sidebar.Flatten(cfg.Sidebar()) {
		entries++
		if e.Target().IsLink() {
			links++
		}
	}
	if entries != 32 || links != 8 {
		t.Fatalf("entries = %d, links = %d; want 32 and 8", entries, links)
	}
}

func TestInit_FailsIfConfigExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, site.FileName), []byte("title: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Init(dir)
	if err == nil {
		t.Fatal("expected error when docsite.yaml already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected error containing 'already exists', got: %s", err)
	}
}
