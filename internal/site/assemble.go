package site

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/olton/easytest-doc/internal/sidebar"
)

// ConfigError reports an invalid top-level option. It aborts assembly.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "site: " + e.Msg
	}
	return fmt.Sprintf("site: %s: %s", e.Field, e.Msg)
}

// SiteConfig is the assembled configuration handed to the site generator.
// It is immutable: accessors return copies.
type SiteConfig struct {
	meta    Meta
	sidebar sidebar.Forest
}

func (c *SiteConfig) Meta() Meta              { return c.meta.clone() }
func (c *SiteConfig) Sidebar() sidebar.Forest { return c.sidebar }

// Assemble checks meta, applies defaults to a copy and attaches the sidebar.
// It does not validate the forest; callers pass one that sidebar.Validate
// accepted. The same inputs always produce an equal SiteConfig.
func Assemble(meta Meta, forest sidebar.Forest) (*SiteConfig, error) {
	m := meta.clone()

	if strings.TrimSpace(m.Title) == "" {
		return nil, &ConfigError{Field: "title", Msg: "is required"}
	}

	if m.TableOfContents == nil {
		m.TableOfContents = &TableOfContents{
			MinHeadingLevel: DefaultMinHeadingLevel,
			MaxHeadingLevel: DefaultMaxHeadingLevel,
		}
	}
	toc := m.TableOfContents
	if toc.MinHeadingLevel == 0 {
		toc.MinHeadingLevel = DefaultMinHeadingLevel
	}
	if toc.MaxHeadingLevel == 0 {
		toc.MaxHeadingLevel = DefaultMaxHeadingLevel
	}
	if toc.MinHeadingLevel < 1 || toc.MinHeadingLevel > 6 {
		return nil, &ConfigError{Field: "tableOfContents.minHeadingLevel", Msg: fmt.Sprintf("%d is outside 1..6", toc.MinHeadingLevel)}
	}
	if toc.MaxHeadingLevel < 1 || toc.MaxHeadingLevel > 6 {
		return nil, &ConfigError{Field: "tableOfContents.maxHeadingLevel", Msg: fmt.Sprintf("%d is outside 1..6", toc.MaxHeadingLevel)}
	}
	if toc.MinHeadingLevel > toc.MaxHeadingLevel {
		return nil, &ConfigError{
			Field: "tableOfContents",
			Msg:   fmt.Sprintf("minHeadingLevel %d is greater than maxHeadingLevel %d", toc.MinHeadingLevel, toc.MaxHeadingLevel),
		}
	}

	if m.Logo != nil {
		if m.Logo.Light == "" {
			return nil, &ConfigError{Field: "logo.light", Msg: "asset path is empty"}
		}
		if m.Logo.Dark == "" {
			return nil, &ConfigError{Field: "logo.dark", Msg: "asset path is empty"}
		}
	}
	if m.Favicon != nil && *m.Favicon == "" {
		return nil, &ConfigError{Field: "favicon", Msg: "asset path is empty"}
	}

	if m.EditLink != nil {
		if err := checkURL("editLink.baseUrl", m.EditLink.BaseURL); err != nil {
			return nil, err
		}
	}
	if m.Social != nil {
		for _, s := range []struct{ field, url string }{
			{"social.github", m.Social.GitHub},
			{"social.discord", m.Social.Discord},
		} {
			if s.url == "" {
				continue
			}
			if err := checkURL(s.field, s.url); err != nil {
				return nil, err
			}
		}
	}

	for i, p := range m.Plugins {
		if strings.TrimSpace(p) == "" {
			return nil, &ConfigError{Field: fmt.Sprintf("plugins[%d]", i), Msg: "plugin name is empty"}
		}
	}
	for i, css := range m.CustomCSS {
		if strings.TrimSpace(css) == "" {
			return nil, &ConfigError{Field: fmt.Sprintf("customCss[%d]", i), Msg: "stylesheet path is empty"}
		}
	}
	if c := m.Components; c != nil {
		for _, o := range []struct {
			name string
			path *string
		}{
			{"Footer", c.Footer},
			{"SocialIcons", c.SocialIcons},
			{"Head", c.Head},
		} {
			if o.path != nil && strings.TrimSpace(*o.path) == "" {
				return nil, &ConfigError{Field: "components." + o.name, Msg: "override path is empty"}
			}
		}
	}

	if ec := m.ExpressiveCode; ec != nil {
		if len(ec.Themes) != 2 {
			return nil, &ConfigError{Field: "expressiveCode.themes", Msg: fmt.Sprintf("want a dark and a light theme, got %d", len(ec.Themes))}
		}
		for i, th := range ec.Themes {
			if strings.TrimSpace(th) == "" {
				return nil, &ConfigError{Field: fmt.Sprintf("expressiveCode.themes[%d]", i), Msg: "theme name is empty"}
			}
		}
	}

	return &SiteConfig{meta: m, sidebar: forest}, nil
}

func checkURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: field, Msg: fmt.Sprintf("%q is not an absolute URL", raw)}
	}
	return nil
}
