package site

type EditLink struct {
	BaseURL string `yaml:"baseUrl" json:"baseUrl"`
}

type Logo struct {
	Light string `yaml:"light" json:"light"`
	Dark  string `yaml:"dark" json:"dark"`
}

type Social struct {
	GitHub  string `yaml:"github,omitempty" json:"github,omitempty"`
	Discord string `yaml:"discord,omitempty" json:"discord,omitempty"`
}

type Components struct {
	Footer      *string `yaml:"Footer,omitempty" json:"Footer,omitempty"`
	SocialIcons *string `yaml:"SocialIcons,omitempty" json:"SocialIcons,omitempty"`
	Head        *string `yaml:"Head,omitempty" json:"Head,omitempty"`
}

type ExpressiveCode struct {
	Themes []string `yaml:"themes" json:"themes"`
}

type TableOfContents struct {
	MinHeadingLevel int `yaml:"minHeadingLevel" json:"minHeadingLevel"`
	MaxHeadingLevel int `yaml:"maxHeadingLevel" json:"maxHeadingLevel"`
}

// Meta is the static site metadata attached to the sidebar. Optional blocks
// are pointers so that an absent block can be told apart from an empty one.
type Meta struct {
	Title           string           `yaml:"title"`
	EditLink        *EditLink        `yaml:"editLink"`
	Logo            *Logo            `yaml:"logo"`
	Favicon         *string          `yaml:"favicon"`
	Social          *Social          `yaml:"social"`
	Plugins         []string         `yaml:"plugins"`
	CustomCSS       []string         `yaml:"customCss"`
	Components      *Components      `yaml:"components"`
	LastUpdated     bool             `yaml:"lastUpdated"`
	ExpressiveCode  *ExpressiveCode  `yaml:"expressiveCode"`
	TableOfContents *TableOfContents `yaml:"tableOfContents"`
	Credits         bool             `yaml:"credits"`
}

// Default heading bounds applied when tableOfContents is omitted.
const (
	DefaultMinHeadingLevel = 2
	DefaultMaxHeadingLevel = 3
)

func (m Meta) clone() Meta {
	c := m
	if m.EditLink != nil {
		v := *m.EditLink
		c.EditLink = &v
	}
	if m.Logo != nil {
		v := *m.Logo
		c.Logo = &v
	}
	if m.Favicon != nil {
		v := *m.Favicon
		c.Favicon = &v
	}
	if m.Social != nil {
		v := *m.Social
		c.Social = &v
	}
	if m.Components != nil {
		v := Components{
			Footer:      clonePtr(m.Components.Footer),
			SocialIcons: clonePtr(m.Components.SocialIcons),
			Head:        clonePtr(m.Components.Head),
		}
		c.Components = &v
	}
	if m.ExpressiveCode != nil {
		c.ExpressiveCode = &ExpressiveCode{Themes: append([]string(nil), m.ExpressiveCode.Themes...)}
	}
	if m.TableOfContents != nil {
		v := *m.TableOfContents
		c.TableOfContents = &v
	}
	c.Plugins = append([]string(nil), m.Plugins...)
	c.CustomCSS = append([]string(nil), m.CustomCSS...)
	return c
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
