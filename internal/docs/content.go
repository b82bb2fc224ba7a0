package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with docsite",
		Content: topicQuickstart,
	},
	{
		Name:    "site",
		Title:   "Site Options",
		Summary: "docsite.yaml options, defaults, and constraints",
		Content: topicSite,
	},
	{
		Name:    "sidebar",
		Title:   "Sidebar Format",
		Summary: "Groups, entries, slugs, links, badges, and collapsed groups",
		Content: topicSidebar,
	},
	{
		Name:    "validation",
		Title:   "Validation Rules",
		Summary: "Schema errors, validation rules, and how errors are reported",
		Content: topicValidation,
	},
	{
		Name:    "export",
		Title:   "Exporting",
		Summary: "Export formats and the page manifest",
		Content: topicExport,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    cd your-docs
    docsite init

   This creates docsite.yaml and sidebar.yaml.

2. Edit sidebar.yaml to shape the navigation menu. The sidebar is a list
   of groups; each group holds entries and nested groups.

3. Check it:

    docsite validate

   Every problem is reported in one pass, with the position of the
   offending node.

4. Export the options object for the site build:

    docsite export --out starlight.json

   Then spread it into the docs integration in astro.config.mjs.
`

const topicSite = `Site Options
============

docsite.yaml holds the site metadata. Unknown options are rejected.

  title                         Site name shown in the header (required)
  editLink.baseUrl              Absolute URL prefix for "edit this page" links
  logo.light, logo.dark         Logo asset paths; both required when logo is set
  favicon                       Favicon asset path; must not be empty when set
  social.github, social.discord Absolute profile/community URLs
  sidebar                       Inline list of groups, or a sidebar file name
                                relative to docsite.yaml
  plugins                       Ordered theme/plugin names
  customCss                     Ordered stylesheet paths
  components.Footer             Override paths for presentation slots
  components.SocialIcons
  components.Head
  lastUpdated                   Show last-modified time per page (default false)
  expressiveCode.themes         Exactly two syntax themes: dark, then light
  tableOfContents               minHeadingLevel and maxHeadingLevel, 1..6,
                                min <= max (default 2 and 3)
  credits                       Show generator attribution (default false)
`

const topicSidebar = `Sidebar Format
==============

A sidebar is a list of top-level groups:

    - label: Reporting
      collapsed: true
      items:
        - label: LCOV Reporter
          slug: reporting/lcov
          badge: New
        - label: Latte Repository
          link: https://github.com/olton/latte

Groups have a label and items. items may be empty, reserving a section for
later pages. collapsed is optional.

Entries have a label and exactly one of:

  slug   a relative page path, e.g. getting-started/overview
  link   an absolute URL, e.g. https://metroui.org.ua

badge is optional and only valid on entries. Order is menu order.
`

const topicValidation = `Validation Rules
================

Schema errors stop the build at the first one. They mean a node cannot be
read at all:

  - a node is neither a group (items) nor an entry (slug or link)
  - an entry has both slug and link
  - a node has both items and slug/link
  - a field has the wrong type, or a key is unknown
  - a top-level node is not a group

Validation errors are collected and reported together:

  empty-label       a label is empty or blank
  duplicate-label   two siblings share a label; the first is kept and
                    every later one is reported
  malformed-slug    a slug is empty, has a scheme, starts or ends with /,
                    or contains whitespace, ?, #, \, or . / .. segments
  malformed-link    a link is not an absolute URL

Each error names its position, e.g.

    sidebar[3].items[1] (Reporting > LCOV Reporter): duplicate label "LCOV Reporter" (first at sidebar[3].items[0])
`

const topicExport = `Exporting
=========

    docsite export [--format json|yaml|mjs] [--out FILE]

writes the validated configuration as the docs integration's options
object. Without --out it prints to stdout. Files are written atomically.
The same input always produces the same bytes.

    docsite sitemap [--format text|json]

lists every entry in menu order with a stable page ID derived from its
section, label, and target.

    docsite tree

prints the navigation tree.
`
