package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olton/easytest-doc/internal/site"
	"github.com/olton/easytest-doc/internal/ux"
)

// SidebarFileName is the sidebar file referenced by the generated site file.
const SidebarFileName = "sidebar.yaml"

var siteTemplate = `title: EasyTest
editLink:
  baseUrl: https://github.com/olton/easytest-doc/edit/master/
logo:
  light: /src/assets/exam-black.svg
  dark: /src/assets/exam-white.svg
favicon: /exam-white.svg
social:
  github: https://github.com/olton/easytest
  discord: https://discord.gg/jpUJk8zc
sidebar: sidebar.yaml
plugins:
  - starlight-theme-rapide
customCss:
  - ./src/styles/index.css
components:
  Footer: ./src/components/Footer.astro
  SocialIcons: ./src/components/SocialIcons.astro
lastUpdated: true
expressiveCode:
  themes: [dark-plus, github-light]
tableOfContents:
  minHeadingLevel: 2
  maxHeadingLevel: 4
credits: false
`

var sidebarTemplate = `- label: Getting Started
  items:
    - {label: Overview, slug: getting-started/overview}
    - {label: Quick Start, slug: getting-started/quick-start}
    - {label: Configuration, slug: getting-started/configuration}
    - {label: TypeScript, slug: getting-started/typescript}
    - {label: IntelliJ Idea Plugin, slug: getting-started/idea}

- label: Features
  items:
    - {label: Core Methods, slug: features/core}
    - {label: Setup and Teardown, slug: features/setup-and-teardown}
    - {label: Matchers, slug: features/matchers}
    - {label: Testing DOM, slug: features/dom}
    - {label: Test Async Code, slug: features/async-code}
    - {label: Mocking, slug: features/mocking}
    - {label: Spying on Functions, slug: features/spying}
    - {label: Headless Browser, slug: features/browser}

- label: Advanced
  items:
    - {label: Custom Matchers, slug: advanced/custom-matchers}
    - {label: Debug tests, slug: advanced/debug}

- label: Reporting
  items:
    - {label: Overview, slug: reporting/overview}
    - {label: Console Reporter, slug: reporting/console}
    - {label: LCOV Reporter, slug: reporting/lcov}
    - {label: HTML Reporter, slug: reporting/html}
    - {label: JUnit Reporter, slug: reporting/junit}

- label: Testing Frameworks
  items:
    - {label: Metro UI, slug: frameworks/metroui}
    - {label: React, slug: frameworks/react}
    - {label: Vue, slug: frameworks/vue}
    - {label: Angular, slug: frameworks/angular}

- label: Resources
  items:
    - {label: Latte IntelliJ Idea Plugin, link: "https://plugins.jetbrains.com/plugin/27190-latte-test-runner"}
    - {label: Latte Repository, link: "https://github.com/olton/latte"}
    - {label: Docs Repository, link: "https://github.com/olton/latte-docs"}
    - {label: Contributing, link: "https://github.com/olton/latte"}
    - {label: License, link: "https://github.com/olton/latte/blob/master/LICENSE"}
    - {label: Metro UI, link: "https://metroui.org.ua"}
    - {label: Panda Templates, link: "https://panda.metroui.org.ua"}
    - {label: Serhii Pimenov - Author, link: "https://pimenov.com.ua"}
`

// Init writes a docsite.yaml and sidebar.yaml describing the EasyTest
// documentation site into targetDir.
func Init(targetDir string) error {
	sitePath := filepath.Join(targetDir, site.FileName)
	if _, err := os.Stat(sitePath); err == nil {
		return fmt.Errorf("%s already exists in %s", site.FileName, targetDir)
	}
	sidebarPath := filepath.Join(targetDir, SidebarFileName)
	if _, err := os.Stat(sidebarPath); err == nil {
		return fmt.Errorf("%s already exists in %s", SidebarFileName, targetDir)
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", targetDir, err)
	}
	if err := os.WriteFile(sidebarPath, []byte(sidebarTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", SidebarFileName, err)
	}
	if err := os.WriteFile(sitePath, []byte(siteTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", site.FileName, err)
	}

	ux.Success("Initialized documentation site config")
	ux.Heading("  Created:")
	ux.Wrote(site.FileName, "site metadata and theme options")
	ux.Wrote(SidebarFileName, "navigation sidebar")
	ux.Heading("  Next steps:")
	fmt.Fprintf(ux.Stdout, "    1. Edit %s to shape the navigation menu\n", SidebarFileName)
	fmt.Fprintf(ux.Stdout, "    2. Run 'docsite validate' to check it\n")
	fmt.Fprintf(ux.Stdout, "    3. Run 'docsite export --out starlight.json' for the site build\n\n")
	return nil
}
