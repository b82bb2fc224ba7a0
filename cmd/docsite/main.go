package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/olton/easytest-doc/internal/docs"
	"github.com/olton/easytest-doc/internal/scaffold"
	"github.com/olton/easytest-doc/internal/sidebar"
	"github.com/olton/easytest-doc/internal/site"
	"github.com/olton/easytest-doc/internal/ux"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		var errs sidebar.ValidationErrors
		if errors.As(err, &errs) {
			ux.Diagnostics(ux.Stderr, errs)
		} else {
			ux.Fail(err)
		}
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "docsite",
		Usage:       "Validate and export documentation site configuration",
		Description: "Run 'docsite docs' for documentation on the site file, the sidebar format, and validation rules.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to " + site.FileName + " (default: search upward from cwd)",
				Sources: cli.EnvVars("DOCSITE_CONFIG"),
			},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("no-color") {
				ux.DisableColor()
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			initCmd(),
			validateCmd(),
			exportCmd(),
			treeCmd(),
			sitemapCmd(),
			docsCmd(),
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create docsite.yaml and sidebar.yaml for a new site",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}
			return scaffold.Init(dir)
		},
	}
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check the site file and sidebar, reporting every problem",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			n := 0
			for range sidebar.Flatten(cfg.Sidebar()) {
				n++
			}
			for p, node := range sidebar.Walk(cfg.Sidebar()) {
				if g, ok := node.(*sidebar.Group); ok && g.Len() == 0 {
					ux.Warn("%s (%s) has no entries yet", p, p.Labels())
				}
			}
			ux.Success("%s is valid (%d groups, %d entries)", path, cfg.Sidebar().Len(), n)
			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the validated configuration for the site generator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: site.FormatJSON, Usage: "json, yaml, or mjs"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format := cmd.String("format")
			out := cmd.String("out")
			if out == "" {
				return site.Encode(os.Stdout, cfg, format)
			}
			if err := site.Export(cfg, out, format); err != nil {
				return fmt.Errorf("exporting %s: %w", out, err)
			}
			ux.Success("Exported configuration")
			ux.Wrote(out, format)
			return nil
		},
	}
}

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Print the navigation tree",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ux.RenderTree(ux.Stdout, cfg.Sidebar())
			return nil
		},
	}
}

func sitemapCmd() *cli.Command {
	return &cli.Command{
		Name:  "sitemap",
		Usage: "List every sidebar entry with its stable page ID",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "text, json, or yaml"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			pages := site.Manifest(cfg)
			switch f := cmd.String("format"); f {
			case "text":
				ux.RenderManifest(ux.Stdout, pages)
				return nil
			case site.FormatJSON:
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(pages)
			case site.FormatYAML:
				enc := yaml.NewEncoder(os.Stdout)
				enc.SetIndent(2)
				if err := enc.Encode(pages); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown sitemap format %q (must be text, json, or yaml)", f)
			}
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'docsite docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// loadConfig loads the site file named by --config, or the one found by
// walking up from the working directory.
func loadConfig(cmd *cli.Command) (*site.SiteConfig, string, error) {
	path := cmd.String("config")
	if path == "" {
		root, err := findProjectRoot()
		if err != nil {
			return nil, "", err
		}
		path = filepath.Join(root, site.FileName)
	}
	cfg, err := site.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// findProjectRoot walks up from cwd looking for docsite.yaml.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, site.FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found (searched from cwd to root)", site.FileName)
		}
		dir = parent
	}
}
