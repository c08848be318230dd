package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typegraph/typegraph/graph"
	"github.com/typegraph/typegraph/internal/adapter"
)

var inspectName string

var inspectCmd = &cobra.Command{
	Use:   "inspect [import-path]",
	Short: "Build the node graph for a package, or one named symbol in it",
	Long: `Load the Go package at the given import path and build typegraph's
node graph for it. If import-path is omitted, the packages glob patterns
in the --config file's "packages" list are expanded and every matching
package is inspected instead.

Examples:
  # Inspect every exported symbol in a package
  typegraph inspect ./models

  # Inspect a single exported type
  typegraph inspect ./models --name User

  # Inspect every package the config's "packages" globs match
  typegraph inspect --config typegraph.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectName, "name", "", "inspect only this exported symbol")
}

func loadConfig() (*graph.Config, error) {
	if configPath == "" {
		return graph.NewConfig(), nil
	}
	return graph.LoadConfig(configPath)
}

func runInspect(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var importPaths []string
	if len(args) == 1 {
		importPaths = []string{args[0]}
	} else {
		importPaths, err = cfg.ExpandPackages(".")
		if err != nil {
			return fmt.Errorf("expand packages: %w", err)
		}
		if len(importPaths) == 0 {
			return fmt.Errorf("no import-path given and config has no packages globs to expand")
		}
	}

	eng := adapter.NewEngine(".", cfg, nil)
	if err := eng.Load(importPaths...); err != nil {
		return fmt.Errorf("load packages %v: %w", importPaths, err)
	}

	if inspectName != "" {
		if len(importPaths) != 1 {
			return fmt.Errorf("--name requires exactly one package, got %d", len(importPaths))
		}
		node, err := eng.InspectName(importPaths[0], inspectName)
		if err != nil {
			return fmt.Errorf("inspect %s.%s: %w", importPaths[0], inspectName, err)
		}
		return printJSON(node)
	}

	if len(importPaths) == 1 {
		members, err := eng.InspectPackage(importPaths[0])
		if err != nil {
			return fmt.Errorf("inspect package %s: %w", importPaths[0], err)
		}
		return printJSON(members)
	}

	result := make(map[string][]graph.ModuleMember, len(importPaths))
	for _, importPath := range importPaths {
		members, err := eng.InspectPackage(importPath)
		if err != nil {
			return fmt.Errorf("inspect package %s: %w", importPath, err)
		}
		result[importPath] = members
	}
	return printJSON(result)
}

func printJSON(v any) error {
	enc := json.NewEncoder(rootCmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
