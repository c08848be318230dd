// Package main provides typegraph, a thin CLI over internal/adapter.Engine:
// load a Go package, build its node graph, and print it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typegraph/typegraph/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "typegraph",
	Short:   "Introspect Go types into typegraph's node graph",
	Version: version.Get(),
	Long: `typegraph loads Go packages with go/types and builds an immutable,
cached node graph over their type declarations, using go/types as the
reflection adapter.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a typegraph config YAML file")
}
