package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typegraph/typegraph/graph"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the process-wide node cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print cache hit/miss/size counters",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(graph.CacheInfoDefault().String())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the cache",
	RunE: func(_ *cobra.Command, _ []string) error {
		graph.CacheClearDefault()
		fmt.Println("cache cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd, cacheClearCmd)
}
