// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contribstats",
	Short: "A CLI tool to collect monthly GitHub contribution stats.",
	Long: `contribstats collects per-repository and per-contributor activity
(merged PRs, reviews, commits, issues, comments) from the GitHub API for
one calendar month across a list of repositories, and writes CSV, JSON,
and Markdown reports.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
