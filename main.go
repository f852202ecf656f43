// contribstats collects per-repository and per-contributor activity
// counters from the GitHub API for one calendar month and writes
// CSV, JSON, and Markdown reports.
package main

import (
	"contribstats/cmd"
)

func main() {
	cmd.Execute()
}
