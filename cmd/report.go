package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"contribstats/internal/config"
	"contribstats/internal/domain"
	"contribstats/internal/gateway"
	"contribstats/internal/report"
	"contribstats/internal/usecase"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Collects one month of activity and writes the report files",
	Long: `Collects merged PRs, open PRs, issues, commits, and comments for the
given repositories over one calendar month, and writes <out>.csv,
<out>.json, and <out>.md.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		repoList, _ := cmd.Flags().GetStringSlice("repos")
		month, _ := cmd.Flags().GetString("month")
		outPrefix, _ := cmd.Flags().GetString("out")

		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		win, err := domain.MonthWindow(month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		refs := make([]domain.RepoRef, 0, len(repoList))
		for _, s := range repoList {
			ref, err := domain.ParseRepoRef(s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			refs = append(refs, ref)
		}

		// Inject dependencies and run the main business logic.
		resolver, err := gateway.NewRESTResolver(cfg.GitHubToken, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub client: %v\n", err)
			os.Exit(1)
		}
		client := gateway.NewClient(cfg.GraphQLEndpoint(), cfg.GitHubToken, logger)
		runner := usecase.NewRunner(resolver, client, logger)

		rep, err := runner.Run(ctx, refs, win)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to collect stats: %v\n", err)
			os.Exit(1)
		}

		if err := report.WriteAll(rep, outPrefix); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write reports: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s.csv, %s.json, %s.md\n", outPrefix, outPrefix, outPrefix)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringSlice("repos", nil, "Repositories to process, as owner/name (required)")
	reportCmd.Flags().String("month", "", "Target calendar month, YYYY-MM (required)")
	reportCmd.Flags().String("out", "report", "Output file prefix")
	reportCmd.MarkFlagRequired("repos")
	reportCmd.MarkFlagRequired("month")
}
