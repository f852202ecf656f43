package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"contribstats/internal/domain"
)

// WriteMarkdown saves the narrative report: a window summary, the
// repository activity table, the ranked contributor table, and a few
// distribution figures.
func WriteMarkdown(rep *domain.Report, filename string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Contribution Report %s\n\n", rep.Month)
	fmt.Fprintf(&b, "Window: `%s` to `%s` (exclusive).\n\n", rep.FromISO, rep.ToISO)

	b.WriteString("## Repositories\n\n")
	if len(rep.Repos) == 0 {
		b.WriteString("No repositories were processed.\n\n")
	} else {
		table := markdownTable(&b, []string{"Repository", "Merged PRs", "Open PRs", "Closed Issues", "New Issues"})
		for _, r := range rep.Repos {
			table.Append([]string{
				r.Name,
				strconv.Itoa(r.MergedPRs),
				strconv.Itoa(r.OpenPRs),
				strconv.Itoa(r.ClosedIssues),
				strconv.Itoa(r.NewIssues),
			})
		}
		table.Render()
		b.WriteString("\n")
	}

	b.WriteString("## Contributors\n\n")
	ranked := Rank(rep.Global)
	if len(ranked) == 0 {
		b.WriteString("No contributor activity in this window.\n\n")
	} else {
		table := markdownTable(&b, []string{"Login", "Merged PRs", "Reviews", "Commits", "Issues Closed", "PR Comments", "Issue Comments", "+/-"})
		for _, c := range ranked {
			table.Append([]string{
				c.Login,
				strconv.Itoa(c.Stat.MergedPRs),
				strconv.Itoa(c.Stat.Reviews),
				strconv.Itoa(c.Stat.Commits),
				strconv.Itoa(c.Stat.IssuesClosed),
				strconv.Itoa(c.Stat.PRComments),
				strconv.Itoa(c.Stat.IssueComments),
				fmt.Sprintf("+%d/-%d", c.Stat.Additions, c.Stat.Deletions),
			})
		}
		table.Render()
		b.WriteString("\n")
		writeSummary(&b, ranked)
	}

	return os.WriteFile(filename, []byte(b.String()), 0644)
}

// writeSummary adds distribution figures over the contributor table.
func writeSummary(b *strings.Builder, ranked []RankedContributor) {
	merged := make([]float64, 0, len(ranked))
	commits := make([]float64, 0, len(ranked))
	for _, c := range ranked {
		merged = append(merged, float64(c.Stat.MergedPRs))
		commits = append(commits, float64(c.Stat.Commits))
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(b, "- Contributors: %d\n", len(ranked))
	if mean, err := stats.Mean(merged); err == nil {
		fmt.Fprintf(b, "- Merged PRs per contributor (mean): %.2f\n", mean)
	}
	if median, err := stats.Median(merged); err == nil {
		fmt.Fprintf(b, "- Merged PRs per contributor (median): %.1f\n", median)
	}
	if mean, err := stats.Mean(commits); err == nil {
		fmt.Fprintf(b, "- Commits per contributor (mean): %.2f\n", mean)
	}
	if sum, err := stats.Sum(commits); err == nil {
		fmt.Fprintf(b, "- Commits total: %.0f\n", sum)
	}
	b.WriteString("\n")
}

// markdownTable configures a tablewriter for GitHub-flavored markdown.
func markdownTable(b *strings.Builder, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(b)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}
