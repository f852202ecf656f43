package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"contribstats/internal/domain"
)

// WriteCSV saves the ranked contributor table to a CSV file.
func WriteCSV(rep *domain.Report, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{
		"login", "merged_prs", "reviews", "commits", "issues_closed",
		"pr_comments", "issue_comments", "additions", "deletions",
	}); err != nil {
		return err
	}

	for _, c := range Rank(rep.Global) {
		row := []string{
			c.Login,
			strconv.Itoa(c.Stat.MergedPRs),
			strconv.Itoa(c.Stat.Reviews),
			strconv.Itoa(c.Stat.Commits),
			strconv.Itoa(c.Stat.IssuesClosed),
			strconv.Itoa(c.Stat.PRComments),
			strconv.Itoa(c.Stat.IssueComments),
			strconv.Itoa(c.Stat.Additions),
			strconv.Itoa(c.Stat.Deletions),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
