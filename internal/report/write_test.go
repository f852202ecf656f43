package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contribstats/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		Month:   "2024-01",
		FromISO: "2024-01-01T00:00:00Z",
		ToISO:   "2024-02-01T00:00:00Z",
		Global: map[string]*domain.ContributorStat{
			"alice": {MergedPRs: 3, Commits: 10, Additions: 200, Deletions: 50},
			"bob":   {MergedPRs: 1, Reviews: 4, IssueComments: 2},
		},
		PerRepo: map[string]map[string]*domain.ContributorStat{
			"org/repo": {
				"alice": {MergedPRs: 3, Commits: 10, Additions: 200, Deletions: 50},
				"bob":   {MergedPRs: 1, Reviews: 4, IssueComments: 2},
			},
		},
		Repos: []*domain.RepoStat{
			{Name: "org/repo", URL: "https://github.com/org/repo", MergedPRs: 4, OpenPRs: 2, ClosedIssues: 1, NewIssues: 6},
		},
	}
}

// TestWriteAll writes the three files into a fresh directory and spot
// checks each format.
func TestWriteAll(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "out", "2024-01")

	err := WriteAll(sampleReport(), prefix)
	require.NoError(t, err)

	t.Run("csv is ranked with a header row", func(t *testing.T) {
		data, err := os.ReadFile(prefix + ".csv")
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "login,merged_prs,reviews,commits")
		assert.Contains(t, content, "alice,3,0,10,0,0,0,200,50")
		// alice outranks bob on merged PRs
		assert.Less(t, strings.Index(content, "alice"), strings.Index(content, "bob"))
	})

	t.Run("json round-trips the report", func(t *testing.T) {
		data, err := os.ReadFile(prefix + ".json")
		require.NoError(t, err)
		var decoded domain.Report
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "2024-01", decoded.Month)
		assert.Equal(t, 3, decoded.Global["alice"].MergedPRs)
		require.Len(t, decoded.Repos, 1)
		assert.Equal(t, 6, decoded.Repos[0].NewIssues)
	})

	t.Run("markdown carries the narrative sections", func(t *testing.T) {
		data, err := os.ReadFile(prefix + ".md")
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "# Contribution Report 2024-01")
		assert.Contains(t, content, "## Repositories")
		assert.Contains(t, content, "## Contributors")
		assert.Contains(t, content, "## Summary")
		assert.Contains(t, content, "org/repo")
		assert.Contains(t, content, "alice")
		assert.Contains(t, content, "+200/-50")
	})
}

func TestWriteMarkdown_EmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.md")
	rep := &domain.Report{
		Month:   "2024-03",
		Global:  map[string]*domain.ContributorStat{},
		PerRepo: map[string]map[string]*domain.ContributorStat{},
	}

	require.NoError(t, WriteMarkdown(rep, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No repositories were processed.")
	assert.Contains(t, string(data), "No contributor activity in this window.")
}
