package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contribstats/internal/domain"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		name     string
		table    map[string]*domain.ContributorStat
		expected []string
	}{
		{
			name: "merged PRs descending, ties broken by commits descending",
			table: map[string]*domain.ContributorStat{
				"A": {MergedPRs: 5, Commits: 2},
				"B": {MergedPRs: 5, Commits: 8},
				"C": {MergedPRs: 3, Commits: 20},
			},
			expected: []string{"B", "A", "C"},
		},
		{
			name: "full tie falls back to login order",
			table: map[string]*domain.ContributorStat{
				"zed":   {MergedPRs: 1, Commits: 1},
				"alice": {MergedPRs: 1, Commits: 1},
			},
			expected: []string{"alice", "zed"},
		},
		{
			name:     "empty table",
			table:    map[string]*domain.ContributorStat{},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := Rank(tc.table)
			logins := make([]string, 0, len(ranked))
			for _, c := range ranked {
				logins = append(logins, c.Login)
			}
			assert.Equal(t, tc.expected, logins)
		})
	}
}

func TestRank_KeepsStatPointers(t *testing.T) {
	stat := &domain.ContributorStat{MergedPRs: 2}
	ranked := Rank(map[string]*domain.ContributorStat{"alice": stat})

	require.Len(t, ranked, 1)
	assert.Same(t, stat, ranked[0].Stat)
}
