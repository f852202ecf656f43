// Package report renders the aggregated result into the three output
// documents: a CSV table, a JSON document, and a Markdown narrative.
// Renderers only format the data they are handed; they never re-filter
// or re-derive it.
package report

import (
	"sort"

	"contribstats/internal/domain"
)

// RankedContributor pairs a login with its stat for ordered output.
type RankedContributor struct {
	Login string
	Stat  *domain.ContributorStat
}

// Rank orders contributors by merged PRs descending, breaking ties by
// commits descending and finally by login for a deterministic order.
func Rank(table map[string]*domain.ContributorStat) []RankedContributor {
	ranked := make([]RankedContributor, 0, len(table))
	for login, stat := range table {
		ranked = append(ranked, RankedContributor{Login: login, Stat: stat})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Stat.MergedPRs != b.Stat.MergedPRs {
			return a.Stat.MergedPRs > b.Stat.MergedPRs
		}
		if a.Stat.Commits != b.Stat.Commits {
			return a.Stat.Commits > b.Stat.Commits
		}
		return a.Login < b.Login
	})
	return ranked
}
