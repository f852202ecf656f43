package usecase

import (
	"contribstats/internal/domain"
)

// Field names one counter of a ContributorStat.
type Field int

const (
	MergedPRs Field = iota
	Reviews
	Commits
	IssuesClosed
	PRComments
	IssueComments
	Additions
	Deletions
)

// Tracker owns the attribution tables the collectors credit: one global
// contributor table, one contributor table per repository, and the
// repository-level counters. Its lifetime is one run; it is passed by
// reference into every collector call and mutated only by the single
// sequential control path, so it needs no locking.
type Tracker struct {
	global   map[string]*domain.ContributorStat
	perRepo  map[string]map[string]*domain.ContributorStat
	counters map[string]*repoCounters
}

type repoCounters struct {
	mergedPRs    int
	openPRs      int
	closedIssues int
	newIssues    int
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		global:   make(map[string]*domain.ContributorStat),
		perRepo:  make(map[string]map[string]*domain.ContributorStat),
		counters: make(map[string]*repoCounters),
	}
}

// Credit adds amount to one field of the login's stat, in the global
// table and, when repo is non-empty, in that repository's table. Both
// entries are zero-initialized on first reference, so for every field
// the global value always equals the sum of the per-repository values.
// Callers gate on IsExcluded first; the tracker itself accepts any login.
func (t *Tracker) Credit(login string, field Field, amount int, repo string) {
	add(ensure(t.global, login), field, amount)
	if repo != "" {
		table, ok := t.perRepo[repo]
		if !ok {
			table = make(map[string]*domain.ContributorStat)
			t.perRepo[repo] = table
		}
		add(ensure(table, login), field, amount)
	}
}

func ensure(table map[string]*domain.ContributorStat, login string) *domain.ContributorStat {
	stat, ok := table[login]
	if !ok {
		stat = &domain.ContributorStat{}
		table[login] = stat
	}
	return stat
}

func add(stat *domain.ContributorStat, field Field, amount int) {
	switch field {
	case MergedPRs:
		stat.MergedPRs += amount
	case Reviews:
		stat.Reviews += amount
	case Commits:
		stat.Commits += amount
	case IssuesClosed:
		stat.IssuesClosed += amount
	case PRComments:
		stat.PRComments += amount
	case IssueComments:
		stat.IssueComments += amount
	case Additions:
		stat.Additions += amount
	case Deletions:
		stat.Deletions += amount
	}
}

// CountMergedPR increments the repository-level merged PR counter.
// Repository counters are independent of contributor credit: a merged
// PR by a bot still counts for the repository.
func (t *Tracker) CountMergedPR(repo string) { t.repoCounters(repo).mergedPRs++ }

// CountOpenPR increments the repository-level open PR counter.
func (t *Tracker) CountOpenPR(repo string) { t.repoCounters(repo).openPRs++ }

// CountClosedIssue increments the repository-level closed issue counter.
func (t *Tracker) CountClosedIssue(repo string) { t.repoCounters(repo).closedIssues++ }

// CountNewIssue increments the repository-level new issue counter.
func (t *Tracker) CountNewIssue(repo string) { t.repoCounters(repo).newIssues++ }

func (t *Tracker) repoCounters(repo string) *repoCounters {
	c, ok := t.counters[repo]
	if !ok {
		c = &repoCounters{}
		t.counters[repo] = c
	}
	return c
}

// RepoStat builds the immutable per-repository summary once every
// collector has finished for that repository.
func (t *Tracker) RepoStat(repo *domain.Repository) *domain.RepoStat {
	c := t.repoCounters(repo.String())
	return &domain.RepoStat{
		Name:         repo.String(),
		URL:          repo.URL,
		MergedPRs:    c.mergedPRs,
		OpenPRs:      c.openPRs,
		ClosedIssues: c.closedIssues,
		NewIssues:    c.newIssues,
	}
}

// Global returns the global contributor table.
func (t *Tracker) Global() map[string]*domain.ContributorStat { return t.global }

// PerRepo returns the per-repository contributor tables.
func (t *Tracker) PerRepo() map[string]map[string]*domain.ContributorStat { return t.perRepo }
