// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string
	Name  string
}

// ParseRepoRef parses an "owner/name" string into a RepoRef.
func ParseRepoRef(s string) (RepoRef, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || owner == "" || name == "" {
		return RepoRef{}, fmt.Errorf("invalid repository %q: expected owner/name", s)
	}
	return RepoRef{Owner: owner, Name: name}, nil
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// Repository is a RepoRef resolved against the API: its canonical URL
// and the name of its default branch, which is the sole source for
// commit history collection.
type Repository struct {
	RepoRef
	URL           string
	DefaultBranch string
}

// TimeWindow is the half-open UTC interval [From, To) derived from one
// calendar month.
type TimeWindow struct {
	Month string // "YYYY-MM"
	From  time.Time
	To    time.Time
}

// MonthWindow derives the window for a "YYYY-MM" month string.
func MonthWindow(month string) (TimeWindow, error) {
	from, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("invalid month %q: expected YYYY-MM: %w", month, err)
	}
	return TimeWindow{
		Month: month,
		From:  from,
		To:    from.AddDate(0, 1, 0),
	}, nil
}

// Contains reports whether t falls inside the window. The lower bound
// is inclusive, the upper bound exclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// ContributorStat holds the activity counters for one contributor login.
// All fields only ever increase during a run.
type ContributorStat struct {
	MergedPRs     int `json:"merged_prs"`
	Reviews       int `json:"reviews"`
	Commits       int `json:"commits"`
	IssuesClosed  int `json:"issues_closed"`
	PRComments    int `json:"pr_comments"`
	IssueComments int `json:"issue_comments"`
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
}

// RepoStat holds the repository-level counters for a single processed
// repository. It is built once, after every collector has finished for
// that repository, and never mutated afterward.
type RepoStat struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	MergedPRs    int    `json:"merged_prs"`
	OpenPRs      int    `json:"open_prs"`
	ClosedIssues int    `json:"closed_issues"`
	NewIssues    int    `json:"new_issues"`
}

// Report is the read-only output boundary handed to the renderers:
// the global contributor table, the per-repository contributor tables,
// the repository summary list, and the resolved window. Renderers only
// format this data; they never re-derive or re-filter it.
type Report struct {
	Window  TimeWindow                             `json:"-"`
	Month   string                                 `json:"month"`
	FromISO string                                 `json:"from"`
	ToISO   string                                 `json:"to"`
	Global  map[string]*ContributorStat            `json:"contributors"`
	PerRepo map[string]map[string]*ContributorStat `json:"contributors_by_repo"`
	Repos   []*RepoStat                            `json:"repositories"`
}
