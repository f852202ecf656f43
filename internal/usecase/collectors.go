package usecase

import (
	"context"
	"log"
	"time"

	"contribstats/internal/domain"
	"contribstats/internal/gateway"
)

// pageSize is the page size for every top-level edge list.
const pageSize = 100

// Collector runs the six metric collection procedures for one
// repository. It holds the pagination capability by interface so tests
// can substitute a fake source, and credits everything it finds to the
// shared tracker.
type Collector struct {
	src     gateway.Source
	tracker *Tracker
	logger  *log.Logger
}

// NewCollector creates a Collector crediting the given tracker.
func NewCollector(src gateway.Source, tracker *Tracker, logger *log.Logger) *Collector {
	return &Collector{
		src:     src,
		tracker: tracker,
		logger:  logger,
	}
}

func repoVars(repo *domain.Repository) map[string]any {
	return map[string]any{
		"owner": repo.Owner,
		"name":  repo.Name,
	}
}

// CollectMergedPRs credits merged pull requests inside the window: the
// PR author gets the merge, additions, and deletions; in-window review
// authors get one review each; and every closing-issue reference whose
// issue author passes the bot filter credits the PR author (not the
// issue's author) with one closed issue.
func (c *Collector) CollectMergedPRs(ctx context.Context, repo *domain.Repository, win domain.TimeWindow) error {
	nodes, err := c.src.Paginate(ctx, gateway.MergedPRsQuery, repoVars(repo), pageSize, "repository.pullRequests")
	if err != nil {
		return err
	}
	repoKey := repo.String()
	for _, pr := range nodes {
		if !win.Contains(nodeTime(pr, "mergedAt")) {
			continue
		}
		c.tracker.CountMergedPR(repoKey)

		author := authorLogin(pr)
		if !IsExcluded(author) {
			c.tracker.Credit(author, MergedPRs, 1, repoKey)
			c.tracker.Credit(author, Additions, nodeInt(pr, "additions"), repoKey)
			c.tracker.Credit(author, Deletions, nodeInt(pr, "deletions"), repoKey)
		}

		for _, review := range subNodes(pr, "reviews") {
			if !win.Contains(nodeTime(review, "submittedAt")) {
				continue
			}
			reviewer := authorLogin(review)
			if !IsExcluded(reviewer) {
				c.tracker.Credit(reviewer, Reviews, 1, repoKey)
			}
		}

		for _, issue := range subNodes(pr, "closingIssuesReferences") {
			if IsExcluded(authorLogin(issue)) {
				continue
			}
			if !IsExcluded(author) {
				c.tracker.Credit(author, IssuesClosed, 1, repoKey)
			}
		}
	}
	c.logger.Printf("  [%s] merged PRs collected", repoKey)
	return nil
}

// CollectOpenPRs counts pull requests created inside the window that
// are still open. Only the repository counter moves; nobody is credited.
func (c *Collector) CollectOpenPRs(ctx context.Context, repo *domain.Repository, win domain.TimeWindow) error {
	nodes, err := c.src.Paginate(ctx, gateway.OpenPRsQuery, repoVars(repo), pageSize, "repository.pullRequests")
	if err != nil {
		return err
	}
	repoKey := repo.String()
	for _, pr := range nodes {
		if nodeString(pr, "state") != "OPEN" {
			continue
		}
		if win.Contains(nodeTime(pr, "createdAt")) {
			c.tracker.CountOpenPR(repoKey)
		}
	}
	c.logger.Printf("  [%s] open PRs collected", repoKey)
	return nil
}

// CollectClosedIssues credits issues closed inside the window to the
// issue author, falling back to the first assignee when the issue has
// no creditable author.
func (c *Collector) CollectClosedIssues(ctx context.Context, repo *domain.Repository, win domain.TimeWindow) error {
	nodes, err := c.src.Paginate(ctx, gateway.ClosedIssuesQuery, repoVars(repo), pageSize, "repository.issues")
	if err != nil {
		return err
	}
	repoKey := repo.String()
	for _, issue := range nodes {
		if !win.Contains(nodeTime(issue, "closedAt")) {
			continue
		}
		c.tracker.CountClosedIssue(repoKey)

		login := authorLogin(issue)
		if IsExcluded(login) {
			login = firstAssignee(issue)
		}
		if !IsExcluded(login) {
			c.tracker.Credit(login, IssuesClosed, 1, repoKey)
		}
	}
	c.logger.Printf("  [%s] closed issues collected", repoKey)
	return nil
}

// CollectNewIssues counts issues created inside the window. Repository
// counter only.
func (c *Collector) CollectNewIssues(ctx context.Context, repo *domain.Repository, win domain.TimeWindow) error {
	nodes, err := c.src.Paginate(ctx, gateway.NewIssuesQuery, repoVars(repo), pageSize, "repository.issues")
	if err != nil {
		return err
	}
	repoKey := repo.String()
	for _, issue := range nodes {
		if win.Contains(nodeTime(issue, "createdAt")) {
			c.tracker.CountNewIssue(repoKey)
		}
	}
	c.logger.Printf("  [%s] new issues collected", repoKey)
	return nil
}

// CollectCommits credits commits on the default branch inside the
// window to their linked account. Commits with no linked account are
// silently uncredited.
func (c *Collector) CollectCommits(ctx context.Context, repo *domain.Repository, win domain.TimeWindow) error {
	vars := repoVars(repo)
	vars["branch"] = repo.DefaultBranch
	nodes, err := c.src.Paginate(ctx, gateway.CommitsQuery, vars, pageSize, "repository.ref.target.history")
	if err != nil {
		return err
	}
	repoKey := repo.String()
	for _, commit := range nodes {
		if !win.Contains(nodeTime(commit, "committedDate")) {
			continue
		}
		login := commitLogin(commit)
		if !IsExcluded(login) {
			c.tracker.Credit(login, Commits, 1, repoKey)
		}
	}
	c.logger.Printf("  [%s] commits collected", repoKey)
	return nil
}

// CollectPRComments credits pull request comments created inside the
// window, covering both top-level discussion comments and inline
// review-thread comments.
func (c *Collector) CollectPRComments(ctx context.Context, repo *domain.Repository, win domain.TimeWindow) error {
	nodes, err := c.src.Paginate(ctx, gateway.PRCommentsQuery, repoVars(repo), pageSize, "repository.pullRequests")
	if err != nil {
		return err
	}
	repoKey := repo.String()
	for _, pr := range nodes {
		for _, comment := range subNodes(pr, "comments") {
			c.creditComment(comment, PRComments, win, repoKey)
		}
		for _, thread := range subNodes(pr, "reviewThreads") {
			for _, comment := range subNodes(thread, "comments") {
				c.creditComment(comment, PRComments, win, repoKey)
			}
		}
	}
	c.logger.Printf("  [%s] PR comments collected", repoKey)
	return nil
}

// CollectIssueComments credits issue comments created inside the window.
func (c *Collector) CollectIssueComments(ctx context.Context, repo *domain.Repository, win domain.TimeWindow) error {
	nodes, err := c.src.Paginate(ctx, gateway.IssueCommentsQuery, repoVars(repo), pageSize, "repository.issues")
	if err != nil {
		return err
	}
	repoKey := repo.String()
	for _, issue := range nodes {
		for _, comment := range subNodes(issue, "comments") {
			c.creditComment(comment, IssueComments, win, repoKey)
		}
	}
	c.logger.Printf("  [%s] issue comments collected", repoKey)
	return nil
}

func (c *Collector) creditComment(comment map[string]any, field Field, win domain.TimeWindow, repoKey string) {
	if !win.Contains(nodeTime(comment, "createdAt")) {
		return
	}
	login := authorLogin(comment)
	if !IsExcluded(login) {
		c.tracker.Credit(login, field, 1, repoKey)
	}
}

// Node access helpers. GraphQL responses arrive as generic maps; a
// missing or mistyped field reads as the zero value, which downstream
// checks (window, bot filter) then reject.

func nodeString(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

func nodeInt(node map[string]any, key string) int {
	f, _ := node[key].(float64)
	return int(f)
}

func nodeTime(node map[string]any, key string) time.Time {
	t, err := time.Parse(time.RFC3339, nodeString(node, key))
	if err != nil {
		return time.Time{}
	}
	return t
}

func authorLogin(node map[string]any) string {
	author, _ := node["author"].(map[string]any)
	if author == nil {
		return ""
	}
	return nodeString(author, "login")
}

func commitLogin(commit map[string]any) string {
	author, _ := commit["author"].(map[string]any)
	if author == nil {
		return ""
	}
	user, _ := author["user"].(map[string]any)
	if user == nil {
		return ""
	}
	return nodeString(user, "login")
}

func firstAssignee(issue map[string]any) string {
	assignees := subNodes(issue, "assignees")
	if len(assignees) == 0 {
		return ""
	}
	return nodeString(assignees[0], "login")
}

// subNodes returns the "nodes" list of a nested connection field.
func subNodes(node map[string]any, key string) []map[string]any {
	conn, _ := node[key].(map[string]any)
	if conn == nil {
		return nil
	}
	raw, _ := conn["nodes"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, n := range raw {
		if m, ok := n.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
