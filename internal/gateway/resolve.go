package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"contribstats/internal/domain"
)

// ErrRepositoryNotFound marks a repository that does not exist or is
// not accessible with the configured token. Callers skip the repository
// and keep going.
var ErrRepositoryNotFound = errors.New("repository not found")

// Resolver looks up repository metadata once per run.
type Resolver interface {
	Resolve(ctx context.Context, ref domain.RepoRef) (*domain.Repository, error)
}

// RESTResolver resolves repositories through the GitHub REST API.
type RESTResolver struct {
	client *github.Client
	logger *log.Logger
}

// NewRESTResolver builds a resolver whose HTTP transport waits out
// secondary rate limits before retrying.
func NewRESTResolver(token string, logger *log.Logger) (*RESTResolver, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &RESTResolver{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// Resolve fetches the repository's URL and default branch name.
func (r *RESTResolver) Resolve(ctx context.Context, ref domain.RepoRef) (*domain.Repository, error) {
	repo, resp, err := r.client.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%s: %w", ref, ErrRepositoryNotFound)
		}
		return nil, fmt.Errorf("failed to resolve repository %s: %w", ref, err)
	}
	r.logger.Printf("Resolved %s (default branch %s)", ref, repo.GetDefaultBranch())
	return &domain.Repository{
		RepoRef:       ref,
		URL:           repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
	}, nil
}
