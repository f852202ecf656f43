package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"contribstats/internal/domain"
	"contribstats/internal/gateway"
)

// Runner processes repositories one at a time, running the metric
// collectors in a fixed sequence for each. Collection is deliberately
// fully sequential to stay inside API rate limits; the only suspension
// point is the rate-limit backoff inside the query client.
type Runner struct {
	resolver gateway.Resolver
	src      gateway.Source
	logger   *log.Logger
}

// NewRunner creates a Runner with its collaborators injected.
func NewRunner(resolver gateway.Resolver, src gateway.Source, logger *log.Logger) *Runner {
	return &Runner{
		resolver: resolver,
		src:      src,
		logger:   logger,
	}
}

// Run collects every repository in order and returns the aggregated
// report. An unresolvable repository is skipped with a diagnostic and
// contributes nothing to any table; any other error aborts the run.
func (r *Runner) Run(ctx context.Context, refs []domain.RepoRef, win domain.TimeWindow) (*domain.Report, error) {
	tracker := NewTracker()
	collector := NewCollector(r.src, tracker, r.logger)
	repoStats := make([]*domain.RepoStat, 0, len(refs))

	for _, ref := range refs {
		repo, err := r.resolver.Resolve(ctx, ref)
		if err != nil {
			if errors.Is(err, gateway.ErrRepositoryNotFound) {
				r.logger.Printf("Skipping %s: %v", ref, err)
				continue
			}
			return nil, err
		}

		r.logger.Printf("Collecting %s for %s...", repo, win.Month)
		steps := []func(context.Context, *domain.Repository, domain.TimeWindow) error{
			collector.CollectMergedPRs,
			collector.CollectOpenPRs,
			collector.CollectClosedIssues,
			collector.CollectNewIssues,
			collector.CollectCommits,
			collector.CollectPRComments,
			collector.CollectIssueComments,
		}
		for _, step := range steps {
			if err := step(ctx, repo, win); err != nil {
				return nil, err
			}
		}

		repoStats = append(repoStats, tracker.RepoStat(repo))
	}

	return &domain.Report{
		Window:  win,
		Month:   win.Month,
		FromISO: win.From.Format(time.RFC3339),
		ToISO:   win.To.Format(time.RFC3339),
		Global:  tracker.Global(),
		PerRepo: tracker.PerRepo(),
		Repos:   repoStats,
	}, nil
}
