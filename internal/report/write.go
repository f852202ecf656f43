package report

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"contribstats/internal/domain"
)

// WriteAll writes the three report files next to each other:
// prefix.csv, prefix.json, and prefix.md. The parent directory is
// created if missing. The writers only read the report, so they run
// concurrently; collection itself stays sequential.
func WriteAll(rep *domain.Report, prefix string) error {
	if dir := filepath.Dir(prefix); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var eg errgroup.Group
	eg.Go(func() error { return WriteCSV(rep, prefix+".csv") })
	eg.Go(func() error { return WriteJSON(rep, prefix+".json") })
	eg.Go(func() error { return WriteMarkdown(rep, prefix+".md") })
	return eg.Wait()
}
