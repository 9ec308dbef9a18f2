package extract

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/reviewlens/revlens"
)

// DefaultConcurrency bounds concurrent extraction passes in a batch run.
const DefaultConcurrency = 4

// Progress reports per-URL completion during a batch run.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as URLs complete, successfully or not.
type ProgressFunc func(Progress)

// Runner extracts many URLs concurrently. Individual URL failures are
// reported through the progress callback and skipped; only context
// cancellation aborts the run.
type Runner struct {
	Extractor   *Extractor
	Limiter     *DomainLimiter
	Concurrency int
}

// Run extracts every URL and returns the successful extractions in input
// order.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) ([]*revlens.Extraction, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*revlens.Extraction, len(urls))
	var mu sync.Mutex
	completed := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			if r.Limiter != nil {
				if err := r.Limiter.Wait(ctx, domainOf(u)); err != nil {
					return err
				}
			}

			extraction, err := r.Extractor.Extract(ctx, u)

			mu.Lock()
			completed++
			done := completed
			mu.Unlock()

			if progress != nil {
				progress(Progress{URL: u, Completed: done, Total: len(urls), Err: err})
			}
			if err != nil {
				// Best effort: the failure was reported via progress.
				return nil
			}

			results[i] = extraction
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	extractions := make([]*revlens.Extraction, 0, len(results))
	for _, e := range results {
		if e != nil {
			extractions = append(extractions, e)
		}
	}
	return extractions, nil
}

// domainOf returns the host of a URL for rate limiting, falling back to the
// raw string when it cannot be parsed.
func domainOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
