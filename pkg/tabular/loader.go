package tabular

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadResult is the outcome of loading one file.
type LoadResult struct {
	Path  string
	Table *Table
	Err   error
}

// LoadAll reads paths concurrently with at most workers files in flight.
//
// Results are returned in the order of paths. A failure to read one file is
// stored in its slot and does not stop the others, so callers decide whether
// a bad file skips or aborts the run. Only context cancellation is returned
// as an error.
//
// Parameters:
//   - ctx: Cancellation stops scheduling further reads
//   - paths: Files to read
//   - opts: Read options applied to every file
//   - workers: Concurrency bound; <= 0 means GOMAXPROCS
//
// Returns:
//   - []LoadResult: One result per path, in input order
//   - error: ctx.Err() when cancelled
func LoadAll(ctx context.Context, paths []string, opts ReadOptions, workers int) ([]LoadResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]LoadResult, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := ReadFile(gctx, p, opts)
			results[i].Table = t
			results[i].Err = err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
