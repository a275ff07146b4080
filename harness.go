package deboiler

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runIndexed applies fn to every index in [0, n) using up to limit
// concurrent goroutines, and returns the results in index order
// regardless of completion order. It stops launching new work and
// returns the first error once either fn or the context fails, mirroring
// the ordered worker-pool pattern a crawl stage uses over a URL list.
func runIndexed[T any](ctx context.Context, n, limit int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if limit <= 0 {
		limit = 1
	}

	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := fn(gctx, i)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
