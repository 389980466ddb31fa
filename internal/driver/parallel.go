package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forEachFile runs fn for every file with at most jobs workers.
// Results are written by index, so fn needs no locking for per-file output.
// fn errors abort the whole run; per-file failures belong in the results.
func forEachFile(ctx context.Context, files []string, jobs int, fn func(ctx context.Context, i int, path string) error) error {
	if len(files) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i, path)
		})
	}
	return g.Wait()
}
