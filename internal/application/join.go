package application

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// join runs reads concurrently and waits for all of them. It returns the
// first error; callers must then discard every result of the batch.
func join(ctx context.Context, reads ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, read := range reads {
		g.Go(func() error {
			return read(gctx)
		})
	}
	return g.Wait()
}
