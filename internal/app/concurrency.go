package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parallel2 runs fa and fb concurrently. If either fails the other's
// context is canceled and both results are discarded.
func Parallel2[A, B any](
	ctx context.Context,
	fa func(context.Context) (A, error),
	fb func(context.Context) (B, error),
) (A, B, error) {
	var (
		a A
		b B
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a, err = fa(gctx)
		return err
	})
	g.Go(func() (err error) {
		b, err = fb(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zeroA A
			zeroB B
		)

		return zeroA, zeroB, err
	}

	return a, b, nil
}
