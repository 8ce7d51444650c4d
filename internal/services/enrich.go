package services

import (
	"context"

	"rideadmin/internal/utils"

	"golang.org/x/sync/errgroup"
)

// enrichAll applies fn to every item with bounded concurrency and keeps input order.
func enrichAll[T, R any](ctx context.Context, items []T, fn func(context.Context, T) R) []R {
	out := make([]R, len(items))

	var g errgroup.Group
	g.SetLimit(utils.MaxConcurrentEnrichment)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			out[i] = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
