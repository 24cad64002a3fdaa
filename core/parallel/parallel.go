// Package parallel runs an operation over a slice with a cap on how many
// calls are in flight at once.
//
// Both helpers fail fast: after the first failure no new call is started,
// calls already running are left to finish, and the first error is returned
// prefixed with the key of the element that produced it. No partial results
// are returned on failure.
package parallel

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the concurrency used when a non-positive limit is given.
const DefaultLimit = 5

// KeyFunc names an element in error messages.
type KeyFunc[T any] func(T) string

// MapLimit applies op to every item with at most limit calls in flight and
// returns the results in input order.
func MapLimit[T, R any](ctx context.Context, items []T, limit int, key KeyFunc[T], op func(context.Context, T) (R, error)) ([]R, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]R, len(items))

	var (
		g      errgroup.Group
		failed atomic.Bool
	)
	g.SetLimit(limit)

	for i, item := range items {
		if failed.Load() {
			break
		}

		// Go blocks while limit calls are running.
		g.Go(func() error {
			if failed.Load() {
				return nil
			}

			r, err := op(ctx, item)
			if err != nil {
				failed.Store(true)
				return fmt.Errorf("%s: %w", key(item), err)
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// EachLimit is MapLimit for operations without a result.
func EachLimit[T any](ctx context.Context, items []T, limit int, key KeyFunc[T], op func(context.Context, T) error) error {
	_, err := MapLimit(ctx, items, limit, key, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, op(ctx, item)
	})
	return err
}
