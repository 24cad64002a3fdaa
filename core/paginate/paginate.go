package paginate

import (
	"context"
	"fmt"
)

// DefaultPageSize is the number of entries requested per page.
const DefaultPageSize = 100

// PageFunc fetches a single page. Pages are numbered from 1.
type PageFunc[T any] func(ctx context.Context, page, perPage int) ([]T, error)

// FetchAll requests pages until a short or empty page is returned and
// concatenates them in arrival order. Any page failure aborts the fetch and
// nothing accumulated so far is returned.
func FetchAll[T any](ctx context.Context, label string, perPage int, fetch PageFunc[T]) ([]T, error) {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}

	var all []T
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to fetch all %s: %w", label, err)
		}

		entries, err := fetch(ctx, page, perPage)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch all %s: failed to get page %d: %w", label, page, err)
		}

		all = append(all, entries...)
		if len(entries) < perPage {
			break
		}
	}

	if all == nil {
		all = []T{}
	}
	return all, nil
}
