package slack

import (
	"context"

	"github.com/secmon-lab/hermes/pkg/utils/logging"
)

// maxPages stops a remote that never ends its cursor stream
const maxPages = 1000

// pageFunc fetches one page starting at cursor. An empty next cursor means
// there are no more pages.
type pageFunc[T any] func(ctx context.Context, cursor string, pageSize int) (items []T, next string, err error)

// paginate follows cursors until limit items are collected or the remote runs
// out of pages. limit <= 0 collects everything. Every page goes through the
// retrying transport and items keep the order the remote returned them in.
func paginate[T any](ctx context.Context, tr *transport, method string, limit, pageCap int, fetch pageFunc[T]) ([]T, error) {
	var items []T
	var cursor string

	for page := 0; page < maxPages; page++ {
		pageSize := pageCap
		if limit > 0 {
			if remaining := limit - len(items); remaining < pageSize {
				pageSize = remaining
			}
		}

		var got []T
		var next string
		err := tr.call(ctx, method, func(ctx context.Context) error {
			var err error
			got, next, err = fetch(ctx, cursor, pageSize)
			return err
		})
		if err != nil {
			return nil, err
		}

		items = append(items, got...)
		if limit > 0 && len(items) >= limit {
			return items[:limit], nil
		}
		if next == "" {
			return items, nil
		}
		cursor = next
	}

	logging.From(ctx).Warn("pagination stopped at page limit",
		"method", method,
		"pages", maxPages,
		"items", len(items),
	)
	return items, nil
}
