package commands

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

// fetchAll calls fetch once per ID with bounded concurrency. Results keep the
// order of ids; the first failure cancels the calls still in flight.
func fetchAll[T any](ctx context.Context, ids []int64, fetch func(context.Context, int64) (T, error)) ([]T, error) {
	results := make([]T, len(ids))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(constants.MaxConcurrentRequests)

	for i, id := range ids {
		group.Go(func() error {
			result, err := fetch(ctx, id)
			if err != nil {
				return fmt.Errorf("ID %d: %w", id, err)
			}

			results[i] = result

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))

	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}
