package commands

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

var errBoom = errors.New("boom")

func TestFetchAll_KeepsOrder(t *testing.T) {
	t.Parallel()

	ids := []int64{5, 1, 4, 2, 3}

	results, err := fetchAll(context.Background(), ids, func(_ context.Context, id int64) (int64, error) {
		time.Sleep(time.Duration(id) * time.Millisecond)

		return id * 10, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{50, 10, 40, 20, 30}, results)
}

func TestFetchAll_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32

	ids := make([]int64, 3*constants.MaxConcurrentRequests)
	for i := range ids {
		ids[i] = int64(i + 1)
	}

	_, err := fetchAll(context.Background(), ids, func(_ context.Context, id int64) (int64, error) {
		current := running.Add(1)
		defer running.Add(-1)

		for {
			seen := peak.Load()
			if current <= seen || peak.CompareAndSwap(seen, current) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)

		return id, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(constants.MaxConcurrentRequests))
}

func TestFetchAll_ReturnsFirstError(t *testing.T) {
	t.Parallel()

	results, err := fetchAll(context.Background(), []int64{1, 2, 3}, func(_ context.Context, id int64) (string, error) {
		if id == 2 {
			return "", errBoom
		}

		return "ok", nil
	})
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "ID 2")
	assert.Nil(t, results)
}

func TestParseIDs(t *testing.T) {
	t.Parallel()

	ids, err := parseIDs([]string{"7", "8"})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, ids)

	_, err = parseIDs([]string{"7", "x"})
	require.ErrorIs(t, err, constants.ErrInvalidID)
}
