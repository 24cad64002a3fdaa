package paginate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listing serves a fixed slice of ints page by page and records the calls.
type listing struct {
	data   []int
	failOn int
	calls  []int
}

func (l *listing) fetch(_ context.Context, page, perPage int) ([]int, error) {
	l.calls = append(l.calls, page)
	if page == l.failOn {
		return nil, errors.New("boom")
	}
	start := (page - 1) * perPage
	if start >= len(l.data) {
		return []int{}, nil
	}
	end := start + perPage
	if end > len(l.data) {
		end = len(l.data)
	}
	return l.data[start:end], nil
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestFetchAll_Termination(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		perPage   int
		wantCalls []int
	}{
		{"Empty", 0, 100, []int{1}},
		{"SinglePartialPage", 42, 100, []int{1}},
		{"ThreePages", 250, 100, []int{1, 2, 3}},
		{"ExactMultiple", 200, 100, []int{1, 2, 3}},
		{"SmallPages", 7, 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &listing{data: seq(tt.total)}

			got, err := FetchAll(context.Background(), "numbers", tt.perPage, l.fetch)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCalls, l.calls)
			assert.Len(t, got, tt.total)
			assert.Equal(t, seq(tt.total), got)
		})
	}
}

func TestFetchAll_FailFast(t *testing.T) {
	l := &listing{data: seq(250), failOn: 2}

	got, err := FetchAll(context.Background(), "numbers", 100, l.fetch)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, []int{1, 2}, l.calls)
	assert.Contains(t, err.Error(), "failed to get page 2")
	assert.Contains(t, err.Error(), "numbers")
	assert.Contains(t, err.Error(), "boom")
}

func TestFetchAll_DefaultPageSize(t *testing.T) {
	var seen []int
	_, err := FetchAll(context.Background(), "numbers", 0, func(_ context.Context, page, perPage int) ([]int, error) {
		seen = append(seen, perPage)
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{DefaultPageSize}, seen)
}

func TestFetchAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &listing{data: seq(10)}
	_, err := FetchAll(ctx, "numbers", 100, l.fetch)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, l.calls)
}
