package frontier

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zommiommy/parallel-frontier/pkg/pool"
)

// populate pushes 0..n-1 into f concurrently from every pool worker.
func populate(t *testing.T, p *pool.Pool, f *Frontier[int], n int) {
	t.Helper()
	err := p.ForEach(context.Background(), n, func(worker, i int) error {
		f.Push(worker, i)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, n, f.Len())
}

func TestForEachMatchesSequentialMultiset(t *testing.T) {
	p := pool.New(4)
	f := New[int](WithPool(p))
	populate(t, p, f, 10_000)

	var mu sync.Mutex
	var got []int
	err := ForEach(context.Background(), p, f, func(worker, v int) error {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	want := slices.Collect(f.All())
	slices.Sort(want)
	slices.Sort(got)
	assert.Equal(t, want, got)
}

func TestForEachSingleShard(t *testing.T) {
	p := pool.New(3)
	f := New[string](WithShards(1))
	f.Extend(0, "a", "b", "c")

	var mu sync.Mutex
	var got []string
	err := ForEach(context.Background(), p, f, func(worker int, v string) error {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	slices.Sort(got)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestForEachEmptyFrontier(t *testing.T) {
	p := pool.New(4)
	f := New[int](WithPool(p))
	calls := 0
	err := ForEach(context.Background(), p, f, func(worker, v int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}

func TestForEachWorkerIndicesAreValid(t *testing.T) {
	p := pool.New(4)
	f := New[int](WithPool(p))
	populate(t, p, f, 5_000)

	// The consuming worker index must be usable as a shard selector for a
	// second frontier, the BFS round shape.
	next := New[int](WithPool(p))
	err := ForEach(context.Background(), p, f, func(worker, v int) error {
		next.Push(worker, v+1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, f.Len(), next.Len())
}

func TestForEachPropagatesError(t *testing.T) {
	p := pool.New(4)
	f := New[int](WithPool(p))
	populate(t, p, f, 1_000)

	boom := errors.New("boom")
	err := ForEach(context.Background(), p, f, func(worker, v int) error {
		if v == 500 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestForEachCancelled(t *testing.T) {
	p := pool.New(4)
	f := New[int](WithPool(p))
	populate(t, p, f, 1_000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEach(ctx, p, f, func(worker, v int) error {
		return nil
	})
	// A pre-cancelled context may still let workers drain a chunk or two
	// before they observe it; the call must return the cancellation.
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForEachShard(t *testing.T) {
	p := pool.New(4)
	f := New[int](WithShards(3))
	f.Extend(0, 1, 2)
	f.Extend(2, 3)

	var mu sync.Mutex
	seen := map[int][]int{}
	err := ForEachShard(context.Background(), p, f, func(worker, shard int, items []int) error {
		mu.Lock()
		seen[shard] = slices.Clone(items)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[int][]int{0: {1, 2}, 2: {3}}, seen)
}

func TestForEachRepeatedConsumption(t *testing.T) {
	p := pool.New(4)
	f := New[int](WithPool(p))
	populate(t, p, f, 2_000)

	count := func() int {
		var n int64
		var mu sync.Mutex
		err := ForEach(context.Background(), p, f, func(worker, v int) error {
			mu.Lock()
			n++
			mu.Unlock()
			return nil
		})
		require.NoError(t, err)
		return int(n)
	}
	assert.Equal(t, 2_000, count())
	assert.Equal(t, 2_000, count(), "views must not consume the frontier")
}
