package pool

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool is a fixed-size group of workers, each identified by a stable dense
// index in [0, Workers()). The index is the contract everything else in this
// module rests on: while one Run or ForEach is in flight, worker i is exactly
// one goroutine, so any per-worker state (such as a frontier shard) can be
// mutated by it without synchronization.
type Pool struct {
	workers int
}

// New creates a pool with the given number of workers.
// A non-positive count defaults to the number of logical CPUs (GOMAXPROCS).
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Workers returns the pool's declared parallelism.
func (p *Pool) Workers() int {
	return p.workers
}

// Run starts exactly Workers() goroutines, passing each its worker index, and
// blocks until all have returned. The first error cancels the shared context
// and is returned; the remaining workers are expected to observe ctx and bail.
func (p *Pool) Run(ctx context.Context, task func(ctx context.Context, worker int) error) error {
	g, gCtx := errgroup.WithContext(ctx)
	for w := 0; w < p.workers; w++ {
		g.Go(func() error {
			return task(gCtx, w)
		})
	}
	return g.Wait()
}

// ForEach invokes fn for every i in [0, n), distributed across the pool's
// workers. Scheduling is dynamic: workers claim fixed-size blocks of indices
// from a shared atomic cursor, so a worker stuck on a slow element does not
// leave the rest of the range stranded behind a static partition.
//
// fn receives the claiming worker's index alongside the range index; that
// worker index is stable for the duration of the call and distinct across
// concurrently running invocations, which is what makes it safe to use as a
// frontier shard selector.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(worker, i int) error) error {
	if n <= 0 {
		return nil
	}

	block := n / (p.workers * blocksPerWorker)
	if block < 1 {
		block = 1
	}

	var cursor atomic.Int64
	return p.Run(ctx, func(ctx context.Context, worker int) error {
		for {
			start := int(cursor.Add(int64(block))) - block
			if start >= n {
				return nil
			}
			end := start + block
			if end > n {
				end = n
			}
			for i := start; i < end; i++ {
				if err := fn(worker, i); err != nil {
					return err
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	})
}

// blocksPerWorker controls ForEach granularity: more blocks per worker means
// finer-grained stealing at the cost of more cursor traffic.
const blocksPerWorker = 4
