package frontier

import (
	"context"

	"github.com/zommiommy/parallel-frontier/pkg/frontier/queue"
	"github.com/zommiommy/parallel-frontier/pkg/pool"
)

// ============================================================================
// PARALLEL VIEW
// ============================================================================

// ForEach consumes the frontier in parallel on the given pool, invoking fn
// once per element. The frontier is partitioned into shard-aligned chunks
// (oversized shards are subdivided for balance, see chunks), the chunks are
// loaded into a lock-free queue, and every pool worker drains it until empty.
// Elements are never copied; fn receives them straight from the shards.
//
// fn is given the consuming worker's index, so a consuming phase can itself
// produce into a second frontier with zero synchronization - the standard BFS
// round shape.
//
// No cross-chunk ordering is guaranteed: two runs over the same frontier may
// observe elements in different orders. Contents are always the exact
// multiset that All yields.
//
// The first error from fn cancels the remaining workers and is returned.
// A cancelled run simply leaves some chunks unconsumed.
func ForEach[T any](ctx context.Context, p *pool.Pool, f *Frontier[T], fn func(worker int, v T) error) error {
	chunks := f.chunks(grainFor(f.Len(), p.Workers()))
	return runChunks(ctx, p, f, chunks, fn)
}

// ForEachShard consumes the frontier in parallel at shard granularity: fn is
// invoked once per non-empty shard with the shard's full contents, preserving
// its insertion order. Use this when the per-shard slice itself is the useful
// unit, for example to merge sorted runs.
func ForEachShard[T any](ctx context.Context, p *pool.Pool, f *Frontier[T], fn func(worker, shard int, items []T) error) error {
	q := queue.NewRing[int](f.NumShards())
	for i, shard := range f.shards {
		if len(shard) > 0 {
			q.Offer(i)
		}
	}
	return p.Run(ctx, func(ctx context.Context, worker int) error {
		for {
			i, ok := q.Poll()
			if !ok {
				return nil
			}
			if err := fn(worker, i, f.shards[i]); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	})
}

func runChunks[T any](ctx context.Context, p *pool.Pool, f *Frontier[T], chunks []chunk, fn func(worker int, v T) error) error {
	if len(chunks) == 0 {
		return nil
	}
	q := queue.NewRing[chunk](len(chunks))
	for _, c := range chunks {
		q.Offer(c)
	}
	return p.Run(ctx, func(ctx context.Context, worker int) error {
		for {
			c, ok := q.Poll()
			if !ok {
				return nil
			}
			for _, v := range f.shards[c.shard][c.start:c.end] {
				if err := fn(worker, v); err != nil {
					return err
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	})
}
