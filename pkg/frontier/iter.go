package frontier

import "iter"

// ============================================================================
// SEQUENTIAL VIEW
// ============================================================================

// All returns a lazy sequence over every element: shard 0 in insertion order,
// then shard 1, and so on. Each range over the result is a fresh traversal;
// nothing is consumed and nothing is copied.
//
// The order is deterministic for a fixed per-shard push history. It says
// nothing about the real-time interleaving of pushes across workers - only
// within-shard order is insertion order.
func (f *Frontier[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, shard := range f.shards {
			for _, v := range shard {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// ============================================================================
// CHUNK PLANNING
// ============================================================================

// chunk is a contiguous sub-range of one shard: the unit of work handed to
// parallel consumers. It indexes the live shard storage; nothing is copied.
type chunk struct {
	shard int
	start int
	end   int
}

// chunks partitions the frontier into sub-ranges of at most grain elements.
// Splits align with shard boundaries first - a shard no larger than the grain
// becomes exactly one chunk - and only oversized shards are subdivided, so a
// balanced producing phase yields one chunk per shard. Empty shards produce
// no chunks. A grain below 1 is treated as 1.
//
// Note that a single large shard may still be subdivided, so parallel
// consumption of a one-shard frontier preserves multiset contents but not
// necessarily order.
func (f *Frontier[T]) chunks(grain int) []chunk {
	if grain < 1 {
		grain = 1
	}
	var out []chunk
	for i, shard := range f.shards {
		n := len(shard)
		for start := 0; start < n; start += grain {
			end := start + grain
			if end > n {
				end = n
			}
			out = append(out, chunk{shard: i, start: start, end: end})
		}
	}
	return out
}

// grainFor derives the chunk grain for a given element total and worker
// count, targeting ChunksPerWorker chunks per worker.
func grainFor(total, workers int) int {
	grain := total / (workers * ChunksPerWorker)
	if grain < 1 {
		grain = 1
	}
	return grain
}
