package frontier

import (
	"fmt"
	"iter"
)

// ============================================================================
// FRONTIER
// ============================================================================

// Frontier is a sharded append-only container. Shard i belongs to worker
// slot i; during a producing phase it is written by that worker alone, which
// is what makes Push synchronization-free. See the package documentation for
// the full contract.
type Frontier[T any] struct {
	shards [][]T
}

// New creates an empty frontier.
//
// With no options the shard count defaults to the number of logical CPUs.
// Pass WithPool (or WithShards) so the shard count matches the scheduler that
// will populate it, and optionally WithCapacity to pre-size the shards.
func New[T any](opts ...Option) *Frontier[T] {
	cfg := ApplyOptions(opts...)
	perShard := 0
	if cfg.Capacity > 0 {
		perShard = cfg.Capacity / cfg.Shards
	}

	shards := make([][]T, cfg.Shards)
	if perShard > 0 {
		for i := range shards {
			shards[i] = make([]T, 0, perShard)
		}
	}
	return &Frontier[T]{shards: shards}
}

// FromSlice creates a frontier whose shard 0 holds the given values.
// The slice is taken over, not copied.
func FromSlice[T any](values []T, opts ...Option) *Frontier[T] {
	f := New[T](opts...)
	f.shards[0] = values
	return f
}

// shardFor maps a worker index to a shard index.
//
// A negative index designates a caller outside any pool and routes to the
// reserved shard 0; such pushes must not run concurrently with a worker-0
// push. An index beyond the shard count is a broken scheduling contract and
// panics rather than silently corrupting another worker's shard.
func (f *Frontier[T]) shardFor(worker int) int {
	if worker < 0 {
		return 0
	}
	if worker >= len(f.shards) {
		panic(fmt.Sprintf("frontier: worker index %d out of range for %d shards", worker, len(f.shards)))
	}
	return worker
}

// Push appends v to the calling worker's shard.
//
// Amortized O(1), no synchronization. The worker index must come from the
// scheduler coordinating the current producing phase (pkg/pool passes it into
// every task); two concurrent pushes with the same index are undefined
// behavior.
func (f *Frontier[T]) Push(worker int, v T) {
	i := f.shardFor(worker)
	f.shards[i] = append(f.shards[i], v)
}

// Extend appends all values to the calling worker's shard, in order.
// Equivalent to repeated Push without re-resolving the shard per element.
func (f *Frontier[T]) Extend(worker int, values ...T) {
	i := f.shardFor(worker)
	f.shards[i] = append(f.shards[i], values...)
}

// ExtendSeq appends every element produced by seq to the calling worker's
// shard, in iteration order.
func (f *Frontier[T]) ExtendSeq(worker int, seq iter.Seq[T]) {
	i := f.shardFor(worker)
	for v := range seq {
		f.shards[i] = append(f.shards[i], v)
	}
}

// Pop removes and returns the most recently pushed element of the calling
// worker's shard. Reports false if that shard is empty. Together with Push
// this gives each worker a private LIFO within the round.
func (f *Frontier[T]) Pop(worker int) (T, bool) {
	i := f.shardFor(worker)
	shard := f.shards[i]
	if len(shard) == 0 {
		var zero T
		return zero, false
	}
	v := shard[len(shard)-1]
	f.shards[i] = shard[:len(shard)-1]
	return v, true
}

// NumShards returns the fixed shard count.
func (f *Frontier[T]) NumShards() int {
	return len(f.shards)
}

// Shard returns the current contents of shard i. The slice aliases the
// frontier's storage and is invalidated by Clear, Swap, and further pushes to
// that shard.
func (f *Frontier[T]) Shard(i int) []T {
	return f.shards[i]
}

// ShardSizes returns the length of every shard. Useful for inspecting how
// evenly a producing phase spread its output.
func (f *Frontier[T]) ShardSizes() []int {
	sizes := make([]int, len(f.shards))
	for i, shard := range f.shards {
		sizes[i] = len(shard)
	}
	return sizes
}

// Len returns the total number of elements across all shards.
// Linear in the shard count, not in the element count.
func (f *Frontier[T]) Len() int {
	total := 0
	for _, shard := range f.shards {
		total += len(shard)
	}
	return total
}

// IsEmpty reports whether every shard is empty.
func (f *Frontier[T]) IsEmpty() bool {
	return f.Len() == 0
}

// Clear truncates every shard to length zero, keeping the allocated capacity
// so the next round's pushes reuse it.
func (f *Frontier[T]) Clear() {
	for i := range f.shards {
		f.shards[i] = f.shards[i][:0]
	}
}

// ShrinkToFit releases the excess capacity of every shard, reallocating each
// down to its current length. Counterpart to the capacity retention of Clear,
// for when a frontier shrinks permanently.
func (f *Frontier[T]) ShrinkToFit() {
	for i, shard := range f.shards {
		if cap(shard) > len(shard) {
			trimmed := make([]T, len(shard))
			copy(trimmed, shard)
			f.shards[i] = trimmed
		}
	}
}

// Concat copies all elements into one new slice, shard 0 first.
func (f *Frontier[T]) Concat() []T {
	out := make([]T, 0, f.Len())
	for _, shard := range f.shards {
		out = append(out, shard...)
	}
	return out
}

// Swap exchanges the contents of f and other in constant time. This is the
// per-round current/next exchange of a BFS loop: no elements move, only the
// two shard tables.
func (f *Frontier[T]) Swap(other *Frontier[T]) {
	f.shards, other.shards = other.shards, f.shards
}

// Equal reports whether a and b yield the same sequential view: same total
// length and same elements in the same order under All. Shard boundaries are
// not compared, matching the view's own indifference to them.
func Equal[T comparable](a, b *Frontier[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for v := range a.All() {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	return true
}
