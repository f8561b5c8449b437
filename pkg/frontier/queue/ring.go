package queue

import "sync/atomic"

// Ring is a lock-free single-producer multi-consumer queue, used to
// distribute pre-planned work items (frontier chunks) to a group of workers.
//
// The intended protocol is load-then-drain: one goroutine Offers every item,
// then any number of goroutines Poll concurrently until the queue is empty.
// Offer is NOT safe to run concurrently with Poll; the multi-consumer
// guarantee only covers the drain phase.
type Ring[T any] struct {
	// Cache line padding to prevent false sharing between the contended
	// head and the read-mostly fields.
	_padding0 [8]uint64
	head      uint64
	_padding1 [8]uint64
	tail      uint64
	_padding2 [8]uint64
	mask      uint64
	buffer    []T
}

// NewRing creates a Ring with room for at least capacity items.
// Capacity is rounded up to the next power of 2.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		capacity = 2
	}
	// Round up to power of 2
	// See: https://graphics.stanford.edu/~seander/bithacks.html#RoundUpPowerOf2
	capacity--
	capacity |= capacity >> 1
	capacity |= capacity >> 2
	capacity |= capacity >> 4
	capacity |= capacity >> 8
	capacity |= capacity >> 16
	capacity++

	return &Ring[T]{
		buffer: make([]T, capacity),
		mask:   uint64(capacity - 1),
	}
}

// Offer adds an item to the queue.
// Returns false if the queue is full.
// Only safe for a single producer, and only while no consumer is polling.
func (r *Ring[T]) Offer(item T) bool {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)

	if tail-head > r.mask {
		return false // Full
	}

	r.buffer[tail&r.mask] = item
	atomic.StoreUint64(&r.tail, tail+1)
	return true
}

// Poll claims and returns the next item.
// Returns false once the queue is drained.
// Safe for any number of concurrent consumers: each slot is claimed by a
// compare-and-swap on head, so no item is delivered twice.
func (r *Ring[T]) Poll() (T, bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		tail := atomic.LoadUint64(&r.tail)

		if head == tail {
			var zero T
			return zero, false // Empty
		}

		if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
			// The claimed slot cannot be overwritten: the producer is
			// quiescent during the drain phase, so reading after the CAS
			// is race-free.
			return r.buffer[head&r.mask], true
		}
	}
}

// Len returns the number of items currently queued.
func (r *Ring[T]) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return int(tail - head)
}
