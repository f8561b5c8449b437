// Package frontier provides a sharded, synchronization-free container for
// values produced concurrently by many workers.
//
// A Frontier holds one append-only shard per worker slot. Each worker pushes
// into its own shard, identified by the explicit worker index it received from
// its pool, so the hot path performs no locking, no atomic operations, and no
// channel sends. Once the producing phase has quiesced the shards are
// presented as one logical collection, either sequentially (All) or in
// parallel (ForEach), without ever copying them into a merged buffer.
//
// The design targets level-synchronous graph traversal: each BFS round pushes
// the next layer's nodes into a frontier from all workers at once, then the
// next round consumes it and the two frontiers swap roles.
//
// Safety rests on a single contract, provided by the caller's scheduler
// rather than enforced at runtime: while a frontier is being populated, no two
// concurrently running tasks may use the same worker index. pkg/pool supplies
// exactly this guarantee. Violating it is undefined behavior - the container
// deliberately does not detect it, since detection would require the very
// synchronization it exists to avoid. Population and iteration must not
// overlap within one round.
package frontier
