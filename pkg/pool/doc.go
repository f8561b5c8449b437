// Package pool provides a fixed-size worker pool with stable dense worker
// indices.
//
// It exists to make the scheduling contract that pkg/frontier relies on
// explicit and testable: every task launched through a Pool receives a worker
// index in [0, Workers()), no two concurrently running tasks share an index,
// and an index keeps meaning "the same logical worker" for the duration of one
// Run or ForEach call. Frontier shards are addressed by exactly these indices.
package pool
