package frontier

import "runtime"

// ============================================================================
// SYSTEM CONFIGURATION
// ============================================================================

// ChunksPerWorker controls the granularity of the parallel view: the chunk
// planner targets roughly this many chunks per pool worker, so a straggler
// holds back one small chunk rather than a whole shard.
const ChunksPerWorker = 4

// sanitizeShards ensures a shard count is a valid positive integer.
//
// If n is less than or equal to 0, it defaults to the number of logical CPUs
// available (GOMAXPROCS). A frontier therefore always has at least one shard,
// and shard 0 doubles as the reserved slot for pushes from unindexed callers.
func sanitizeShards(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
