package main

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/zommiommy/parallel-frontier/pkg/frontier"
	"github.com/zommiommy/parallel-frontier/pkg/pool"
)

// ============================================================================
// DOMAIN LOGIC (EXAMPLE USAGE)
// ============================================================================

// Graph is a node-indexed adjacency list.
type Graph [][]int32

// randomGraph builds a connected graph: a spanning path plus extra random
// edges per node.
func randomGraph(nodes, extra int, seed int64) Graph {
	rng := rand.New(rand.NewSource(seed))
	g := make(Graph, nodes)
	for i := 1; i < nodes; i++ {
		g[i-1] = append(g[i-1], int32(i))
	}
	for i := range g {
		for e := 0; e < extra; e++ {
			g[i] = append(g[i], int32(rng.Intn(nodes)))
		}
	}
	return g
}

// visitedSet is a concurrent bitset. TrySet is a CAS test-and-set so each
// node enters the next frontier exactly once even when several workers
// discover it in the same round.
type visitedSet []atomic.Uint64

func newVisitedSet(nodes int) visitedSet {
	return make(visitedSet, (nodes+63)/64)
}

func (s visitedSet) TrySet(node int32) bool {
	word := &s[node>>6]
	bit := uint64(1) << (node & 63)
	for {
		old := word.Load()
		if old&bit != 0 {
			return false
		}
		if word.CompareAndSwap(old, old|bit) {
			return true
		}
	}
}

// bfs runs a level-synchronous breadth-first search from root: each round
// consumes the current frontier in parallel, pushes newly discovered nodes
// into the next frontier from all workers at once, then swaps the two.
func bfs(ctx context.Context, p *pool.Pool, g Graph, root int32) (reached, rounds int, err error) {
	visited := newVisitedSet(len(g))
	visited.TrySet(root)

	current := frontier.New[int32](frontier.WithPool(p), frontier.WithCapacity(len(g)/4))
	next := frontier.New[int32](frontier.WithPool(p), frontier.WithCapacity(len(g)/4))
	current.Push(-1, root)

	reached = 1
	for !current.IsEmpty() {
		err = frontier.ForEach(ctx, p, current, func(worker int, node int32) error {
			for _, succ := range g[node] {
				if visited.TrySet(succ) {
					next.Push(worker, succ)
				}
			}
			return nil
		})
		if err != nil {
			return reached, rounds, err
		}
		rounds++
		reached += next.Len()
		current.Swap(next)
		next.Clear()
	}
	return reached, rounds, nil
}

func main() {
	const (
		nodes = 1_000_000
		extra = 4
	)

	p := pool.New(runtime.GOMAXPROCS(0))
	fmt.Printf("Building graph: %d nodes, ~%d edges, %d workers\n", nodes, nodes*(extra+1), p.Workers())
	g := randomGraph(nodes, extra, 42)

	startTime := time.Now()
	reached, rounds, err := bfs(context.Background(), p, g, 0)
	duration := time.Since(startTime)

	if err != nil {
		fmt.Printf("BFS Status: FAILED (%v)\n", err)
		return
	}
	fmt.Printf("BFS: reached %d/%d nodes in %d rounds\n", reached, nodes, rounds)
	fmt.Printf("--- Traversal Complete in %s (%.1f Mnodes/s) ---\n", duration, float64(reached)/duration.Seconds()/1e6)
}
