// Package dijkstra - the ShortestPath implementation.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/acopath/acopath/topology"
)

// ShortestPath computes the exact minimum-cost path from start to end over
// the given topology store.
//
// Returns:
//
//   - nodes:  the path start…end, or nil when end is unreachable.
//   - length: the path cost, or math.Inf(1) when end is unreachable.
//   - err:    ErrNilStore for a nil store, ErrNodeNotFound when start does
//     not appear in the topology. Unreachability is NOT an error —
//     it mirrors the engine's empty-route contract.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(s *topology.Store, start, end int64) ([]int64, float64, error) {
	if s == nil {
		return nil, math.Inf(1), ErrNilStore
	}

	// Validate start against the known endpoint set. An unknown end is
	// simply unreachable, so it needs no upfront check.
	if !containsNode(s, start) {
		return nil, math.Inf(1), ErrNodeNotFound
	}

	r := &runner{
		store:   s,
		dist:    map[int64]float64{start: 0},
		prev:    make(map[int64]int64),
		visited: make(map[int64]struct{}),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: start, dist: 0})

	r.process(end)

	// dist[end] is set iff end was reached; for start == end this is the
	// trivial zero-length single-node path.
	d, ok := r.dist[end]
	if !ok {
		return nil, math.Inf(1), nil
	}

	return r.reconstruct(start, end), d, nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	store   *topology.Store
	dist    map[int64]float64  // node → best known distance from start
	prev    map[int64]int64    // node → predecessor on the shortest path
	visited map[int64]struct{} // nodes whose distance is finalized
	pq      nodePQ
}

// process runs the main loop until the heap drains or end is finalized.
func (r *runner) process(end int64) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if _, done := r.visited[item.node]; done {
			continue // stale lazy-decrease-key entry
		}
		r.visited[item.node] = struct{}{}

		if item.node == end {
			return // end finalized; the rest of the frontier is irrelevant
		}

		r.relax(item.node)
	}
}

// relax attempts to improve the distance of every neighbor of u.
func (r *runner) relax(u int64) {
	var (
		du = r.dist[u]
		v  int64
	)
	for _, v = range r.store.Neighbors(u) {
		w, ok := r.store.Weight(u, v)
		if !ok {
			continue
		}

		nd := du + w
		if cur, seen := r.dist[v]; seen && nd >= cur {
			continue
		}

		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{node: v, dist: nd})
	}
}

// reconstruct walks the predecessor chain from end back to start.
func (r *runner) reconstruct(start, end int64) []int64 {
	var rev []int64
	for at := end; ; {
		rev = append(rev, at)
		if at == start {
			break
		}
		at = r.prev[at]
	}

	// Reverse in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// containsNode reports whether node appears as an endpoint of any edge.
func containsNode(s *topology.Store, node int64) bool {
	var n int64
	for _, n = range s.Nodes() {
		if n == node {
			return true
		}
	}

	return false
}

// nodeItem is one (node, distance) heap entry.
type nodeItem struct {
	node int64
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: improved distances push new entries and
// stale ones are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
