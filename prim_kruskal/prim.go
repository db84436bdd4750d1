package prim_kruskal

import (
	"container/heap"
	"math"
	"time"

	"github.com/katalvlaran/mstbench/core"
)

// Prim computes the minimum spanning tree of the connected component that
// contains the graph's first vertex (insertion order).
//
// A disconnected graph is not an error: the result simply spans the start
// vertex's component and has fewer than |V|-1 edges. A graph with no
// vertices yields an empty, zero-cost result whose Elapsed is still measured.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// Complexity: O(E log E) time with the lazy frontier (≤ E+1 heap entries), O(V + E) memory.
func Prim(graph *core.Graph) (Result, error) {
	start := time.Now()
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	root, ok := graph.First()
	if !ok {
		return Result{Edges: []core.Edge{}, Elapsed: time.Since(start)}, nil
	}

	return runPrim(graph, root, start), nil
}

// PrimFrom is Prim with an explicit start vertex.
//
// Error Conditions:
//   - ErrInvalidGraph:        graph is nil.
//   - ErrEmptyRoot:           root == "".
//   - core.ErrVertexNotFound: root is not a vertex of graph.
func PrimFrom(graph *core.Graph, root string) (Result, error) {
	start := time.Now()
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	if root == "" {
		return Result{}, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return Result{}, core.ErrVertexNotFound
	}

	return runPrim(graph, root, start), nil
}

// runPrim grows the tree from root. start is the clock reading taken by the
// exported entry point so the measurement covers validation and allocation.
//
// Steps:
//  1. key[v] = +Inf for every vertex, key[root] = 0; seed the frontier with (root, 0).
//  2. Pop the cheapest entry (extractions++). If its vertex is already in the
//     tree the entry is stale: drop it.
//  3. Otherwise finalize the vertex and examine each incident edge
//     (comparisons++). If the neighbor is outside the tree and the edge is
//     strictly cheaper than its key, record the edge as the neighbor's parent,
//     lower the key, push a fresh entry (decreaseKeys++).
//  4. When the frontier is empty, walk the vertices in order and collect each
//     recorded parent edge.
func runPrim(graph *core.Graph, root string, start time.Time) Result {
	vertices := graph.Vertices()
	n := len(vertices)

	var c Counters
	inTree := make(map[string]bool, n)
	key := make(map[string]float64, n)
	parent := make(map[string]core.Edge, n)

	// 1. Initialize keys and seed the frontier.
	for _, v := range vertices {
		key[v] = math.Inf(1)
	}
	key[root] = 0
	pq := &frontier{{vertex: root, key: 0}}
	heap.Init(pq)

	// 2-3. Lazy extraction loop.
	for pq.Len() > 0 {
		u := heap.Pop(pq).(frontierEntry)
		c.Extractions++
		if inTree[u.vertex] {
			continue // stale entry
		}
		inTree[u.vertex] = true

		for _, e := range graph.Incident(u.vertex) {
			v := e.Other(u.vertex)
			c.Comparisons++
			if inTree[v] || e.Weight >= key[v] {
				continue
			}
			key[v] = e.Weight
			parent[v] = e
			heap.Push(pq, frontierEntry{vertex: v, key: e.Weight})
			c.DecreaseKeys++
		}
	}

	// 4. Assemble in vertex order; parent edges are tracked directly, so
	//    this pass is O(V).
	res := Result{Edges: make([]core.Edge, 0, n)}
	for _, v := range vertices {
		if e, ok := parent[v]; ok {
			res.Edges = append(res.Edges, e)
			res.TotalCost += e.Weight
		}
	}
	res.Counters = c
	res.Operations = c.Comparisons + c.Extractions + c.DecreaseKeys
	res.Elapsed = time.Since(start)

	return res
}

// frontierEntry is a (vertex, best-known connecting weight) pair.
type frontierEntry struct {
	vertex string
	key    float64
}

// frontier implements heap.Interface as a binary min-heap on key.
// Equal keys are extracted in whatever order the heap produces.
type frontier []frontierEntry

// Len returns the number of entries in the frontier.
func (pq frontier) Len() int { return len(pq) }

// Less orders entries by ascending key.
func (pq frontier) Less(i, j int) bool { return pq[i].key < pq[j].key }

// Swap swaps entries i and j.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an entry. Called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierEntry)) }

// Pop removes the last entry. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]

	return entry
}
