// Package prim_kruskal provides two instrumented algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     On a disconnected graph the generalization is a spanning forest: one MST per component.
//
//   - Why instrument it?
//     Both engines report an operation count and a monotonic elapsed time next to the tree itself,
//     so the two strategies can be compared on the same inputs (see Compare and package report).
//
// Algorithms Provided
//
//   - Prim(g *core.Graph) (Result, error), PrimFrom(g, root) (Result, error)
//
//   - Strategy: grow one tree from the first vertex (or root). A lazy binary min-heap holds
//     (vertex, best-known weight) entries; an improvement pushes a fresh entry instead of
//     decreasing a key in place, and stale entries are dropped when popped.
//
//   - Operations = comparisons (incident edges examined) + extractions (stale ones included)
//     + decrease-keys (accepted improvements).
//
//   - Result edges are collected by walking the vertices in insertion order and taking each
//     vertex's recorded parent edge.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g *core.Graph) (Result, error)
//
//   - Strategy: stable-sort a copy of the edges by weight, then union endpoints in order with a
//     disjointset.DisjointSet; edges whose endpoints already share a set are discarded.
//
//   - Operations = sort comparator calls + Find calls + Union calls.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
// Disconnected and Empty Graphs
//
//	Neither is an error. Prim returns the MST of the start vertex's component only; Kruskal returns a
//	spanning forest. Both return fewer than |V|-1 edges, and it is the caller's job to notice
//	(Comparison.Stats.Connected, VerifySpanningForest). An empty graph yields zero edges, zero cost and
//	an honestly measured Elapsed.
//
// Ties
//
//	With equal weights the two engines may choose different edges. Total cost still agrees, so tests
//	compare costs with a tolerance and check structure with VerifyForest / VerifyComponentTree rather
//	than comparing edge lists.
//
// Concurrency
//
//	Each call allocates its own frontier, visited set and disjoint set and only reads the graph.
//	Running both engines on the same graph from different goroutines is safe; CompareAll does so
//	with a bounded errgroup.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil.
//   - ErrEmptyRoot: PrimFrom with root == "".
//   - core.ErrVertexNotFound: PrimFrom with a root that is not a vertex.
//   - ErrUnknownMethod: Compute with an unrecognized MSTOptions.Method.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
