// Package core provides the immutable in-memory Graph consumed by the MST
// engines in prim_kruskal.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are opaque string labels kept in insertion order. The first
//     vertex is the default start for traversals (IsConnected, Prim).
//   - Edges are (From, To, Weight) triples with float64 weights. Negative
//     weights are legal; NaN is rejected. Parallel edges and self-loops are
//     kept as supplied and never deduplicated.
//   - The adjacency mapping is derived once by NewGraph. Each edge is listed
//     under both endpoints, so a self-loop is listed twice under its vertex.
//     This keeps "for each incident edge" loops uniform; a self-loop never
//     improves an MST, so the duplicate only costs one extra iteration.
//
// Why an immutable graph?
//
//   - The MST engines only read the graph. Freezing it at construction time
//     means Prim and Kruskal can run on the same *Graph from different
//     goroutines with no locking discipline at all.
//   - Fail-fast validation at the boundary: a malformed description (unknown
//     endpoint, duplicate or empty label, NaN weight) is rejected by NewGraph
//     instead of silently corrupting adjacency.
//
// Core API:
//
//	NewGraph(id int, vertices []string, edges []Edge) (*Graph, error) // O(V+E)
//
//	ID() int                              // O(1)
//	Vertices() []string                   // O(V), copy in insertion order
//	Edges() []Edge                        // O(E), copy in insertion order
//	VertexCount(), EdgeCount() int        // O(1)
//	HasVertex(v string) bool              // O(1)
//	First() (string, bool)                // O(1)
//	Neighbors(v string) ([]Edge, error)   // O(deg v), copy
//	Incident(v string) []Edge             // O(1), live read-only slice
//	Density() float64                     // O(1)
//	IsConnected() bool                    // O(V+E), BFS from First()
//	Components() [][]string               // O(V+E)
//
// Edge helpers:
//
//	Other(v) string  // opposite endpoint
//	IsLoop() bool
//	Equal(o) bool    // same unordered pair AND same weight
//	Key() string     // canonical key for structural identity
//
// Errors:
//
//	ErrInvalidGraph    – wrapped around every NewGraph failure
//	ErrEmptyVertexID   – zero-length vertex label
//	ErrDuplicateVertex – label listed twice
//	ErrVertexNotFound  – unknown endpoint or lookup
//	ErrBadWeight       – NaN weight
package core
