package core

// ID returns the graph identifier supplied to NewGraph.
func (g *Graph) ID() int { return g.id }

// Vertices returns a copy of the vertex labels in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|, counting parallel edges and self-loops individually.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.index[v]

	return ok
}

// First returns the first vertex in insertion order and false when the
// graph has no vertices.
func (g *Graph) First() (string, bool) {
	if len(g.vertices) == 0 {
		return "", false
	}

	return g.vertices[0], true
}

// Neighbors returns a copy of the edges incident to v, in edge insertion
// order. A self-loop on v appears twice.
//
// Errors:
//   - ErrVertexNotFound if v is not a vertex of g.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v string) ([]Edge, error) {
	adj, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// Incident returns the live adjacency slice of v without copying; it is nil
// for unknown vertices. The returned slice MUST NOT be modified.
// Engines use it to keep traversal at O(E) total without per-vertex copies.
func (g *Graph) Incident(v string) []Edge { return g.adjacency[v] }

// Density returns E / (V·(V−1)/2), or 0 when fewer than two vertices exist.
// Parallel edges may push the value above 1.
func (g *Graph) Density() float64 {
	n := len(g.vertices)
	if n < 2 {
		return 0
	}
	maxEdges := float64(n) * float64(n-1) / 2.0

	return float64(len(g.edges)) / maxEdges
}
