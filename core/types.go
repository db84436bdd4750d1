// Package core defines the immutable, ordered Graph and Edge types consumed
// by the MST engines, together with the sentinel errors reported when a
// graph description is malformed.
//
// Errors:
//
//	ErrInvalidGraph      - umbrella error wrapped around every construction failure.
//	ErrEmptyVertexID     - vertex label is the empty string.
//	ErrDuplicateVertex   - the same label appears twice in the vertex list.
//	ErrVertexNotFound    - an edge endpoint or lookup refers to an unknown vertex.
//	ErrBadWeight         - edge weight is NaN.
package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrInvalidGraph indicates the graph description violates a structural precondition.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrEmptyVertexID indicates that a vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates the vertex list contains the same label twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: bad edge weight")
)

// Edge is an undirected connection between two vertices.
//
// From and To carry no orientation; they only record the order in which the
// endpoints were supplied. Two edges joining the same pair are distinct values
// and are never deduplicated by the graph.
type Edge struct {
	// From is the first endpoint label.
	From string

	// To is the second endpoint label.
	To string

	// Weight is the edge cost. Negative weights are allowed.
	Weight float64
}

// NewEdge is a small convenience constructor for Edge literals.
func NewEdge(from, to string, weight float64) Edge {
	return Edge{From: from, To: to, Weight: weight}
}

// Other returns the endpoint opposite to v. For a self-loop it returns v.
// The result is undefined when v is not an endpoint of e.
func (e Edge) Other(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Equal reports structural equality: the same unordered endpoint pair and
// the same weight.
func (e Edge) Equal(o Edge) bool {
	if e.Weight != o.Weight {
		return false
	}

	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// Key returns a canonical string usable as a map key for structural identity.
// Equal edges always produce the same key.
func (e Edge) Key() string {
	u, v := e.From, e.To
	if u > v {
		u, v = v, u
	}

	return u + "|" + v + "|" + strconv.FormatFloat(e.Weight, 'g', -1, 64)
}

// String renders the edge as "A-B (1.00)".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s (%.2f)", e.From, e.To, e.Weight)
}

// Graph is an immutable, undirected, weighted graph with ordered vertices.
//
// The vertex order is the insertion order supplied to NewGraph and defines the
// default start vertex for traversals. The adjacency mapping is derived once
// at construction: every edge is listed under both endpoints, so a self-loop
// is listed twice under its single vertex.
//
// A Graph is never mutated after NewGraph returns, so any number of goroutines
// may read it concurrently without locking.
type Graph struct {
	id        int
	vertices  []string
	edges     []Edge
	index     map[string]int    // vertex label → position in vertices
	adjacency map[string][]Edge // vertex label → incident edges in edge order
}

// NewGraph validates the description and builds a Graph.
//
// The vertex and edge slices are copied; the caller may reuse them.
// Validation is fail-fast: the first violation is returned wrapped so that
// both errors.Is(err, ErrInvalidGraph) and errors.Is(err, <specific>) hold.
//
// Complexity: O(V + E) time and memory.
func NewGraph(id int, vertices []string, edges []Edge) (*Graph, error) {
	g := &Graph{
		id:        id,
		vertices:  make([]string, len(vertices)),
		edges:     make([]Edge, len(edges)),
		index:     make(map[string]int, len(vertices)),
		adjacency: make(map[string][]Edge, len(vertices)),
	}
	copy(g.vertices, vertices)
	copy(g.edges, edges)

	// 1. Register vertices in order, rejecting empty and duplicate labels.
	for i, v := range g.vertices {
		if v == "" {
			return nil, invalid(id, fmt.Sprintf("vertex #%d", i), ErrEmptyVertexID)
		}
		if _, dup := g.index[v]; dup {
			return nil, invalid(id, fmt.Sprintf("vertex %q", v), ErrDuplicateVertex)
		}
		g.index[v] = i
		g.adjacency[v] = nil
	}

	// 2. Append each edge under both endpoints (twice for a self-loop).
	for i, e := range g.edges {
		if math.IsNaN(e.Weight) {
			return nil, invalid(id, fmt.Sprintf("edge #%d %s-%s", i, e.From, e.To), ErrBadWeight)
		}
		if _, ok := g.index[e.From]; !ok {
			return nil, invalid(id, fmt.Sprintf("edge #%d endpoint %q", i, e.From), ErrVertexNotFound)
		}
		if _, ok := g.index[e.To]; !ok {
			return nil, invalid(id, fmt.Sprintf("edge #%d endpoint %q", i, e.To), ErrVertexNotFound)
		}
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		g.adjacency[e.To] = append(g.adjacency[e.To], e)
	}

	return g, nil
}

// invalid wraps a specific sentinel with ErrInvalidGraph and location context.
func invalid(id int, where string, cause error) error {
	return fmt.Errorf("%w: graph %d: %s: %w", ErrInvalidGraph, id, where, cause)
}
