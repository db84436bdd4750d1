package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// ErrForeignEdge indicates a selected edge that the graph does not contain
// (or contains fewer times than it was selected).
var ErrForeignEdge = errors.New("prim_kruskal: edge not in graph")

// ErrCycle indicates the selected edges contain a cycle.
var ErrCycle = errors.New("prim_kruskal: selected edges contain a cycle")

// ErrDisconnected indicates the selected edges fail to connect vertices they
// were expected to span.
var ErrDisconnected = errors.New("prim_kruskal: selected edges do not span")

// VerifyForest checks that edges is an acyclic multiset of graph edges.
// Structural equality (unordered endpoints + weight) decides membership.
//
// Acyclicity is checked by DFS over the selected edges, tracking the edge
// used to enter each vertex rather than the parent vertex, so two parallel
// selected edges and any selected self-loop are reported as cycles.
//
// Complexity: O(V + E + k) for k selected edges.
func VerifyForest(graph *core.Graph, edges []core.Edge) error {
	if graph == nil {
		return ErrInvalidGraph
	}

	// 1. Membership as a multiset.
	avail := make(map[string]int, graph.EdgeCount())
	for _, e := range graph.Edges() {
		avail[e.Key()]++
	}
	for _, e := range edges {
		k := e.Key()
		if avail[k] == 0 {
			return fmt.Errorf("%w: %s", ErrForeignEdge, e)
		}
		avail[k]--
	}

	// 2. Adjacency over selected edges, indexed by edge position.
	type arc struct {
		to  string
		idx int
	}
	adj := make(map[string][]arc, len(edges)*2)
	for i, e := range edges {
		if e.IsLoop() {
			return fmt.Errorf("%w: self-loop %s", ErrCycle, e)
		}
		adj[e.From] = append(adj[e.From], arc{to: e.To, idx: i})
		adj[e.To] = append(adj[e.To], arc{to: e.From, idx: i})
	}

	// 3. Iterative DFS from every unvisited vertex.
	type frame struct {
		vertex string
		via    int // index of the edge used to reach vertex, -1 for roots
	}
	visited := make(map[string]bool, len(adj))
	for _, start := range graph.Vertices() {
		if visited[start] {
			continue
		}
		visited[start] = true
		stack := []frame{{vertex: start, via: -1}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range adj[top.vertex] {
				if a.idx == top.via {
					continue
				}
				if visited[a.to] {
					return fmt.Errorf("%w: back-edge %s", ErrCycle, edges[a.idx])
				}
				visited[a.to] = true
				stack = append(stack, frame{vertex: a.to, via: a.idx})
			}
		}
	}

	return nil
}

// VerifySpanningForest checks that edges is a forest of graph edges with one
// tree per connected component, i.e. |edges| = |V| - #components. On a
// connected graph this means a spanning tree with |V|-1 edges.
func VerifySpanningForest(graph *core.Graph, edges []core.Edge) error {
	if err := VerifyForest(graph, edges); err != nil {
		return err
	}
	want := graph.VertexCount() - len(graph.Components())
	if len(edges) != want {
		return fmt.Errorf("%w: %d edges, want %d", ErrDisconnected, len(edges), want)
	}

	return nil
}

// VerifyComponentTree checks that edges is a spanning tree of exactly the
// component containing root: every edge lies inside that component and the
// edges connect all of it. This is the contract of Prim on any graph.
func VerifyComponentTree(graph *core.Graph, edges []core.Edge, root string) error {
	if err := VerifyForest(graph, edges); err != nil {
		return err
	}
	var comp []string
	for _, c := range graph.Components() {
		for _, v := range c {
			if v == root {
				comp = c
			}
		}
	}
	if comp == nil {
		return core.ErrVertexNotFound
	}
	inComp := make(map[string]bool, len(comp))
	for _, v := range comp {
		inComp[v] = true
	}
	for _, e := range edges {
		if !inComp[e.From] || !inComp[e.To] {
			return fmt.Errorf("%w: %s outside component of %q", ErrForeignEdge, e, root)
		}
	}
	// An acyclic edge set inside the component with |C|-1 edges spans it.
	if len(edges) != len(comp)-1 {
		return fmt.Errorf("%w: %d edges, component of %q has %d vertices",
			ErrDisconnected, len(edges), root, len(comp))
	}

	return nil
}
