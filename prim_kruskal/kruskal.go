package prim_kruskal

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/disjointset"
)

// Kruskal computes a minimum spanning forest of the graph.
// It uses disjointset.DisjointSet (path compression and union by rank) to reject cycle-closing edges.
//
// On a connected graph the forest is a tree with |V|-1 edges. A disconnected
// graph is not an error; the result just has fewer edges.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
//
// Steps:
//  1. Copy the edge list and sort it by ascending weight with sort.SliceStable,
//     counting every comparator call. Equal weights keep insertion order.
//  2. Register every vertex as a singleton set.
//  3. For each edge in sorted order, Union its endpoints. A successful union
//     accepts the edge; a rejected one (same component, including every
//     self-loop) discards it.
//  4. Operations = sort comparisons + Find calls + Union calls.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(graph *core.Graph) (Result, error) {
	start := time.Now()
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}

	var c Counters

	// 1. Sort a private copy of the edges; the counter lives in this frame.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		c.SortComparisons++
		return edges[i].Weight < edges[j].Weight
	})

	// 2. One singleton per vertex.
	vertices := graph.Vertices()
	ds := disjointset.New(len(vertices))
	for _, v := range vertices {
		if err := ds.Add(v); err != nil {
			return Result{}, fmt.Errorf("prim_kruskal: kruskal: %w", err)
		}
	}

	// 3. Greedy acceptance.
	res := Result{Edges: make([]core.Edge, 0, max(len(vertices)-1, 0))}
	for _, e := range edges {
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return Result{}, fmt.Errorf("prim_kruskal: kruskal: edge %s: %w", e, err)
		}
		if !merged {
			continue // would close a cycle
		}
		res.Edges = append(res.Edges, e)
		res.TotalCost += e.Weight
	}

	// 4. Fold the disjoint-set counters into this run's count.
	c.Finds = ds.FindOps()
	c.Unions = ds.UnionOps()
	res.Counters = c
	res.Operations = c.SortComparisons + c.Finds + c.Unions
	res.Elapsed = time.Since(start)

	return res, nil
}
