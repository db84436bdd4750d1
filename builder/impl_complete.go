// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_complete.go: complete graph K_n.
//
// Contract:
//   • n ≥ 1; one edge per unordered pair {i,j}, i<j, emitted in lexicographic
//     index order.
//   • Weights come from weightFn; without an RNG the default range collapses
//     to its lower bound, so every edge weighs the same.

package builder

import "github.com/katalvlaran/mstbench/core"

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete builds K_n with the given id.
func Complete(id, n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < minCompleteVertices {
		return nil, builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < %d", n, minCompleteVertices)
	}

	cfg := newBuilderConfig(opts...)

	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = cfg.idFn(i)
	}

	edges := make([]core.Edge, 0, maxSimpleEdges(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.NewEdge(vertices[i], vertices[j], cfg.weightFn(cfg.rng)))
		}
	}

	return core.NewGraph(id, vertices, edges)
}
