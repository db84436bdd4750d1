// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_random_connected.go: connected random graph with exactly m edges.
//
// Construction:
//   1. Vertices are labelled idFn(0..n-1) in order.
//   2. Backbone: for i = 1..n-1, vertex i joins a uniformly chosen earlier
//      vertex with weight treeWeightFn(rng). This yields a random spanning tree.
//   3. Extras: distinct non-loop pairs not yet used are drawn uniformly until
//      the edge count reaches m; weights come from weightFn(rng).
//
// Contract:
//   • n ≥ 1, n-1 ≤ m ≤ n(n-1)/2; otherwise a sentinel error is returned.
//   • Requires an RNG (WithSeed / WithRand).
//   • Deterministic for a fixed seed.
//
// Complexity:
//   • Sparse case: expected O(m) draws. When m is close to n(n-1)/2 the
//     remaining pairs are enumerated and shuffled instead of rejection-sampled.

package builder

import (
	"github.com/katalvlaran/mstbench/core"
)

const (
	methodRandomConnected = "RandomConnected"
	minRandomVertices     = 1
)

// RandomConnected builds a connected graph with n vertices and m edges.
// Returned graphs carry the given id and contain no self-loops or parallel edges.
func RandomConnected(id, n, m int, opts ...BuilderOption) (*core.Graph, error) {
	if n < minRandomVertices {
		return nil, builderErrorf(methodRandomConnected, ErrTooFewVertices, "n=%d < %d", n, minRandomVertices)
	}
	if m < n-1 {
		return nil, builderErrorf(methodRandomConnected, ErrTooFewEdges, "m=%d < n-1=%d", m, n-1)
	}
	if limit := maxSimpleEdges(n); m > limit {
		return nil, builderErrorf(methodRandomConnected, ErrTooManyEdges, "m=%d > n(n-1)/2=%d", m, limit)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomConnected, ErrNeedRandSource, "n=%d m=%d", n, m)
	}

	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = cfg.idFn(i)
	}

	edges := make([]core.Edge, 0, m)
	used := make(map[[2]int]bool, m)

	for i := 1; i < n; i++ {
		j := cfg.rng.Intn(i)
		used[pairKey(i, j)] = true
		edges = append(edges, core.NewEdge(vertices[j], vertices[i], cfg.treeWeightFn(cfg.rng)))
	}

	extra := m - len(edges)
	if extra > 0 && extra*2 > maxSimpleEdges(n)-len(edges) {
		// dense: enumerate what is left and take a shuffled prefix
		free := make([][2]int, 0, maxSimpleEdges(n)-len(edges))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !used[[2]int{i, j}] {
					free = append(free, [2]int{i, j})
				}
			}
		}
		cfg.rng.Shuffle(len(free), func(a, b int) { free[a], free[b] = free[b], free[a] })
		for _, p := range free[:extra] {
			edges = append(edges, core.NewEdge(vertices[p[0]], vertices[p[1]], cfg.weightFn(cfg.rng)))
		}
	} else {
		for len(edges) < m {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if i == j {
				continue
			}
			k := pairKey(i, j)
			if used[k] {
				continue
			}
			used[k] = true
			edges = append(edges, core.NewEdge(vertices[i], vertices[j], cfg.weightFn(cfg.rng)))
		}
	}

	return core.NewGraph(id, vertices, edges)
}

// maxSimpleEdges returns n(n-1)/2.
func maxSimpleEdges(n int) int {
	return n * (n - 1) / 2
}

// pairKey orders an index pair so (i,j) and (j,i) collide.
func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}
