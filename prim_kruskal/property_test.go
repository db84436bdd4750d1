package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomGraph draws n vertices and m random edges (loops, parallels and
// repeated integer weights included) from seed. It may be disconnected.
func randomGraph(seed int64, n, m int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = fmt.Sprintf("V%d", i)
	}
	edges := make([]core.Edge, 0, m)
	for i := 0; i < m && n > 0; i++ {
		edges = append(edges, core.NewEdge(vertices[r.Intn(n)], vertices[r.Intn(n)], float64(r.Intn(21)-5)))
	}
	g, err := core.NewGraph(int(seed%1000), vertices, edges)
	if err != nil {
		panic(err) // generator only references its own vertices
	}

	return g
}

// connectedGraph is randomGraph plus a random spanning tree, so it is always connected.
func connectedGraph(seed int64, n, extra int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	vertices := make([]string, n)
	for i := range vertices {
		vertices[i] = fmt.Sprintf("V%d", i)
	}
	var edges []core.Edge
	for i := 1; i < n; i++ {
		edges = append(edges, core.NewEdge(vertices[r.Intn(i)], vertices[i], float64(1+r.Intn(50))))
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, core.NewEdge(vertices[r.Intn(n)], vertices[r.Intn(n)], float64(1+r.Intn(100))))
	}
	g, err := core.NewGraph(1, vertices, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// TestMSTProperties checks the comparative contract of both engines over
// random inputs.
func TestMSTProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("connected: equal cost and V-1 edges", prop.ForAll(
		func(seed int64, n, extra int) bool {
			g := connectedGraph(seed, n, extra)
			p, errP := prim_kruskal.Prim(g)
			k, errK := prim_kruskal.Kruskal(g)
			if errP != nil || errK != nil {
				return false
			}

			return math.Abs(p.TotalCost-k.TotalCost) < 1e-6 &&
				len(p.Edges) == n-1 && len(k.Edges) == n-1
		},
		gen.Int64(),
		gen.IntRange(1, 40),
		gen.IntRange(0, 120),
	))

	properties.Property("connected: both results are spanning trees", prop.ForAll(
		func(seed int64, n, extra int) bool {
			g := connectedGraph(seed, n, extra)
			p, _ := prim_kruskal.Prim(g)
			k, _ := prim_kruskal.Kruskal(g)

			return prim_kruskal.VerifySpanningForest(g, p.Edges) == nil &&
				prim_kruskal.VerifySpanningForest(g, k.Edges) == nil
		},
		gen.Int64(),
		gen.IntRange(1, 40),
		gen.IntRange(0, 120),
	))

	properties.Property("any graph: Kruskal spans every component, Prim the first", prop.ForAll(
		func(seed int64, n, m int) bool {
			g := randomGraph(seed, n, m)
			k, errK := prim_kruskal.Kruskal(g)
			p, errP := prim_kruskal.Prim(g)
			if errK != nil || errP != nil {
				return false
			}
			if prim_kruskal.VerifySpanningForest(g, k.Edges) != nil {
				return false
			}
			if n == 0 {
				return len(p.Edges) == 0 && p.TotalCost == 0
			}

			return prim_kruskal.VerifyComponentTree(g, p.Edges, "V0") == nil
		},
		gen.Int64(),
		gen.IntRange(0, 25),
		gen.IntRange(0, 60),
	))

	properties.Property("operation counts match their breakdown", prop.ForAll(
		func(seed int64, n, m int) bool {
			g := randomGraph(seed, n, m)
			p, _ := prim_kruskal.Prim(g)
			k, _ := prim_kruskal.Kruskal(g)

			return p.Operations == p.Counters.Total() &&
				k.Operations == k.Counters.Total() &&
				k.Counters.Unions == int64(g.EdgeCount()) &&
				k.Counters.Finds == 2*int64(g.EdgeCount())
		},
		gen.Int64(),
		gen.IntRange(0, 25),
		gen.IntRange(0, 60),
	))

	properties.Property("determinism: repeated runs agree", prop.ForAll(
		func(seed int64, n, m int) bool {
			g := randomGraph(seed, n, m)
			p1, _ := prim_kruskal.Prim(g)
			p2, _ := prim_kruskal.Prim(g)
			k1, _ := prim_kruskal.Kruskal(g)
			k2, _ := prim_kruskal.Kruskal(g)

			return p1.TotalCost == p2.TotalCost && p1.Operations == p2.Operations &&
				k1.TotalCost == k2.TotalCost && k1.Operations == k2.Operations
		},
		gen.Int64(),
		gen.IntRange(0, 25),
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}
