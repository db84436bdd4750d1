// Package mstbench compares Prim's and Kruskal's minimum spanning tree
// algorithms on the same inputs, counting the work each one does.
//
// What is inside:
//
//	core/         : immutable weighted undirected Graph and Edge, BFS connectivity
//	disjointset/  : union-find with path compression, union by rank and op counters
//	prim_kruskal/ : instrumented Prim (lazy heap) and Kruskal engines, Compare, Verify*
//	builder/      : seeded random connected graphs, complete graphs, benchmark suites
//	mstio/        : JSON/YAML graph descriptions and result documents
//	report/       : comparison CSV and the plain-text analysis built from it
//	metrics/      : Prometheus metrics for comparison runs
//	cmd/mstbench  : CLI: generate, run, analyze, version
//
// Quick example:
//
//	g, _ := core.NewGraph(1, []string{"A", "B", "C"}, []core.Edge{
//		core.NewEdge("A", "B", 1),
//		core.NewEdge("B", "C", 2),
//		core.NewEdge("A", "C", 3),
//	})
//	c, _ := prim_kruskal.Compare(g)
//	fmt.Println(c.Prim.TotalCost, c.Kruskal.TotalCost) // 3 3
//
// Both engines accept empty and disconnected graphs. Prim spans only the
// component of the first vertex; Kruskal returns a spanning forest.
package mstbench
