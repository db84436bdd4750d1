package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// printEdges prints "Total: <cost>, Edges: A-B B-C ..." for a result.
func printEdges(res prim_kruskal.Result) {
	fmt.Printf("Total: %.0f, Edges: ", res.TotalCost)
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	fmt.Println()
}

// ExampleKruskal demonstrates Kruskal’s algorithm on a triangle graph.
// The MST is {A–B, B–C} with total weight = 3.
func ExampleKruskal() {
	// 1. Construct the triangle A-B(1), B-C(2), A-C(4).
	g, err := core.NewGraph(1, []string{"A", "B", "C"}, []core.Edge{
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "C", 2),
		core.NewEdge("A", "C", 4),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Run Kruskal’s algorithm.
	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight, the edges and the deterministic counters.
	printEdges(res)
	fmt.Printf("finds=%d unions=%d\n", res.Counters.Finds, res.Counters.Unions)
	// Output:
	// Total: 3, Edges: A-B B-C
	// finds=6 unions=3
}

// ExamplePrim demonstrates Prim’s algorithm on the five-vertex graph
// A–B(1), A–C(4), B–C(2), B–D(5), C–D(3), D–E(6). The MST weighs 12.
func ExamplePrim() {
	g, err := core.NewGraph(1, []string{"A", "B", "C", "D", "E"}, []core.Edge{
		core.NewEdge("A", "B", 1),
		core.NewEdge("A", "C", 4),
		core.NewEdge("B", "C", 2),
		core.NewEdge("B", "D", 5),
		core.NewEdge("C", "D", 3),
		core.NewEdge("D", "E", 6),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := prim_kruskal.Prim(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	printEdges(res)
	fmt.Printf("comparisons=%d extractions=%d decreaseKeys=%d ops=%d\n",
		res.Counters.Comparisons, res.Counters.Extractions, res.Counters.DecreaseKeys, res.Operations)
	// Output:
	// Total: 12, Edges: A-B B-C C-D D-E
	// comparisons=12 extractions=7 decreaseKeys=6 ops=25
}

// ExamplePrim_disconnected shows the partial result on a disconnected graph:
// Prim covers only the first vertex's component, Kruskal every component.
func ExamplePrim_disconnected() {
	g, _ := core.NewGraph(1, []string{"A", "B", "C", "D"}, []core.Edge{
		core.NewEdge("A", "B", 1),
		core.NewEdge("C", "D", 2),
	})

	p, _ := prim_kruskal.Prim(g)
	k, _ := prim_kruskal.Kruskal(g)
	fmt.Println("connected:", g.IsConnected())
	printEdges(p)
	printEdges(k)
	// Output:
	// connected: false
	// Total: 1, Edges: A-B
	// Total: 3, Edges: A-B C-D
}

// ExampleCompute selects the algorithm through options.
func ExampleCompute() {
	g, _ := core.NewGraph(1, []string{"A", "B", "C", "D"}, []core.Edge{
		core.NewEdge("A", "B", 4),
		core.NewEdge("B", "C", 2),
		core.NewEdge("C", "D", 5),
		core.NewEdge("D", "A", 4),
		core.NewEdge("A", "C", 1),
		core.NewEdge("B", "D", 3),
	})

	opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("D"))
	res, err := prim_kruskal.Compute(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %.0f, EdgeCount: %d\n", res.TotalCost, res.EdgeCount())
	// Output: Total: 6, EdgeCount: 3
}
