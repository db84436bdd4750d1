package prim_kruskal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/mstbench/core"
	"golang.org/x/sync/errgroup"
)

// DefaultTolerance is the absolute cost difference under which two MST
// totals are considered equal.
const DefaultTolerance = 1e-6

// Stats describes the input graph of a Comparison.
type Stats struct {
	Vertices  int
	Edges     int
	Density   float64
	Connected bool
}

// Comparison pairs the Prim and Kruskal results for one graph.
type Comparison struct {
	GraphID int
	Stats   Stats
	Prim    Result
	Kruskal Result
}

// Compare runs Prim then Kruskal on graph and records input statistics.
// Connectivity is evaluated outside either engine's timing bracket.
//
// Error Conditions:
//   - ErrInvalidGraph: graph is nil.
func Compare(graph *core.Graph) (Comparison, error) {
	if graph == nil {
		return Comparison{}, ErrInvalidGraph
	}
	p, err := Prim(graph)
	if err != nil {
		return Comparison{}, err
	}
	k, err := Kruskal(graph)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		GraphID: graph.ID(),
		Stats: Stats{
			Vertices:  graph.VertexCount(),
			Edges:     graph.EdgeCount(),
			Density:   graph.Density(),
			Connected: graph.IsConnected(),
		},
		Prim:    p,
		Kruskal: k,
	}, nil
}

// CompareAll runs Compare on every graph, at most parallel at a time, and
// returns the comparisons in input order. parallel < 1 means sequential.
//
// Concurrent runs are safe because neither engine mutates the graph, but
// they compete for CPU, so timings are only comparable at parallel == 1.
// Cancelling ctx stops scheduling further graphs.
func CompareAll(ctx context.Context, graphs []*core.Graph, parallel int) ([]Comparison, error) {
	if parallel < 1 {
		parallel = 1
	}
	out := make([]Comparison, len(graphs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, graph := range graphs {
		if gctx.Err() != nil {
			break
		}
		i, graph := i, graph
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := Compare(graph)
			if err != nil {
				return fmt.Errorf("prim_kruskal: graph #%d: %w", i, err)
			}
			out[i] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// CostMatch reports whether both totals agree within tol.
// Two infinite totals of the same sign match.
func (c Comparison) CostMatch(tol float64) bool {
	if c.Prim.TotalCost == c.Kruskal.TotalCost {
		return true
	}

	return math.Abs(c.Prim.TotalCost-c.Kruskal.TotalCost) < tol
}

// TimeDifference returns Prim.Elapsed - Kruskal.Elapsed.
func (c Comparison) TimeDifference() time.Duration {
	return c.Prim.Elapsed - c.Kruskal.Elapsed
}

// OperationDifference returns Prim.Operations - Kruskal.Operations.
func (c Comparison) OperationDifference() int64 {
	return c.Prim.Operations - c.Kruskal.Operations
}

// KruskalFaster reports whether Kruskal finished in strictly less time.
func (c Comparison) KruskalFaster() bool {
	return c.Kruskal.Elapsed < c.Prim.Elapsed
}

// String renders the comparison over three lines.
func (c Comparison) String() string {
	return fmt.Sprintf("Graph %d: V=%d, E=%d\n  Prim: %s\n  Kruskal: %s",
		c.GraphID, c.Stats.Vertices, c.Stats.Edges, c.Prim, c.Kruskal)
}
