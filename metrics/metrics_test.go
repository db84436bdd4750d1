package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

func comparison(connected bool, primCost, kruskalCost float64) prim_kruskal.Comparison {
	return prim_kruskal.Comparison{
		GraphID: 1,
		Stats:   prim_kruskal.Stats{Vertices: 3, Edges: 3, Connected: connected},
		Prim: prim_kruskal.Result{
			Edges:      []core.Edge{core.NewEdge("A", "B", 1), core.NewEdge("B", "C", 2)},
			TotalCost:  primCost,
			Operations: 12,
			Elapsed:    20 * time.Microsecond,
		},
		Kruskal: prim_kruskal.Result{
			Edges:      []core.Edge{core.NewEdge("A", "B", 1), core.NewEdge("B", "C", 2)},
			TotalCost:  kruskalCost,
			Operations: 9,
			Elapsed:    10 * time.Microsecond,
		},
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.registry)
	assert.NotNil(t, r.RunsTotal)
	assert.NotNil(t, r.Operations)
	assert.NotNil(t, r.Duration)
	assert.NotNil(t, r.CostMismatchTotal)

	// separate registries never share state
	other := NewRegistry()
	r.GraphsTotal.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(r.GraphsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(other.GraphsTotal))
}

func TestObserveComparison(t *testing.T) {
	r := NewRegistry()
	r.ObserveComparison(comparison(true, 3, 3), prim_kruskal.DefaultTolerance)
	r.ObserveComparison(comparison(false, 3, 4), prim_kruskal.DefaultTolerance)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues(LabelPrim)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues(LabelKruskal)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.GraphsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CostMismatchTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.DisconnectedGraphsTotal))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.TotalCost.WithLabelValues(LabelKruskal)))

	assert.Equal(t, 2, testutil.CollectAndCount(r.Operations))

	expected := `
# HELP mst_runs_total Total number of MST computations
# TYPE mst_runs_total counter
mst_runs_total{algorithm="kruskal"} 2
mst_runs_total{algorithm="prim"} 2
`
	require.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected), "mst_runs_total"))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.ObserveComparison(comparison(true, 3, 3), prim_kruskal.DefaultTolerance)

	path := filepath.Join(t.TempDir(), "mst.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `mst_graphs_total 1`)
	assert.Contains(t, out, `mst_operations_count{algorithm="prim"} 1`)
	assert.Contains(t, out, `mst_selected_edges_sum{algorithm="kruskal"} 2`)

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "mst.prom"))
	assert.Error(t, err)
}
