package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// RecordResult records one engine run under the given algorithm label.
func (r *Registry) RecordResult(algorithm string, res prim_kruskal.Result) {
	r.RunsTotal.WithLabelValues(algorithm).Inc()
	r.Operations.WithLabelValues(algorithm).Observe(float64(res.Operations))
	r.Duration.WithLabelValues(algorithm).Observe(res.Elapsed.Seconds())
	r.SelectedEdges.WithLabelValues(algorithm).Observe(float64(res.EdgeCount()))
	r.TotalCost.WithLabelValues(algorithm).Set(res.TotalCost)
}

// ObserveComparison records both runs of c plus the per-graph outcome.
func (r *Registry) ObserveComparison(c prim_kruskal.Comparison, tol float64) {
	r.RecordResult(LabelPrim, c.Prim)
	r.RecordResult(LabelKruskal, c.Kruskal)

	r.GraphsTotal.Inc()
	if !c.CostMatch(tol) {
		r.CostMismatchTotal.Inc()
	}
	if !c.Stats.Connected {
		r.DisconnectedGraphsTotal.Inc()
	}
}

// WriteTextfile writes every gathered series to path in the text exposition
// format read by the node-exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}

	return nil
}
