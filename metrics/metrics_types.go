// Package metrics exposes MST benchmark runs as Prometheus metrics.
//
// Each Registry owns a private prometheus.Registry, so several runs (or
// tests) never collide on metric names. The collected series can be written
// in the node-exporter textfile format with WriteTextfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Algorithm label values.
const (
	LabelPrim    = "prim"
	LabelKruskal = "kruskal"
)

// Registry holds all metrics for a benchmark run
type Registry struct {
	registry *prometheus.Registry

	// Per-algorithm metrics
	RunsTotal     *prometheus.CounterVec
	Operations    *prometheus.HistogramVec
	Duration      *prometheus.HistogramVec
	SelectedEdges *prometheus.HistogramVec
	TotalCost     *prometheus.GaugeVec

	// Per-graph metrics
	GraphsTotal             prometheus.Counter
	CostMismatchTotal       prometheus.Counter
	DisconnectedGraphsTotal prometheus.Counter
}

// NewRegistry creates a Registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	factory := promauto.With(r.registry)

	r.RunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mst_runs_total",
			Help: "Total number of MST computations",
		},
		[]string{"algorithm"},
	)

	r.Operations = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mst_operations",
			Help:    "Instrumented operation count per MST computation",
			Buckets: prometheus.ExponentialBuckets(10, 4, 10),
		},
		[]string{"algorithm"},
	)

	r.Duration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mst_duration_seconds",
			Help:    "Duration of MST computations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"algorithm"},
	)

	r.SelectedEdges = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mst_selected_edges",
			Help:    "Number of edges selected per MST computation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"algorithm"},
	)

	r.TotalCost = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mst_last_total_cost",
			Help: "Total cost of the most recent MST computation",
		},
		[]string{"algorithm"},
	)

	r.GraphsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mst_graphs_total",
			Help: "Total number of graphs compared",
		},
	)

	r.CostMismatchTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mst_cost_mismatch_total",
			Help: "Graphs on which Prim and Kruskal totals disagreed",
		},
	)

	r.DisconnectedGraphsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mst_disconnected_graphs_total",
			Help: "Graphs that were not connected",
		},
	)

	return r
}

// Gatherer returns the underlying gatherer, e.g. for promhttp or testutil.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
