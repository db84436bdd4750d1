// Package prim_kruskal defines the instrumented MST result record, configuration
// options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mstbench/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrEmptyRoot indicates that an empty start vertex was passed to PrimFrom.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Counters breaks a run's operation count down by kind. Only the fields of
// the algorithm that produced the Result are non-zero.
type Counters struct {
	// Prim: one per incident edge examined while finalizing a vertex.
	Comparisons int64
	// Prim: one per frontier extraction, stale entries included.
	Extractions int64
	// Prim: one per accepted key improvement (not per heap operation).
	DecreaseKeys int64

	// Kruskal: one per comparator invocation during the edge sort.
	SortComparisons int64
	// Kruskal: disjoint-set Find calls.
	Finds int64
	// Kruskal: disjoint-set Union calls.
	Unions int64
}

// Total returns the sum of all counters.
func (c Counters) Total() int64 {
	return c.Comparisons + c.Extractions + c.DecreaseKeys + c.SortComparisons + c.Finds + c.Unions
}

// Result is the standardized output of one MST engine invocation.
//
// A Result is created fresh per call and is owned by the caller; the engines
// never touch it again.
type Result struct {
	// Edges holds the selected edges in the order the engine accepted them.
	Edges []core.Edge

	// TotalCost is the sum of the selected edge weights.
	TotalCost float64

	// Operations is the engine's instrumentation count:
	// Prim = comparisons + extractions + decrease-keys;
	// Kruskal = sort comparisons + finds + unions.
	Operations int64

	// Elapsed is measured with the monotonic clock around the whole call.
	Elapsed time.Duration

	// Counters breaks Operations down by kind.
	Counters Counters
}

// EdgeCount returns len(r.Edges).
func (r Result) EdgeCount() int { return len(r.Edges) }

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (r Result) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// String renders a one-line human-readable summary.
func (r Result) String() string {
	return fmt.Sprintf("edges=%d cost=%.2f ops=%d time=%.3fms",
		len(r.Edges), r.TotalCost, r.Operations, r.ElapsedMillis())
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: start vertex for Prim; empty means the graph's first vertex. Ignored by Kruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.PrimFrom, prim_kruskal.Kruskal
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph) when Root is empty, PrimFrom(graph, Root) otherwise.
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		if opts.Root == "" {
			return Prim(graph)
		}

		return PrimFrom(graph, opts.Root)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
