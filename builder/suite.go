// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// suite.go: the default benchmark suite of random connected graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// SuiteSize describes one graph of a benchmark suite.
type SuiteSize struct {
	Vertices int
	Edges    int
}

// DefaultSuite lists the graph sizes generated by Suite, smallest first.
var DefaultSuite = []SuiteSize{
	{Vertices: 5, Edges: 10},
	{Vertices: 10, Edges: 40},
	{Vertices: 20, Edges: 150},
	{Vertices: 40, Edges: 600},
}

// Suite builds one RandomConnected graph per entry of sizes, with ids 1..len(sizes).
// A nil sizes falls back to DefaultSuite. All graphs share the option set,
// so a single WithSeed makes the whole suite reproducible.
func Suite(sizes []SuiteSize, opts ...BuilderOption) ([]*core.Graph, error) {
	if sizes == nil {
		sizes = DefaultSuite
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf("Suite", ErrNeedRandSource, "%d graphs", len(sizes))
	}
	// share one stream across graphs instead of reseeding each
	shared := append(append([]BuilderOption(nil), opts...), WithRand(cfg.rng))

	out := make([]*core.Graph, 0, len(sizes))
	for i, s := range sizes {
		g, err := RandomConnected(i+1, s.Vertices, s.Edges, shared...)
		if err != nil {
			return nil, fmt.Errorf("Suite: graph %d: %w", i+1, err)
		}
		out = append(out, g)
	}

	return out, nil
}
