// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooFewEdges indicates that m < n-1, so no connected graph exists.
var ErrTooFewEdges = errors.New("builder: too few edges for a connected graph")

// ErrTooManyEdges indicates that m exceeds n(n-1)/2, the number of distinct
// non-loop vertex pairs.
var ErrTooManyEdges = errors.New("builder: too many edges for a simple graph")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps a sentinel with the constructor name and a formatted detail.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
