// Package builder generates benchmark graphs for the MST engines.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and the two weight functions.
//   - Vertex-ID schemes (IDFn implementations):
//     – PrefixedIDFn:      one-based labels ("V1","V2",…), the default.
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – IntRangeWeightFn:  integral weights in [lo,hi].
//     – UniformWeightFn:   uniform ∼U[lo,hi).
//     – ConstantWeightFn:  fixed user-provided value.
//   - Constructors:
//     – RandomConnected:   random spanning tree plus distinct extra edges.
//     – Complete:          K_n.
//     – Suite:             one RandomConnected graph per SuiteSize.
//
// Guarantees:
//
//   - Graphs are always built through core.NewGraph, so every returned graph
//     is valid and immutable.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) for invalid build parameters,
//     wrapping sentinel errors for errors.Is.
//   - Same seed, same graph.
package builder
