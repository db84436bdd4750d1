package disjointset_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mstbench/disjointset"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDisjointSetInvariants checks the structure against a naive labelling
// for random union sequences.
func TestDisjointSetInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const n = 12

	// build runs the pairs through both the DisjointSet and a naive
	// relabelling partition, returning both.
	build := func(pairs []int) (*disjointset.DisjointSet, []int, int) {
		d := disjointset.New(n)
		label := make([]int, n)
		for i := 0; i < n; i++ {
			_ = d.Add(fmt.Sprintf("e%d", i))
			label[i] = i
		}
		merges := 0
		for i := 0; i+1 < len(pairs); i += 2 {
			a, b := pairs[i]%n, pairs[i+1]%n
			ok, _ := d.Union(fmt.Sprintf("e%d", a), fmt.Sprintf("e%d", b))
			if ok {
				merges++
			}
			if la, lb := label[a], label[b]; la != lb {
				for k := range label {
					if label[k] == lb {
						label[k] = la
					}
				}
			}
		}

		return d, label, merges
	}

	properties.Property("same set iff same naive label", prop.ForAll(
		func(pairs []int) bool {
			d, label, _ := build(pairs)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					same, err := d.Connected(fmt.Sprintf("e%d", i), fmt.Sprintf("e%d", j))
					if err != nil || same != (label[i] == label[j]) {
						return false
					}
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, n-1)),
	))

	properties.Property("sets decrease exactly once per successful union", prop.ForAll(
		func(pairs []int) bool {
			d, _, merges := build(pairs)

			return d.Sets() == n-merges && d.UnionOps() == int64(len(pairs)/2)
		},
		gen.SliceOf(gen.IntRange(0, n-1)),
	))

	properties.Property("find is idempotent", prop.ForAll(
		func(pairs []int) bool {
			d, _, _ := build(pairs)
			for i := 0; i < n; i++ {
				r1, _ := d.Find(fmt.Sprintf("e%d", i))
				r2, _ := d.Find(r1)
				if r1 != r2 {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, n-1)),
	))

	properties.TestingRun(t)
}
