// Package disjointset implements an instrumented union-find structure over
// string elements, with path compression and union by rank.
//
// The structure counts its own work: every Find call increments a find
// counter once (not once per hop), and every Union call increments a union
// counter once whether or not a merge happens. Kruskal's engine sums these
// counters into its reported operation count.
package disjointset

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set misuse.
var (
	// ErrNotFound indicates a lookup of an element that was never added.
	ErrNotFound = errors.New("disjointset: element not found")

	// ErrDuplicateElement indicates Add was called twice for the same element.
	ErrDuplicateElement = errors.New("disjointset: duplicate element")
)

// DisjointSet partitions string elements into disjoint sets.
//
// Invariant: following parent pointers from any element terminates at a
// representative whose parent is itself.
//
// A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent map[string]string // element → parent element (self for representatives)
	rank   map[string]int    // representative → upper bound on tree height
	sets   int               // number of disjoint sets

	findOps  int64
	unionOps int64
}

// New returns an empty DisjointSet sized for capacity elements.
// Complexity: O(1) plus map preallocation.
func New(capacity int) *DisjointSet {
	if capacity < 0 {
		capacity = 0
	}

	return &DisjointSet{
		parent: make(map[string]string, capacity),
		rank:   make(map[string]int, capacity),
	}
}

// Add registers v as a new singleton set with rank 0.
//
// Errors:
//   - ErrDuplicateElement if v is already present.
//
// Complexity: O(1).
func (d *DisjointSet) Add(v string) error {
	if _, ok := d.parent[v]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateElement, v)
	}
	d.parent[v] = v
	d.rank[v] = 0
	d.sets++

	return nil
}

// Find returns the representative of v's set and re-points every node on the
// walked path directly at that representative.
//
// The walk is iterative: a first pass locates the root, a second pass
// compresses the path, so long chains never deepen the call stack.
//
// Errors:
//   - ErrNotFound if v was never added. The find counter is still incremented.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(v string) (string, error) {
	d.findOps++

	root, ok := d.parent[v]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, v)
	}
	// 1. Locate the representative.
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2. Compress: point every visited node straight at the root.
	for v != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}

	return root, nil
}

// Union merges the sets containing a and b and reports whether a merge
// happened. A false result means a and b already shared a representative;
// for Kruskal this is the "edge would close a cycle" signal.
//
// The lower-rank tree is attached under the higher-rank representative. On a
// rank tie, b's representative goes under a's and a's rank grows by one.
//
// Errors:
//   - ErrNotFound if either element was never added.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(a, b string) (bool, error) {
	d.unionOps++

	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if rootA == rootB {
		return false, nil
	}

	switch rankA, rankB := d.rank[rootA], d.rank[rootB]; {
	case rankA < rankB:
		d.parent[rootA] = rootB
	case rankA > rankB:
		d.parent[rootB] = rootA
	default:
		d.parent[rootB] = rootA
		d.rank[rootA] = rankA + 1
	}
	d.sets--

	return true, nil
}

// Connected reports whether a and b are in the same set. It costs two Find
// calls on the counters.
func (d *DisjointSet) Connected(a, b string) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// Len returns the number of registered elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }

// FindOps returns how many times Find was called, including the calls made
// internally by Union and Connected.
func (d *DisjointSet) FindOps() int64 { return d.findOps }

// UnionOps returns how many times Union was called.
func (d *DisjointSet) UnionOps() int64 { return d.unionOps }

// Ops returns FindOps + UnionOps.
func (d *DisjointSet) Ops() int64 { return d.findOps + d.unionOps }
