// Package report turns Prim/Kruskal comparisons into a CSV table and
// summarizes such tables into a plain-text analysis.
//
// The CSV header is fixed (see Header). Numbers are rendered with the same
// precision the analysis relies on: costs and density with two decimals,
// times with three.
package report
