// Package mstio reads graph descriptions and writes MST result documents.
//
// Input documents list graphs by id, ordered node labels and weighted edges:
//
//	{"graphs": [{"id": 1, "nodes": ["A","B"], "edges": [{"from":"A","to":"B","weight":4}]}]}
//
// The same shape is accepted as YAML. The format is chosen from the file
// extension (.yaml/.yml for YAML, anything else for JSON) or passed
// explicitly to the stream functions.
//
// Documents are checked with struct-tag validation before any graph is
// built; graph-level invariants (duplicate labels, unknown endpoints) are
// then enforced by core.NewGraph.
//
// Output documents carry one record per graph with the Prim and Kruskal
// results side by side, mirroring prim_kruskal.Comparison.
package mstio
