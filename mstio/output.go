package mstio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// InputStats summarizes the graph a record was computed from.
type InputStats struct {
	Vertices int `json:"vertices" yaml:"vertices"`
	Edges    int `json:"edges" yaml:"edges"`
}

// AlgorithmRecord is the serialized form of prim_kruskal.Result.
type AlgorithmRecord struct {
	MSTEdges        []EdgeDoc `json:"mst_edges" yaml:"mst_edges"`
	TotalCost       float64   `json:"total_cost" yaml:"total_cost"`
	OperationsCount int64     `json:"operations_count" yaml:"operations_count"`
	ExecutionTimeMs float64   `json:"execution_time_ms" yaml:"execution_time_ms"`
}

// ResultRecord holds both engines' results for one graph.
type ResultRecord struct {
	GraphID    int             `json:"graph_id" yaml:"graph_id"`
	InputStats InputStats      `json:"input_stats" yaml:"input_stats"`
	Prim       AlgorithmRecord `json:"prim" yaml:"prim"`
	Kruskal    AlgorithmRecord `json:"kruskal" yaml:"kruskal"`
}

// OutputDocument is the top-level result file.
type OutputDocument struct {
	Results []ResultRecord `json:"results" yaml:"results"`
}

// FromResult converts one engine result.
func FromResult(r prim_kruskal.Result) AlgorithmRecord {
	return AlgorithmRecord{
		MSTEdges:        edgeDocs(r.Edges),
		TotalCost:       r.TotalCost,
		OperationsCount: r.Operations,
		ExecutionTimeMs: r.ElapsedMillis(),
	}
}

// FromComparison converts a Prim/Kruskal comparison into a record.
func FromComparison(c prim_kruskal.Comparison) ResultRecord {
	return ResultRecord{
		GraphID: c.GraphID,
		InputStats: InputStats{
			Vertices: c.Stats.Vertices,
			Edges:    c.Stats.Edges,
		},
		Prim:    FromResult(c.Prim),
		Kruskal: FromResult(c.Kruskal),
	}
}

// NewOutputDocument converts comparisons in order.
func NewOutputDocument(cs []prim_kruskal.Comparison) *OutputDocument {
	doc := &OutputDocument{Results: make([]ResultRecord, len(cs))}
	for i, c := range cs {
		doc.Results[i] = FromComparison(c)
	}

	return doc
}

// WriteOutput encodes doc to w.
// JSON cannot represent infinite costs; such documents fail to encode as JSON.
func WriteOutput(w io.Writer, doc *OutputDocument, format Format) error {
	return encode(w, doc, format)
}

// SaveOutput writes doc to path; the format follows the extension.
func SaveOutput(path string, doc *OutputDocument) error {
	return save(path, doc)
}

// LoadOutput reads a result document previously written by SaveOutput.
func LoadOutput(path string) (*OutputDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mstio: open output: %w", err)
	}
	defer f.Close()

	return ReadOutput(f, FormatFromPath(path))
}

// ReadOutput decodes a result document from r.
func ReadOutput(r io.Reader, format Format) (*OutputDocument, error) {
	var doc OutputDocument
	if err := decode(r, &doc, format); err != nil {
		return nil, err
	}

	return &doc, nil
}
