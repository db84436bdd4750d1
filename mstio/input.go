package mstio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/core"
)

// EdgeDoc is one weighted edge of a description.
type EdgeDoc struct {
	From   string  `json:"from" yaml:"from" validate:"required"`
	To     string  `json:"to" yaml:"to" validate:"required"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// GraphDoc is the description of a single graph.
// Node order is significant: the first node is Prim's start vertex.
type GraphDoc struct {
	ID    int       `json:"id" yaml:"id"`
	Nodes []string  `json:"nodes" yaml:"nodes" validate:"dive,required"`
	Edges []EdgeDoc `json:"edges" yaml:"edges" validate:"dive"`
}

// InputDocument is the top-level input file.
type InputDocument struct {
	Graphs []GraphDoc `json:"graphs" yaml:"graphs" validate:"required,dive"`
}

// ToGraph builds an immutable core.Graph from the description.
func (d GraphDoc) ToGraph() (*core.Graph, error) {
	edges := make([]core.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = core.NewEdge(e.From, e.To, e.Weight)
	}

	return core.NewGraph(d.ID, d.Nodes, edges)
}

// ToGraphs builds every graph of the document in order and stops at the
// first invalid one.
func (d *InputDocument) ToGraphs() ([]*core.Graph, error) {
	out := make([]*core.Graph, 0, len(d.Graphs))
	for i, gd := range d.Graphs {
		g, err := gd.ToGraph()
		if err != nil {
			return nil, fmt.Errorf("mstio: graphs[%d]: %w", i, err)
		}
		out = append(out, g)
	}

	return out, nil
}

// FromGraph describes g.
func FromGraph(g *core.Graph) GraphDoc {
	d := GraphDoc{
		ID:    g.ID(),
		Nodes: g.Vertices(),
		Edges: edgeDocs(g.Edges()),
	}

	return d
}

// NewInputDocument describes graphs in order.
func NewInputDocument(graphs []*core.Graph) *InputDocument {
	doc := &InputDocument{Graphs: make([]GraphDoc, len(graphs))}
	for i, g := range graphs {
		doc.Graphs[i] = FromGraph(g)
	}

	return doc
}

// ReadInput decodes and validates an input document from r.
func ReadInput(r io.Reader, format Format) (*InputDocument, error) {
	var doc InputDocument
	if err := decode(r, &doc, format); err != nil {
		return nil, err
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadInput reads the input document at path; the format follows the extension.
func LoadInput(path string) (*InputDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mstio: open input: %w", err)
	}
	defer f.Close()

	return ReadInput(f, FormatFromPath(path))
}

// WriteInput encodes doc to w. JSON output is indented by two spaces.
func WriteInput(w io.Writer, doc *InputDocument, format Format) error {
	return encode(w, doc, format)
}

// SaveInput writes doc to path; the format follows the extension.
func SaveInput(path string, doc *InputDocument) error {
	return save(path, doc)
}

func edgeDocs(edges []core.Edge) []EdgeDoc {
	out := make([]EdgeDoc, len(edges))
	for i, e := range edges {
		out[i] = EdgeDoc{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

func decode(r io.Reader, v any, format Format) error {
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("mstio: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("mstio: decode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("mstio: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("mstio: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("mstio: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return nil
}

// save encodes into memory first so a failed encode leaves no partial file.
func save(path string, v any) error {
	var buf bytes.Buffer
	if err := encode(&buf, v, FormatFromPath(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("mstio: write %s: %w", path, err)
	}

	return nil
}
