package mstio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/mstio"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

const sampleJSON = `{
  "graphs": [
    {
      "id": 1,
      "nodes": ["A", "B", "C", "D", "E"],
      "edges": [
        {"from": "A", "to": "B", "weight": 4},
        {"from": "A", "to": "C", "weight": 3},
        {"from": "B", "to": "C", "weight": 2},
        {"from": "B", "to": "D", "weight": 5},
        {"from": "C", "to": "D", "weight": 7},
        {"from": "C", "to": "E", "weight": 8},
        {"from": "D", "to": "E", "weight": 6}
      ]
    },
    {"id": 2, "nodes": [], "edges": []}
  ]
}`

const sampleYAML = `
graphs:
  - id: 3
    nodes: [A, B, C]
    edges:
      - {from: A, to: B, weight: 1.5}
      - {from: B, to: C, weight: -2}
`

func TestReadInput_JSON(t *testing.T) {
	doc, err := mstio.ReadInput(strings.NewReader(sampleJSON), mstio.FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Graphs, 2)

	graphs, err := doc.ToGraphs()
	require.NoError(t, err)
	assert.Equal(t, 1, graphs[0].ID())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, graphs[0].Vertices())
	assert.Equal(t, 7, graphs[0].EdgeCount())
	assert.Equal(t, core.NewEdge("A", "B", 4), graphs[0].Edges()[0])
	assert.Equal(t, 0, graphs[1].VertexCount())
}

func TestReadInput_YAML(t *testing.T) {
	doc, err := mstio.ReadInput(strings.NewReader(sampleYAML), mstio.FormatYAML)
	require.NoError(t, err)

	graphs, err := doc.ToGraphs()
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, 3, graphs[0].ID())
	assert.Equal(t, -2.0, graphs[0].Edges()[1].Weight)
}

func TestReadInput_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing graphs": `{}`,
		"empty node":     `{"graphs":[{"id":1,"nodes":["A",""],"edges":[]}]}`,
		"missing from":   `{"graphs":[{"id":1,"nodes":["A"],"edges":[{"to":"A","weight":1}]}]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mstio.ReadInput(strings.NewReader(in), mstio.FormatJSON)
			assert.ErrorIs(t, err, mstio.ErrInvalidDocument)
		})
	}

	_, err := mstio.ReadInput(strings.NewReader(`{"graphs": [`), mstio.FormatJSON)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, mstio.ErrInvalidDocument)

	_, err = mstio.ReadInput(strings.NewReader(sampleJSON), mstio.Format("xml"))
	assert.ErrorIs(t, err, mstio.ErrUnknownFormat)
}

func TestToGraphs_PropagatesGraphErrors(t *testing.T) {
	in := `{"graphs":[{"id":9,"nodes":["A"],"edges":[{"from":"A","to":"Z","weight":1}]}]}`
	doc, err := mstio.ReadInput(strings.NewReader(in), mstio.FormatJSON)
	require.NoError(t, err)

	_, err = doc.ToGraphs()
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "graphs[0]")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, mstio.FormatYAML, mstio.FormatFromPath("in.yaml"))
	assert.Equal(t, mstio.FormatYAML, mstio.FormatFromPath("IN.YML"))
	assert.Equal(t, mstio.FormatJSON, mstio.FormatFromPath("in.json"))
	assert.Equal(t, mstio.FormatJSON, mstio.FormatFromPath("noext"))
}

func TestSaveLoadInput(t *testing.T) {
	g, err := core.NewGraph(4, []string{"X", "Y"}, []core.Edge{core.NewEdge("X", "Y", 2.25)})
	require.NoError(t, err)
	doc := mstio.NewInputDocument([]*core.Graph{g})

	for _, name := range []string{"graphs.json", "graphs.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, mstio.SaveInput(path, doc))

		back, err := mstio.LoadInput(path)
		require.NoError(t, err, name)
		assert.Equal(t, doc, back, name)
	}

	_, err = mstio.LoadInput(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestOutputDocument(t *testing.T) {
	doc, err := mstio.ReadInput(strings.NewReader(sampleJSON), mstio.FormatJSON)
	require.NoError(t, err)
	graphs, err := doc.ToGraphs()
	require.NoError(t, err)

	c, err := prim_kruskal.Compare(graphs[0])
	require.NoError(t, err)
	out := mstio.NewOutputDocument([]prim_kruskal.Comparison{c})
	rec := out.Results[0]

	assert.Equal(t, 1, rec.GraphID)
	assert.Equal(t, mstio.InputStats{Vertices: 5, Edges: 7}, rec.InputStats)
	assert.Equal(t, 16.0, rec.Prim.TotalCost)
	assert.Equal(t, 16.0, rec.Kruskal.TotalCost)
	assert.Len(t, rec.Prim.MSTEdges, 4)
	assert.Len(t, rec.Kruskal.MSTEdges, 4)
	assert.Equal(t, c.Prim.Operations, rec.Prim.OperationsCount)
	assert.Equal(t, c.Kruskal.ElapsedMillis(), rec.Kruskal.ExecutionTimeMs)

	var buf bytes.Buffer
	require.NoError(t, mstio.WriteOutput(&buf, out, mstio.FormatJSON))
	for _, key := range []string{`"results"`, `"graph_id"`, `"input_stats"`, `"mst_edges"`, `"total_cost"`, `"operations_count"`, `"execution_time_ms"`} {
		assert.Contains(t, buf.String(), key)
	}

	back, err := mstio.ReadOutput(&buf, mstio.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, out, back)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, mstio.SaveOutput(path, out))
	fromDisk, err := mstio.LoadOutput(path)
	require.NoError(t, err)
	assert.Equal(t, out.Results[0].Kruskal.MSTEdges, fromDisk.Results[0].Kruskal.MSTEdges)
}
