package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/mstio"
	"github.com/katalvlaran/mstbench/report"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(context.Background(), "1.2.3")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mstbench version 1.2.3\n", out)
}

func TestGenerateRunAnalyze(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graphs.yaml")
	output := filepath.Join(dir, "results.json")
	csvPath := filepath.Join(dir, "cmp.csv")
	promPath := filepath.Join(dir, "mst.prom")

	_, _, err := execute(t, "generate", "--input", input, "--seed", "11", "--sizes", "5x10,12x30")
	require.NoError(t, err)

	doc, err := mstio.LoadInput(input)
	require.NoError(t, err)
	require.Len(t, doc.Graphs, 2)
	assert.Len(t, doc.Graphs[1].Nodes, 12)
	assert.Len(t, doc.Graphs[1].Edges, 30)

	out, stderr, err := execute(t, "run",
		"--input", input, "--output", output, "--csv", csvPath, "--metrics", promPath,
		"--verify", "--parallel", "2", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Graph 1: V=5, E=10")
	assert.Contains(t, out, "Graph 2: V=12, E=30")
	assert.Contains(t, stderr, `"msg":"wrote results"`)

	results, err := mstio.LoadOutput(output)
	require.NoError(t, err)
	require.Len(t, results.Results, 2)
	for _, r := range results.Results {
		assert.InDelta(t, r.Prim.TotalCost, r.Kruskal.TotalCost, 1e-9)
		assert.Len(t, r.Prim.MSTEdges, r.InputStats.Vertices-1)
	}

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	rows, err := report.ReadCSV(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].CostMatch)

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "mst_graphs_total 2")

	out, _, err = execute(t, "analyze", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Matches:    2 / 2 (100.0%)")
	assert.Contains(t, out, "Small (< 50V): 2 graphs")
}

func TestRun_DisconnectedWarns(t *testing.T) {
	input := writeFile(t, "g.json", `{"graphs":[{"id":8,"nodes":["A","B","C","D"],
		"edges":[{"from":"A","to":"B","weight":1},{"from":"C","to":"D","weight":2}]}]}`)
	output := filepath.Join(t.TempDir(), "out.json")

	_, stderr, err := execute(t, "run", "-i", input, "-o", output, "--verify")
	require.NoError(t, err)
	assert.Contains(t, stderr, "graph is disconnected")
	assert.Contains(t, stderr, "cost mismatch")

	results, err := mstio.LoadOutput(output)
	require.NoError(t, err)
	assert.Len(t, results.Results[0].Prim.MSTEdges, 1)
	assert.Len(t, results.Results[0].Kruskal.MSTEdges, 2)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "-i", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", `{"graphs":[{"id":1,"nodes":["A","A"],"edges":[]}]}`)
	_, _, err = execute(t, "run", "-i", bad, "-o", filepath.Join(t.TempDir(), "o.json"))
	assert.Error(t, err)
}

func TestAnalyze_NeedsFile(t *testing.T) {
	_, _, err := execute(t, "analyze")
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestConfigFileDrivesRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	output := filepath.Join(dir, "out.json")
	cfgPath := writeFile(t, "mstbench.yaml", "input: "+input+"\noutput: "+output+"\nseed: 3\nsizes: [6x9]\n")

	_, _, err := execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	_, _, err = execute(t, "run", "-c", cfgPath)
	require.NoError(t, err)

	results, err := mstio.LoadOutput(output)
	require.NoError(t, err)
	require.Len(t, results.Results, 1)
	assert.Equal(t, 6, results.Results[0].InputStats.Vertices)
}
