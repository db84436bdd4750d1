package cli

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/metrics"
	"github.com/katalvlaran/mstbench/mstio"
	"github.com/katalvlaran/mstbench/prim_kruskal"
	"github.com/katalvlaran/mstbench/report"
)

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run Prim and Kruskal on every input graph and write the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := mstio.LoadInput(a.cfg.Input)
			if err != nil {
				return err
			}
			graphs, err := doc.ToGraphs()
			if err != nil {
				return err
			}
			a.logger.WithField("path", a.cfg.Input).Infof("loaded %d graphs", len(graphs))

			comparisons, err := prim_kruskal.CompareAll(cmd.Context(), graphs, a.cfg.Parallel)
			if err != nil {
				return err
			}
			if a.cfg.Parallel > 1 {
				a.logger.Warn("graphs ran concurrently; timings are not comparable")
			}

			out := cmd.OutOrStdout()
			for i, c := range comparisons {
				a.inspect(c)
				if a.cfg.Verify {
					if err := verify(graphs[i], c); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(out, c); err != nil {
					return err
				}
			}

			return a.write(comparisons)
		},
	}
}

// inspect logs per-graph diagnostics.
func (a *app) inspect(c prim_kruskal.Comparison) {
	entry := a.logger.WithFields(log.Fields{
		"graph":       c.GraphID,
		"prim_ops":    c.Prim.Operations,
		"kruskal_ops": c.Kruskal.Operations,
	})
	if !c.Stats.Connected {
		entry.Warnf("graph is disconnected: prim selected %d edges, kruskal %d, of %d vertices",
			c.Prim.EdgeCount(), c.Kruskal.EdgeCount(), c.Stats.Vertices)
	}
	if !c.CostMatch(a.cfg.Tolerance) {
		entry.Warnf("cost mismatch: prim=%.2f kruskal=%.2f", c.Prim.TotalCost, c.Kruskal.TotalCost)
	}
	entry.Debug("compared")
}

// verify checks both results structurally against the graph they came from.
func verify(g *core.Graph, c prim_kruskal.Comparison) error {
	if root, ok := g.First(); ok {
		if err := prim_kruskal.VerifyComponentTree(g, c.Prim.Edges, root); err != nil {
			return fmt.Errorf("graph %d: prim: %w", c.GraphID, err)
		}
	}
	if err := prim_kruskal.VerifySpanningForest(g, c.Kruskal.Edges); err != nil {
		return fmt.Errorf("graph %d: kruskal: %w", c.GraphID, err)
	}

	return nil
}

// write emits the result document, then the optional CSV and metrics files.
func (a *app) write(comparisons []prim_kruskal.Comparison) error {
	if err := mstio.SaveOutput(a.cfg.Output, mstio.NewOutputDocument(comparisons)); err != nil {
		return err
	}
	a.logger.WithField("path", a.cfg.Output).Info("wrote results")

	if a.cfg.CSV != "" {
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf, report.Rows(comparisons, a.cfg.Tolerance)); err != nil {
			return err
		}
		if err := os.WriteFile(a.cfg.CSV, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("cli: write csv: %w", err)
		}
		a.logger.WithField("path", a.cfg.CSV).Info("wrote comparison csv")
	}

	if a.cfg.Metrics != "" {
		reg := metrics.NewRegistry()
		for _, c := range comparisons {
			reg.ObserveComparison(c, a.cfg.Tolerance)
		}
		if err := reg.WriteTextfile(a.cfg.Metrics); err != nil {
			return err
		}
		a.logger.WithField("path", a.cfg.Metrics).Info("wrote metrics")
	}

	return nil
}
