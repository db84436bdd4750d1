package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/mstio"
)

func newGenerateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write a suite of random connected graphs to the input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizes, err := a.cfg.SuiteSizes()
			if err != nil {
				return err
			}
			graphs, err := builder.Suite(sizes, builder.WithSeed(a.cfg.Seed))
			if err != nil {
				return err
			}
			for _, g := range graphs {
				a.logger.WithFields(log.Fields{
					"graph":    g.ID(),
					"vertices": g.VertexCount(),
					"edges":    g.EdgeCount(),
				}).Debug("generated graph")
			}
			if err := mstio.SaveInput(a.cfg.Input, mstio.NewInputDocument(graphs)); err != nil {
				return err
			}
			a.logger.WithField("path", a.cfg.Input).Infof("wrote %d graphs", len(graphs))

			return nil
		},
	}
}
