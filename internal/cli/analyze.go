package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/report"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [csv file]",
		Short: "Summarize a comparison CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.CSV
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("%w: no csv file given (use --csv or an argument)", ErrBadConfig)
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cli: open csv: %w", err)
			}
			defer f.Close()

			rows, err := report.ReadCSV(f)
			if err != nil {
				return err
			}
			a.logger.WithField("path", path).Debugf("read %d rows", len(rows))

			summary := report.Analyze(rows)
			if !summary.AllCostsMatch() {
				a.logger.Warnf("%d graphs with mismatched costs", len(summary.Mismatches))
			}

			return summary.WriteText(cmd.OutOrStdout())
		},
	}
}
