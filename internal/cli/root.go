// Package cli implements the mstbench command line: graph generation,
// Prim/Kruskal comparison runs and CSV analysis.
package cli

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration and logger into subcommands.
type app struct {
	flags  flagValues
	cfg    Config
	logger *log.Logger
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand assembles the command tree.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:          "mstbench",
		Short:        "Compare Prim's and Kruskal's minimum spanning tree algorithms",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			logger.WithField("config", fmt.Sprintf("%+v", cfg)).Debug("resolved configuration")

			return nil
		},
	}
	rootCmd.SetContext(ctx)
	a.flags.bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newGenerateCommand(a),
		newRunCommand(a),
		newAnalyzeCommand(a),
		newVersionCommand(version),
	)

	return rootCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mstbench version %s\n", version)
			return err
		},
	}
}
