package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	verbose bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "rna2d",
		Short: "Compare RNA secondary structures by tree edit distance",
		Long: `rna2d works on dot-bracket structures: it validates them, extracts pairs
and stems, abstracts them into shapes and ranks collections of suboptimal
structures by tree edit distance.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(
		newValidateCmd(a),
		newPairsCmd(),
		newStemsCmd(),
		newMountainCmd(),
		newShapeCmd(),
		newShapiroCmd(),
		newGranularCmd(),
		newAuxCmd(),
		newHITCmd(),
		newStemShapeCmd(),
		newRandomCmd(),
		newDistanceCmd(a),
		newRankCmd(a),
		newSearchCmd(a),
	)

	return root
}
