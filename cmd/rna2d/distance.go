package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/shape"
	"github.com/katalvlaran/rnashape/ted"
	"github.com/katalvlaran/rnashape/tree"
)

func newDistanceCmd(a *app) *cobra.Command {
	var (
		level      int
		unlabeled  bool
		similarity bool
	)
	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Tree edit distance between two structures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees := make([]*tree.Tree, 2)
			for i, s := range args {
				t, err := tree.Build(s)
				if err != nil {
					return fmt.Errorf("structure %d: %w", i+1, err)
				}
				if level != 0 {
					if t, err = shape.ReduceTree(t, shape.Level(level)); err != nil {
						return err
					}
					a.log.Debug("reduced", "structure", s, "shape", t.Format(dotbracket.Shape))
				}
				trees[i] = t
			}

			costs := ted.UnitCosts()
			if unlabeled {
				costs = ted.UnlabeledCosts()
			}
			if similarity {
				sim, err := ted.Similarity(trees[0], trees[1], costs)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", sim)
				return nil
			}
			d, err := ted.Distance(trees[0], trees[1], costs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().IntVarP(&level, "level", "l", 0, "compare shapes at this level (1, 3 or 5); 0 compares the structures")
	cmd.Flags().BoolVar(&unlabeled, "unlabeled", false, "ignore node roles (relabel cost 0)")
	cmd.Flags().BoolVar(&similarity, "similarity", false, "print the normalised similarity instead")

	return cmd
}
