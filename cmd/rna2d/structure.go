package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/shape"
	"github.com/katalvlaran/rnashape/tree"
)

var errInvalidInput = errors.New("invalid structures in input")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate STRUCTURE...",
		Short: "Check that every structure is balanced dot-bracket",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, s := range args {
				if err := dotbracket.Check(s); err != nil {
					bad++
					a.log.Debug("invalid structure", "structure", s, "err", err)
					fmt.Fprintf(cmd.OutOrStdout(), "invalid\t%s\t%v\n", s, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\n", s)
			}
			if bad > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidInput, bad, len(args))
			}
			return nil
		},
	}
}

func newPairsCmd() *cobra.Command {
	var seq string
	cmd := &cobra.Command{
		Use:   "pairs STRUCTURE",
		Short: "List base pairs (1-based), or a bpseq table with --sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seq != "" {
				out, err := dotbracket.BPSeq(seq, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			pairs, err := dotbracket.BasePairs(args[0])
			if err != nil {
				return err
			}
			for _, p := range pairs {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&seq, "sequence", "s", "", "nucleotide sequence aligned with the structure")

	return cmd
}

func newStemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stems STRUCTURE",
		Short: "List maximal helices, outer pair first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stems, err := dotbracket.Stems(args[0])
			if err != nil {
				return err
			}
			for _, st := range stems {
				pairs := make([]string, st.Len())
				for k := range pairs {
					pairs[k] = dotbracket.Pair{Open: st.Opens[k], Close: st.Closes[k]}.String()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", st.Len(), strings.Join(pairs, " "))
			}
			return nil
		},
	}
}

func newMountainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mountain STRUCTURE [STRUCTURE]",
		Short: "Print the mountain vector, or the distance between two",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mountains := make([][]int, len(args))
			for i, s := range args {
				m, err := dotbracket.Mountain(s)
				if err != nil {
					return err
				}
				mountains[i] = m
			}
			if len(mountains) == 2 {
				d, err := dotbracket.MountainDistance(mountains[0], mountains[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d)
				return nil
			}
			fields := make([]string, len(mountains[0]))
			for i, h := range mountains[0] {
				fields[i] = strconv.Itoa(h)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
			return nil
		},
	}
}

func newShapeCmd() *cobra.Command {
	var level int
	cmd := &cobra.Command{
		Use:   "shape STRUCTURE",
		Short: "Abstract a structure into its shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := shape.Reduce(args[0], shape.Level(level))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&level, "level", "l", int(shape.Level5), "abstraction level (1, 3 or 5)")

	return cmd
}

func newShapiroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapiro STRUCTURE",
		Short: "Print the loop-labelled tree of a structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := shape.Shapiro(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatLoops(t))
			return nil
		},
	}
}

func newAuxCmd() *cobra.Command {
	return newRewriteCmd("aux", "Mark the outer pair of every run of stacked pairs with [ ]", dotbracket.Auxiliary)
}

func newHITCmd() *cobra.Command {
	return newRewriteCmd("hit", "Print the homeomorphically irreducible tree of a structure", shape.HIT)
}

func newStemShapeCmd() *cobra.Command {
	return newRewriteCmd("stemshape", "Print one bracket pair per stem, tagged with its length", shape.StemShape)
}

// newRewriteCmd wraps a one-string-in, one-string-out representation.
func newRewriteCmd(name, short string, rewrite func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " STRUCTURE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := rewrite(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// formatLoops prints every pair as "(" children label ")" and skips unpaired
// nodes, e.g. "((H)R)" for "((...))".
func formatLoops(t *tree.Tree) string {
	type frame struct {
		id   int
		next int
	}
	var b strings.Builder
	stack := []frame{{id: t.Root()}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := t.Children(top.id)
		if top.next == len(kids) {
			if l := t.Label(top.id); l.IsPaired() {
				b.WriteString(l.String())
				b.WriteByte(')')
			}
			stack = stack[:len(stack)-1]
			continue
		}
		c := kids[top.next]
		top.next++
		if !t.Label(c).IsPaired() {
			continue
		}
		b.WriteByte('(')
		stack = append(stack, frame{id: c})
	}

	return b.String()
}

func newGranularCmd() *cobra.Command {
	var g int
	cmd := &cobra.Command{
		Use:   "granular STRUCTURE",
		Short: "Shorten every stem to ceil(n/g) pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := shape.Granular(args[0], g)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&g, "granularity", "g", 2, "granularity, >= 1")

	return cmd
}

func newRandomCmd() *cobra.Command {
	var (
		length, pairs, count int
		seed                 uint64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random valid structures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(seed, seed))
			}
			for i := 0; i < count; i++ {
				s, err := dotbracket.Random(r, length, pairs)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", 50, "structure length")
	cmd.Flags().IntVar(&pairs, "pairs", 10, "number of base pairs")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of structures")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible run")

	return cmd
}
