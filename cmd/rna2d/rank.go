package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rnashape/batch"
	"github.com/katalvlaran/rnashape/bktree"
	"github.com/katalvlaran/rnashape/registry"
	"github.com/katalvlaran/rnashape/subopt"
	"github.com/katalvlaran/rnashape/tree"
)

func newRankCmd(a *app) *cobra.Command {
	var (
		configPath string
		threshold  float64
		workers    int
		top        int
		level      int
		labeled    bool
	)
	cmd := &cobra.Command{
		Use:   "rank FILE",
		Short: "Rank the structures of a subopt file by similarity-graph centrality",
		Long: `rank reads every structure of FILE ("-" for stdin), groups them by paired
skeleton and scores each skeleton by its own count plus the counts of all
skeletons closer than the threshold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := batch.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = batch.LoadConfig(configPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("threshold") {
				cfg.Threshold = threshold
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("top") {
				cfg.Top = top
			}
			if flags.Changed("level") {
				cfg.Level = level
			}
			if flags.Changed("labeled") {
				cfg.Unlabeled = !labeled
			}

			reg, err := loadRegistry(a, cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			promReg := prometheus.NewRegistry()
			metrics := batch.NewMetrics(promReg)
			scores, err := batch.Rank(cmd.Context(), reg, cfg, batch.WithLogger(a.log), batch.WithMetrics(metrics))
			if err != nil {
				return err
			}
			logMetrics(a, promReg)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "rank\tcentrality\tcount\tneighbors\tcluster\tstructure")
			for i, s := range scores {
				fmt.Fprintf(out, "%d\t%d\t%d\t%d\t%d\t%s\n", i+1, s.Centrality, s.Count, s.Neighbors, s.Cluster, s.Key)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML run configuration")
	f.Float64VarP(&threshold, "threshold", "t", 4, "exclusive distance bound for neighbours")
	f.IntVarP(&workers, "workers", "w", 0, "concurrent distance tasks (default one per CPU)")
	f.IntVar(&top, "top", 0, "print only the best N skeletons (0 prints all)")
	f.IntVarP(&level, "level", "l", 0, "compare shapes at this level (1, 3 or 5)")
	f.BoolVar(&labeled, "labeled", false, "charge for relabelling nodes")

	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var radius int
	cmd := &cobra.Command{
		Use:   "search FILE QUERY",
		Short: "List the skeletons of FILE within a unit-cost edit radius of QUERY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(a, cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			index := bktree.New()
			for _, e := range reg.Entries() {
				if _, err := index.Insert(e.Key, e.Tree); err != nil {
					return err
				}
			}

			key, err := registry.CanonicalKey(args[1])
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}
			query, err := tree.Build(key)
			if err != nil {
				return err
			}
			hits, err := index.Search(query, radius)
			if err != nil {
				return err
			}
			a.log.Debug("search finished", "indexed", index.Len(), "hits", len(hits))

			out := cmd.OutOrStdout()
			for _, h := range hits {
				e, err := reg.Get(h.Key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\t%d\t%s\n", h.Distance, e.Count, h.Key)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", 2, "maximum edit distance")

	return cmd
}

// loadRegistry reads a subopt file into a registry. Invalid structures are
// logged and skipped.
func loadRegistry(a *app, stdin io.Reader, path string) (*registry.Registry, error) {
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	records, err := subopt.Read(in)
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	skipped := 0
	for _, rec := range records {
		for _, s := range rec.Structures {
			if _, err := reg.Add(s); err != nil {
				skipped++
				a.log.Warn("skipping structure", "record", rec.Name, "structure", s, "err", err)
			}
		}
	}
	a.log.Debug("registry loaded", "records", len(records), "skeletons", reg.Len(),
		"structures", reg.Total(), "skipped", skipped)

	return reg, nil
}

func logMetrics(a *app, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		a.log.Warn("gather metrics", "err", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				a.log.Debug("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				a.log.Debug("metric", "name", mf.GetName(), "count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
		}
	}
}
