package batch

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/rnashape/registry"
	"github.com/katalvlaran/rnashape/shape"
	"github.com/katalvlaran/rnashape/tree"
)

// Score is the ranking of one registry entry.
type Score struct {
	Key string
	// Count is the number of observations of Key.
	Count int
	// Neighbors is the number of entries closer than the threshold.
	Neighbors int
	// Centrality is Count plus the counts of all neighbours.
	Centrality int
	// Cluster is the connected component of Key in the similarity graph.
	Cluster int
}

// Rank scores every entry of reg by centrality in the similarity graph and
// returns the scores best first. Ties keep registry key order. cfg supplies
// workers and costs; opts are applied after them and may override both.
func Rank(ctx context.Context, reg *registry.Registry, cfg Config, opts ...Option) ([]Score, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	entries := reg.Entries()
	keys := make([]string, len(entries))
	trees := make([]*tree.Tree, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		trees[i] = e.Tree
		if cfg.Level != 0 {
			reduced, err := shape.ReduceTree(e.Tree, shape.Level(cfg.Level))
			if err != nil {
				return nil, fmt.Errorf("batch: reduce %q: %w", e.Key, err)
			}
			trees[i] = reduced
		}
	}

	all := append([]Option{WithWorkers(cfg.Workers), WithCosts(cfg.EditCosts())}, opts...)
	o, err := gather(all)
	if err != nil {
		return nil, err
	}
	m, err := PairwiseDistances(ctx, trees, all...)
	if err != nil {
		return nil, err
	}
	g, err := SimilarityGraph(keys, m, cfg.Threshold)
	if err != nil {
		return nil, err
	}

	comp, clusters, err := g.Components(ctx)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("similarity graph built", "entries", g.Len(), "edges", len(g.Edges), "clusters", clusters)

	scores := make([]Score, len(entries))
	for i, e := range entries {
		s := Score{Key: e.Key, Count: e.Count, Neighbors: g.Degree(i), Centrality: e.Count, Cluster: comp[i]}
		for _, j := range g.Neighbors(i) {
			s.Centrality += entries[j].Count
		}
		scores[i] = s
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Centrality > scores[j].Centrality
	})
	if cfg.Top > 0 && len(scores) > cfg.Top {
		scores = scores[:cfg.Top]
	}

	return scores, nil
}
