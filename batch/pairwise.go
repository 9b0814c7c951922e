package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rnashape/ted"
	"github.com/katalvlaran/rnashape/tree"
)

// PairwiseDistances fills the symmetric distance matrix of trees.
//
// Implementation:
//   - Stage 1: gather options and annotate every tree once.
//   - Stage 2: one errgroup task per row i computes d(i, j) for j > i; the
//     group's limit caps the tasks in flight at Workers. Each task owns the
//     cells of its row pairs, so no locking is needed.
//   - Stage 3: the first failure (or ctx cancellation, checked before every
//     pair) cancels the remaining tasks and is returned.
func PairwiseDistances(ctx context.Context, trees []*tree.Tree, opts ...Option) (*DistanceMatrix, error) {
	o, err := gather(opts)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	n := len(trees)

	ann := make([]*ted.AnnotatedTree, n)
	for i, t := range trees {
		if ann[i], err = ted.Annotate(t); err != nil {
			return nil, fmt.Errorf("batch: annotate tree %d: %w", i, err)
		}
	}
	m, err := NewDistanceMatrix(n)
	if err != nil {
		return nil, err
	}

	o.Logger.Debug("pairwise distances started", "trees", n, "workers", o.Workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			for j := i + 1; j < n; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := ted.DistanceAnnotated(ann[i], ann[j], o.Costs)
				if err != nil {
					if o.Metrics != nil {
						o.Metrics.Errors.Inc()
					}
					return fmt.Errorf("batch: pair (%d,%d): %w", i, j, err)
				}
				m.set(i, j, d)
				if o.Metrics != nil {
					o.Metrics.Pairs.Inc()
					o.Metrics.Distance.Observe(d)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	if o.Metrics != nil {
		o.Metrics.Duration.Observe(elapsed.Seconds())
	}
	o.Logger.Debug("pairwise distances finished", "trees", n, "pairs", n*(n-1)/2, "elapsed", elapsed)

	return m, nil
}
