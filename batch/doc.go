// Package batch runs tree edit distance over whole collections of structures:
// all-pairs distance matrices computed by a bounded pool of goroutines, the
// thresholded similarity graph over them, and a centrality ranking of the
// skeletons held in a registry.
//
// What
//
//   - PairwiseDistances: upper-triangle fan-out, one row per task, at most
//     Workers tasks in flight (errgroup). The first error or a cancelled
//     context stops the run.
//   - DistanceMatrix: symmetric n×n matrix in flat row-major storage.
//   - SimilarityGraph: a core.Graph over the entry keys with an edge between
//     every two entries strictly closer than the threshold. Components labels
//     its connected components with bfs.BFS walks.
//   - Rank: reduce (optionally) every registry entry to a shape, compute all
//     pairs, and score each entry by its own count plus the counts of its
//     graph neighbours. Each score also carries its component.
//
// Configuration
//
//	Config carries the run parameters and loads from YAML:
//
//	    workers: 8
//	    threshold: 4
//	    level: 5        # 0 keeps the full base-pair tree
//	    top: 20
//	    unlabeled: true
//	    costs: {insert: 1, delete: 1, relabel: 1}
//
// Observability
//
//	WithMetrics attaches Prometheus counters and histograms (NewMetrics);
//	WithLogger attaches a *slog.Logger. Both default to no-ops.
//
// Complexity
//
//	n entries of size s: O(n²) distance computations of O(s²·d²) each,
//	divided over the worker pool; O(n²) memory for the matrix.
package batch
