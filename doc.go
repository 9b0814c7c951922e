// Package rnashape is a toolkit for comparing RNA secondary structures:
// from dot-bracket parsing to abstract shapes, tree edit distance and
// ranking of whole suboptimal-structure collections.
//
// 🚀 What is rnashape?
//
//	A small, thread-safe library that brings together:
//		• Dot-bracket: validation, base pairs, stems, mountains, bpseq, aux
//		• Trees: arena-backed structure trees with safe edits
//		• Shapes: abstraction levels 1, 3 and 5, Shapiro loops, granular trees
//		• Distance: Zhang–Shasha tree edit distance with pluggable costs
//		• Collections: skeleton registry, BK-tree search, parallel ranking
//
// ✨ Why choose rnashape?
//
//   - Iterative everywhere: no recursion, deep structures are fine
//   - Plain errors: sentinel values you can match with errors.Is
//   - Concurrency where it pays: batch distances run on a bounded pool
//
// Under the hood, everything is organized under these subpackages:
//
//	dotbracket/: validation and analyses on the raw string
//	tree/      : Tree, labels, parse/format and edits
//	shape/     : shape abstraction, Shapiro labelling, HIT, stem shapes
//	ted/       : AnnotatedTree, Costs, Distance, Similarity
//	registry/  : skeleton deduplication with counts
//	bktree/    : radius queries over stored trees
//	core/      : undirected graph keyed by skeleton
//	bfs/       : breadth-first walks over core graphs
//	batch/     : pairwise matrix, similarity graph, Rank, metrics, config
//	subopt/    : reader for collections of suboptimal structures
//	cmd/rna2d/ : command line front end
//
// Quick example:
//
//	"((..))"  →  root ─ P ─ P ─ U U
//	"(..)"    →  root ─ P ─ U U
//
//	ted.Distance(a, b, ted.UnitCosts()) == 1 (delete the outer pair)
//
//	go get github.com/katalvlaran/rnashape
package rnashape
