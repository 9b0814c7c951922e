// Package shape abstracts secondary structures into RNA shapes and other
// coarse tree representations.
//
// What
//
//   - Reduce / ReduceTree: abstract shapes at levels 1, 3 and 5.
//   - Shapiro: relabel each pair by the loop it closes (hairpin, interior
//     loop, bulge, multiloop, helix).
//   - Granular: drop unpaired positions and shorten every stem of n pairs to
//     ceil(n/g) pairs.
//   - HIT: the homeomorphically irreducible tree, one "(... Pn)" node per
//     run of n stacked pairs and one "(Un)" leaf per run of n unpaired
//     positions, built from dotbracket.Auxiliary.
//   - StemShape / StemTree: one bracket per stem tagged with its length
//     ("[[]3[]2]2"), and the matching tree with a chain of paired nodes per
//     stem.
//
// Levels
//
//	Level 1  runs of unpaired positions become one '_'; a hairpin loop
//	         disappears; stacked pairs with nothing between them merge into
//	         one bracket. Bulge and interior-loop boundaries stay visible.
//	Level 3  level 1 without any '_'.
//	Level 5  level 3 after merging every pair whose only child is a pair, so
//	         each bracket is a helix between two branching points.
//
//	"..(((.....)))..": level 1 "_[]_", level 3 "[]", level 5 "[]"
//	"((.((...))))"   : level 1 "[_[]]", level 3 "[[]]", level 5 "[]"
//
// Input
//
//	Reduce accepts dot-bracket ( ) . or an existing shape [ ] _. A shape is
//	taken as already abstracted: its brackets are helices, so they are never
//	merged again at levels 1 and 3. Reduce(Reduce(s, L), L) == Reduce(s, L)
//	for every level.
//
// Algorithm (level 5 merge)
//
//	Breadth-first from the top-level branches. A paired node with exactly one
//	child, itself paired, absorbs that child's children; the node is then
//	examined again before the queue moves on. Otherwise its children are
//	enqueued.
//
// Errors
//
//   - ErrUnsupportedLevel for any level other than 1, 3, 5.
//   - ErrBadGranularity for a granularity below 1.
//   - dotbracket.ErrInvalidStructure for malformed input.
package shape
