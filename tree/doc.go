// SPDX-License-Identifier: MIT

// Package tree builds and manipulates ordered rooted trees of RNA secondary
// structure, stored as an index arena.
//
// 🚀 What
//
//	A Tree owns three parallel slices: labels, parent indices and child-index
//	lists. Node 0 is a synthetic root (LabelRoot); every other node is a base
//	pair (LabelPaired) or an unpaired position (LabelUnpaired), or one of the
//	loop labels assigned by package shape (hairpin, interior, bulge, multi,
//	helix). Top-level branches of a structure are the children of the root,
//	so a forest is always represented as a single tree.
//
// ✨ Why an arena
//
//   - No pointer cycles: parent links are plain indices.
//   - Clone is three slice copies.
//   - Every traversal runs on an explicit stack, so depth is bounded by
//     memory, never by the goroutine stack.
//
// ⚙️ Building
//
//	t, err := tree.Build("((..)).")          // dot-bracket
//	s, err := tree.Parse("[_[]]", dotbracket.Shape) // any three-symbol grammar
//
//	Build walks the string with a cursor that starts at the root: an opener
//	adds a paired child and descends into it, an unpaired symbol adds a leaf,
//	a closer moves the cursor back to its parent. The input is validated
//	first, so malformed strings fail with dotbracket.ErrInvalidStructure and
//	never yield a partial tree. An ascent past the root is reported as
//	ErrInternalConsistency.
//
// 🔧 Rewriting
//
//	Contract, Prune and Relabel edit a tree in place; Compact returns a
//	renumbered copy holding only the nodes still reachable from the root.
//	Trees handed to other goroutines (for example through a registry) must be
//	treated as read-only.
//
// Complexity
//
//   - Build, Format, PreOrder, PostOrder, Clone, Compact: O(n).
//   - Contract: O(k) for k siblings of the contracted node.
package tree
