// SPDX-License-Identifier: MIT

// Package ted computes the ordered tree edit distance between structure trees
// with the Zhang–Shasha dynamic program.
//
// What
//
//   - Annotate turns a tree.Tree into an AnnotatedTree: nodes numbered in
//     post-order, the leftmost-descendant index of every node, and the
//     ascending list of keyroots (the highest-numbered node for each distinct
//     leftmost descendant).
//   - Distance runs the dynamic program for every keyroot pair and returns the
//     minimum total cost of inserts, deletes and relabels turning one tree
//     into the other.
//   - Similarity normalises the distance into [0, 1].
//
// Algorithm Outline:
//  1. Annotate both trees; the root is the last post-order index.
//  2. Evaluate every delete cost of A, every insert cost of B and every
//     relabel cost between the label sets of A and B. Reject any negative or
//     NaN value before the table is touched.
//  3. For keyroot i of A (ascending), for keyroot j of B (ascending), fill the
//     forest table of the subforests rooted at lmd(i)..i and lmd(j)..j:
//     fd[x][y] = min(fd[x-1][y] + del, fd[x][y-1] + ins, diag)
//     where diag is fd[x-1][y-1] + relabel when both prefixes are whole
//     subtrees (and the value is stored in the tree table), or the forest
//     prefix before both subtrees plus the already-known tree distance.
//  4. The answer is the tree-table entry of the two roots.
//
// Costs
//
//   - UnitCosts: insert 1, delete 1, relabel 0 for equal labels and 1
//     otherwise. A metric, so Distance is symmetric and obeys the triangle
//     inequality.
//   - UnlabeledCosts: insert 1, delete 1, relabel 0. Compares shape only.
//   - LabelCosts(ins, del, relabel): the same with explicit constants.
//
// Empty trees
//
//	A nil tree or a zero-value tree.Tree has no nodes. The distance to it is
//	the total delete (or insert) cost of the other side; two empty trees are
//	at distance 0.
//
// Complexity (n = |A|, m = |B|)
//
//   - Time:   O(n·m·min(depth(A), leaves(A))·min(depth(B), leaves(B)))
//   - Memory: O(n·m) for the tree table plus one reused (n+1)·(m+1) forest table.
//
// Errors
//
//   - ErrInvalidCosts: a nil cost function, or (wrapped with ErrNegativeCost)
//     a negative or NaN cost.
//   - tree.ErrInternalConsistency: an annotation out of range.
package ted
