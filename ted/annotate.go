// SPDX-License-Identifier: MIT

package ted

import (
	"fmt"

	"github.com/katalvlaran/rnashape/tree"
)

// AnnotatedTree is the read-only view of a tree used by the dynamic program.
// Index i means "the i-th node in post-order"; the root is Len()-1.
type AnnotatedTree struct {
	nodes    []int
	labels   []tree.Label
	lmd      []int
	keyroots []int
}

// Annotate numbers the reachable nodes of t in post-order and derives the
// leftmost-descendant array and the keyroots. A nil or zero-node tree yields
// an empty annotation.
func Annotate(t *tree.Tree) (*AnnotatedTree, error) {
	order := t.PostOrder()
	n := len(order)
	at := &AnnotatedTree{
		nodes:  order,
		labels: make([]tree.Label, n),
		lmd:    make([]int, n),
	}
	if n == 0 {
		return at, nil
	}

	pos := make([]int, t.Len())
	for i, id := range order {
		pos[id] = i
		at.labels[i] = t.Label(id)
		kids := t.Children(id)
		if len(kids) == 0 {
			at.lmd[i] = i
			continue
		}
		at.lmd[i] = at.lmd[pos[kids[0]]]
	}

	// keyroot: the highest index sharing a leftmost descendant
	seen := make([]bool, n)
	for i := n - 1; i >= 0; i-- {
		if !seen[at.lmd[i]] {
			seen[at.lmd[i]] = true
			at.keyroots = append(at.keyroots, i)
		}
	}
	for i, j := 0, len(at.keyroots)-1; i < j; i, j = i+1, j-1 {
		at.keyroots[i], at.keyroots[j] = at.keyroots[j], at.keyroots[i]
	}

	if err := at.verify(); err != nil {
		return nil, err
	}

	return at, nil
}

// verify checks lmd(i) <= i, that every keyroot is in range and that the root
// is the last keyroot.
func (at *AnnotatedTree) verify() error {
	n := len(at.lmd)
	for i, l := range at.lmd {
		if l < 0 || l > i {
			return fmt.Errorf("%w: lmd(%d)=%d", tree.ErrInternalConsistency, i, l)
		}
	}
	for _, k := range at.keyroots {
		if k < 0 || k >= n {
			return fmt.Errorf("%w: keyroot %d of %d", tree.ErrInternalConsistency, k, n)
		}
	}
	if n > 0 && at.keyroots[len(at.keyroots)-1] != n-1 {
		return fmt.Errorf("%w: root is not a keyroot", tree.ErrInternalConsistency)
	}

	return nil
}

// Len returns the number of annotated nodes.
func (at *AnnotatedTree) Len() int { return len(at.lmd) }

// Node returns the arena id of post-order index i.
func (at *AnnotatedTree) Node(i int) int { return at.nodes[i] }

// Label returns the label of post-order index i.
func (at *AnnotatedTree) Label(i int) tree.Label { return at.labels[i] }

// LeftmostDescendant returns the post-order index of the leftmost leaf below i.
func (at *AnnotatedTree) LeftmostDescendant(i int) int { return at.lmd[i] }

// Keyroots returns a copy of the ascending keyroot list.
func (at *AnnotatedTree) Keyroots() []int {
	return append([]int(nil), at.keyroots...)
}
