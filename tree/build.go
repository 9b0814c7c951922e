// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rnashape/dotbracket"
)

// New returns a tree holding only the synthetic root.
func New() *Tree {
	t := &Tree{}
	t.add(NoParent, LabelRoot)

	return t
}

// Build parses a dot-bracket structure.
func Build(s string) (*Tree, error) {
	return Parse(s, dotbracket.Vienna)
}

// Parse validates s against the alphabet and builds its tree. Openers become
// LabelPaired nodes and unpaired symbols become LabelUnpaired leaves.
func Parse(s string, a dotbracket.Alphabet) (*Tree, error) {
	if err := a.Check(s); err != nil {
		return nil, err
	}

	return parse(s, a)
}

// parse builds without validating. Symbols outside the alphabet are skipped;
// an unmatched closer fails with ErrInternalConsistency.
func parse(s string, a dotbracket.Alphabet) (*Tree, error) {
	t := &Tree{
		labels:   make([]Label, 0, len(s)+1),
		parent:   make([]int, 0, len(s)+1),
		children: make([][]int, 0, len(s)+1),
	}
	cursor := t.add(NoParent, LabelRoot)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case a.Open:
			cursor = t.add(cursor, LabelPaired)
		case a.Unpaired:
			t.add(cursor, LabelUnpaired)
		case a.Close:
			up := t.parent[cursor]
			if up == NoParent {
				return nil, fmt.Errorf("%w: ascent past root at position %d", ErrInternalConsistency, i+1)
			}
			cursor = up
		}
	}

	return t, nil
}

// add appends a node under parent and returns its id.
func (t *Tree) add(parent int, l Label) int {
	id := len(t.labels)
	t.labels = append(t.labels, l)
	t.parent = append(t.parent, parent)
	t.children = append(t.children, nil)
	if parent != NoParent {
		t.children[parent] = append(t.children[parent], id)
	}

	return id
}

// AddChild appends a new node with label l as the last child of parent.
func (t *Tree) AddChild(parent int, l Label) (int, error) {
	if err := t.check(parent); err != nil {
		return NoParent, err
	}

	return t.add(parent, l), nil
}

// Format renders the tree in the given alphabet. Unpaired nodes print the
// unpaired symbol, every other non-root node prints an opener, its subtree
// and a closer. The root itself is not printed.
func (t *Tree) Format(a dotbracket.Alphabet) string {
	if t == nil || t.Len() == 0 {
		return ""
	}

	type frame struct {
		id   int
		next int
	}
	var b strings.Builder
	b.Grow(2 * t.Len())
	stack := []frame{{id: 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := t.children[top.id]
		if top.next == len(kids) {
			if top.id != 0 && t.labels[top.id] != LabelUnpaired {
				b.WriteByte(a.Close)
			}
			stack = stack[:len(stack)-1]
			continue
		}
		c := kids[top.next]
		top.next++
		if t.labels[c] == LabelUnpaired {
			b.WriteByte(a.Unpaired)
			if len(t.children[c]) == 0 {
				continue
			}
		} else {
			b.WriteByte(a.Open)
		}
		stack = append(stack, frame{id: c})
	}

	return b.String()
}

// String renders the tree in dot-bracket notation.
func (t *Tree) String() string {
	return t.Format(dotbracket.Vienna)
}
