// SPDX-License-Identifier: MIT

package tree

import "errors"

// Sentinel errors.
var (
	// ErrInternalConsistency reports a broken structural invariant, such as a
	// cursor ascending past the root. It is never caused by valid input.
	ErrInternalConsistency = errors.New("tree: internal consistency violation")

	// ErrNodeOutOfRange is returned for an id outside the arena.
	ErrNodeOutOfRange = errors.New("tree: node id out of range")

	// ErrRootEdit is returned when an edit would detach the root.
	ErrRootEdit = errors.New("tree: root cannot be contracted or pruned")
)

// NoParent is the parent index of the root and of detached nodes.
const NoParent = -1

// Label is the role of a node.
type Label uint8

const (
	// LabelRoot marks the synthetic root.
	LabelRoot Label = iota
	// LabelPaired marks a base pair.
	LabelPaired
	// LabelUnpaired marks an unpaired position (or a run of them in a shape).
	LabelUnpaired
	// LabelHairpin marks a pair closing a hairpin loop.
	LabelHairpin
	// LabelInterior marks a pair closing an interior loop.
	LabelInterior
	// LabelBulge marks a pair closing a bulge.
	LabelBulge
	// LabelMulti marks a pair closing a multiloop.
	LabelMulti
	// LabelHelix marks a stacked pair.
	LabelHelix
)

// String returns a short name for the label. Loop labels use the one-letter
// Shapiro codes.
func (l Label) String() string {
	switch l {
	case LabelRoot:
		return "root"
	case LabelPaired:
		return "paired"
	case LabelUnpaired:
		return "unpaired"
	case LabelHairpin:
		return "H"
	case LabelInterior:
		return "I"
	case LabelBulge:
		return "B"
	case LabelMulti:
		return "M"
	case LabelHelix:
		return "R"
	default:
		return "unknown"
	}
}

// IsPaired reports whether the label stands for a base pair, including every
// loop label.
func (l Label) IsPaired() bool {
	return l != LabelRoot && l != LabelUnpaired
}

// Tree is an ordered rooted tree stored as an arena. The zero value is the
// empty tree with no nodes at all, not even a root.
type Tree struct {
	labels   []Label
	parent   []int
	children [][]int
}
