// SPDX-License-Identifier: MIT

package tree

import "fmt"

// Len returns the number of nodes in the arena, the root included. Detached
// nodes still count until Compact is called.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.labels)
}

// Root returns the root id, or NoParent for the empty tree.
func (t *Tree) Root() int {
	if t.Len() == 0 {
		return NoParent
	}

	return 0
}

// Label returns the label of node id. id must be in range.
func (t *Tree) Label(id int) Label { return t.labels[id] }

// Parent returns the parent of node id, NoParent for the root.
func (t *Tree) Parent(id int) int { return t.parent[id] }

// Children returns the ordered children of node id. The slice is owned by the
// tree and must not be modified.
func (t *Tree) Children(id int) []int { return t.children[id] }

// Forest returns the top-level branches, i.e. the children of the root.
func (t *Tree) Forest() []int {
	if t.Len() == 0 {
		return nil
	}

	return t.children[0]
}

// IsLeaf reports whether node id has no children.
func (t *Tree) IsLeaf(id int) bool { return len(t.children[id]) == 0 }

// check validates a node id.
func (t *Tree) check(id int) error {
	if id < 0 || id >= t.Len() {
		return fmt.Errorf("%w: %d (len %d)", ErrNodeOutOfRange, id, t.Len())
	}

	return nil
}

// PreOrder lists the nodes reachable from the root, parents before children.
func (t *Tree) PreOrder() []int {
	if t.Len() == 0 {
		return nil
	}
	order := make([]int, 0, t.Len())
	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)
		kids := t.children[id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	return order
}

// PostOrder lists the nodes reachable from the root, children left to right
// before their parent. The root is last.
func (t *Tree) PostOrder() []int {
	if t.Len() == 0 {
		return nil
	}

	type frame struct {
		id   int
		next int
	}
	order := make([]int, 0, t.Len())
	stack := []frame{{id: 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := t.children[top.id]
		if top.next < len(kids) {
			c := kids[top.next]
			top.next++
			stack = append(stack, frame{id: c})
			continue
		}
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Size returns the number of nodes reachable from the root.
func (t *Tree) Size() int { return len(t.PreOrder()) }

// Depth returns the largest number of edges from the root to a node.
func (t *Tree) Depth() int {
	if t.Len() == 0 {
		return 0
	}
	type item struct{ id, depth int }
	best := 0
	stack := []item{{0, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > best {
			best = it.depth
		}
		for _, c := range t.children[it.id] {
			stack = append(stack, item{c, it.depth + 1})
		}
	}

	return best
}

// Leaves lists reachable leaves in left-to-right order.
func (t *Tree) Leaves() []int {
	var out []int
	for _, id := range t.PreOrder() {
		if id != 0 && t.IsLeaf(id) {
			out = append(out, id)
		}
	}

	return out
}

// Count returns the number of reachable nodes carrying label l.
func (t *Tree) Count(l Label) int {
	n := 0
	for _, id := range t.PreOrder() {
		if t.labels[id] == l {
			n++
		}
	}

	return n
}

// Equal reports whether two trees have the same shape and labels, ignoring
// node numbering and detached nodes.
func (t *Tree) Equal(o *Tree) bool {
	a, b := t.PreOrder(), o.PreOrder()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if t.labels[a[i]] != o.labels[b[i]] || len(t.children[a[i]]) != len(o.children[b[i]]) {
			return false
		}
	}

	return true
}
