// SPDX-License-Identifier: MIT

package tree

// Clone returns a deep copy of the arena, detached nodes included.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return &Tree{}
	}
	c := &Tree{
		labels:   append([]Label(nil), t.labels...),
		parent:   append([]int(nil), t.parent...),
		children: make([][]int, len(t.children)),
	}
	for i, kids := range t.children {
		if len(kids) > 0 {
			c.children[i] = append([]int(nil), kids...)
		}
	}

	return c
}

// Contract removes node id and splices its children into its parent's child
// list at the position id occupied. The node stays in the arena, detached.
func (t *Tree) Contract(id int) error {
	if err := t.check(id); err != nil {
		return err
	}
	p := t.parent[id]
	if p == NoParent {
		return ErrRootEdit
	}
	at := t.childIndex(p, id)
	if at < 0 {
		return ErrInternalConsistency
	}

	siblings := t.children[p]
	moved := t.children[id]
	kids := make([]int, 0, len(siblings)-1+len(moved))
	kids = append(kids, siblings[:at]...)
	kids = append(kids, moved...)
	kids = append(kids, siblings[at+1:]...)
	t.children[p] = kids
	for _, c := range moved {
		t.parent[c] = p
	}
	t.children[id] = nil
	t.parent[id] = NoParent

	return nil
}

// Prune detaches node id and its subtree from its parent.
func (t *Tree) Prune(id int) error {
	if err := t.check(id); err != nil {
		return err
	}
	p := t.parent[id]
	if p == NoParent {
		return ErrRootEdit
	}
	at := t.childIndex(p, id)
	if at < 0 {
		return ErrInternalConsistency
	}

	siblings := t.children[p]
	kids := make([]int, 0, len(siblings)-1)
	kids = append(kids, siblings[:at]...)
	kids = append(kids, siblings[at+1:]...)
	t.children[p] = kids
	t.parent[id] = NoParent

	return nil
}

// Relabel sets the label of node id.
func (t *Tree) Relabel(id int, l Label) error {
	if err := t.check(id); err != nil {
		return err
	}
	t.labels[id] = l

	return nil
}

// Compact returns a copy holding only the nodes reachable from the root,
// renumbered in pre-order so the root stays at id 0.
func (t *Tree) Compact() *Tree {
	order := t.PreOrder()
	out := &Tree{
		labels:   make([]Label, 0, len(order)),
		parent:   make([]int, 0, len(order)),
		children: make([][]int, 0, len(order)),
	}
	if len(order) == 0 {
		return out
	}
	remap := make(map[int]int, len(order))
	for _, id := range order {
		p := NoParent
		if id != 0 {
			p = remap[t.parent[id]]
		}
		remap[id] = out.add(p, t.labels[id])
	}

	return out
}

func (t *Tree) childIndex(parent, id int) int {
	for i, c := range t.children[parent] {
		if c == id {
			return i
		}
	}

	return -1
}
