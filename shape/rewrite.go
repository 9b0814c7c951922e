package shape

import "github.com/katalvlaran/rnashape/tree"

// Tree rewrites shared by the reducers. Each edits t in place through
// tree.Contract / tree.Prune and leaves detached nodes for Compact.

// collapseUnpairedRuns keeps the first unpaired node of every run of adjacent
// unpaired siblings.
func collapseUnpairedRuns(t *tree.Tree) {
	for _, id := range t.PreOrder() {
		kids := t.Children(id)
		var drop []int
		for i := 1; i < len(kids); i++ {
			if t.Label(kids[i]) == tree.LabelUnpaired && t.Label(kids[i-1]) == tree.LabelUnpaired {
				drop = append(drop, kids[i])
			}
		}
		for _, d := range drop {
			_ = t.Prune(d)
		}
	}
}

// dropHairpinLoops removes the loop of a pair whose only child is unpaired,
// turning "(.)" into "()".
func dropHairpinLoops(t *tree.Tree) {
	for _, id := range t.PreOrder() {
		if !t.Label(id).IsPaired() {
			continue
		}
		kids := t.Children(id)
		if len(kids) == 1 && t.Label(kids[0]) == tree.LabelUnpaired {
			_ = t.Prune(kids[0])
		}
	}
}

// dropUnpaired removes every unpaired node.
func dropUnpaired(t *tree.Tree) {
	for _, id := range t.PreOrder() {
		if id != t.Root() && t.Label(id) == tree.LabelUnpaired {
			_ = t.Prune(id)
		}
	}
}

// mergeHelices runs the breadth-first merge: a paired node whose only child
// is paired absorbs it, and is examined again until the rule no longer
// applies; only then are its children queued.
func mergeHelices(t *tree.Tree) {
	queue := append([]int(nil), t.Forest()...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if !t.Label(id).IsPaired() {
			continue
		}
		for {
			kids := t.Children(id)
			if len(kids) != 1 || !t.Label(kids[0]).IsPaired() {
				break
			}
			_ = t.Contract(kids[0])
		}
		queue = append(queue, t.Children(id)...)
	}
}
