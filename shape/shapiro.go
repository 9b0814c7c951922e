package shape

import "github.com/katalvlaran/rnashape/tree"

// Shapiro builds the tree of s and relabels every pair by the pattern of its
// children:
//
//	H  no paired child            hairpin
//	R  one paired child, alone    helix
//	B  one paired child, unpaired on one side only
//	I  one paired child, unpaired on both sides
//	M  two or more paired children
//
// Unpaired leaves and the root keep their labels.
func Shapiro(s string) (*tree.Tree, error) {
	t, err := tree.Build(s)
	if err != nil {
		return nil, err
	}

	// labels are decided from the P/U pattern before any node is relabelled
	relabel := make(map[int]tree.Label)
	for _, id := range t.PreOrder() {
		if t.Label(id) == tree.LabelPaired {
			relabel[id] = loopLabel(t, id)
		}
	}
	for id, l := range relabel {
		if err := t.Relabel(id, l); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func loopLabel(t *tree.Tree, id int) tree.Label {
	kids := t.Children(id)
	paired, at := 0, -1
	for i, c := range kids {
		if t.Label(c).IsPaired() {
			paired++
			at = i
		}
	}
	switch {
	case paired == 0:
		return tree.LabelHairpin
	case paired > 1:
		return tree.LabelMulti
	case len(kids) == 1:
		return tree.LabelHelix
	case at > 0 && at < len(kids)-1:
		return tree.LabelInterior
	default:
		return tree.LabelBulge
	}
}
