package shape

import (
	"strings"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/tree"
)

// Reduce returns the abstract shape of s at the given level.
//
// Implementation:
//   - Stage 1: check the level and pick the grammar (shape symbols present
//     means s is already a shape).
//   - Stage 2: build the tree and rewrite it (see ReduceTree).
//   - Stage 3: print it with [ ] _.
func Reduce(s string, level Level) (string, error) {
	if err := level.Validate(); err != nil {
		return "", err
	}

	if isShape(s) {
		t, err := tree.Parse(s, dotbracket.Shape)
		if err != nil {
			return "", err
		}
		return reduceShape(t, level).Format(dotbracket.Shape), nil
	}

	t, err := tree.Build(s)
	if err != nil {
		return "", err
	}
	out, err := ReduceTree(t, level)
	if err != nil {
		return "", err
	}

	return out.Format(dotbracket.Shape), nil
}

// ReduceTree abstracts a structure tree. The input is left untouched; the
// result is a compact new tree whose paired nodes are helices and whose
// unpaired nodes (level 1 only) stand for whole loops.
func ReduceTree(t *tree.Tree, level Level) (*tree.Tree, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}
	w := t.Clone()
	if w.Len() == 0 {
		return w, nil
	}

	collapseUnpairedRuns(w)
	dropHairpinLoops(w)
	mergeHelices(w)
	if level >= Level3 {
		dropUnpaired(w)
	}
	if level == Level5 {
		mergeHelices(w)
	}

	return w.Compact(), nil
}

// reduceShape applies a level to a tree parsed from a shape string.
func reduceShape(t *tree.Tree, level Level) *tree.Tree {
	collapseUnpairedRuns(t)
	dropHairpinLoops(t)
	if level >= Level3 {
		dropUnpaired(t)
	}
	if level == Level5 {
		mergeHelices(t)
	}

	return t.Compact()
}

func isShape(s string) bool {
	return strings.ContainsAny(s, "[]_")
}
