package shape

import (
	"fmt"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/tree"
)

// Granular drops every unpaired position of s and shortens each stem of n
// pairs to ceil(n/g) pairs. Granularity 1 keeps the base-pair tree as is.
//
//	Granular("((((..)))).(.)", 2) == "(())()"
//
// A stem starts at a pair with at most one child whose parent is the root or
// a branching pair, and runs down while each pair has exactly one child; its
// last pair may branch.
func Granular(s string, g int) (string, error) {
	if g < 1 {
		return "", fmt.Errorf("%w: %d", ErrBadGranularity, g)
	}
	skeleton, err := dotbracket.OnlyPaired(s)
	if err != nil {
		return "", err
	}
	t, err := tree.Build(skeleton)
	if err != nil {
		return "", err
	}

	var stems [][]int
	queue := append([]int(nil), t.Forest()...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if startsStem(t, id) {
			stems = append(stems, stemOf(t, id))
		}
		queue = append(queue, t.Children(id)...)
	}

	for _, chain := range stems {
		keep := (len(chain) + g - 1) / g
		for _, id := range chain[keep:] {
			if err := t.Contract(id); err != nil {
				return "", err
			}
		}
	}

	return t.Compact().String(), nil
}

func startsStem(t *tree.Tree, id int) bool {
	if len(t.Children(id)) > 1 {
		return false
	}
	p := t.Parent(id)

	return p == t.Root() || len(t.Children(p)) > 1
}

// stemOf lists the chain from id down to the first node without exactly one
// child, that node included.
func stemOf(t *tree.Tree, id int) []int {
	chain := []int{id}
	for {
		kids := t.Children(id)
		if len(kids) != 1 {
			return chain
		}
		id = kids[0]
		chain = append(chain, id)
	}
}
