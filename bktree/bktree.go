// Package bktree indexes structure trees in a BK-tree so that every stored
// tree within a given edit distance of a query can be found without comparing
// against all of them.
//
// Distances are unit-cost tree edit distances (ted.UnitCosts), which form a
// metric on trees with integer values; two trees at distance 0 are the same
// tree and are stored once.
package bktree

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/rnashape/ted"
	"github.com/katalvlaran/rnashape/tree"
)

// ErrNegativeRadius is returned by Search for a negative radius.
var ErrNegativeRadius = errors.New("bktree: radius must be >= 0")

// Index is a BK-tree. It is safe for concurrent use; Insert takes an
// exclusive lock, queries a shared one.
type Index struct {
	mu    sync.RWMutex
	root  *node
	size  int
	costs ted.Costs
}

type node struct {
	key      string
	tree     *ted.AnnotatedTree
	children map[int]*node
}

// Match is a search hit.
type Match struct {
	Key      string
	Distance int
}

// New returns an empty index.
func New() *Index {
	return &Index{costs: ted.UnitCosts()}
}

// Insert stores t under key. It reports false when an identical tree is
// already stored.
func (x *Index) Insert(key string, t *tree.Tree) (bool, error) {
	at, err := ted.Annotate(t)
	if err != nil {
		return false, err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if x.root == nil {
		x.root = &node{key: key, tree: at, children: make(map[int]*node)}
		x.size++
		return true, nil
	}
	cur := x.root
	for {
		d, err := x.distance(at, cur.tree)
		if err != nil {
			return false, err
		}
		if d == 0 {
			return false, nil
		}
		child, ok := cur.children[d]
		if !ok {
			cur.children[d] = &node{key: key, tree: at, children: make(map[int]*node)}
			x.size++
			return true, nil
		}
		cur = child
	}
}

// Search returns every stored tree within radius of t, closest first, ties
// ordered by key.
func (x *Index) Search(t *tree.Tree, radius int) ([]Match, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	q, err := ted.Annotate(t)
	if err != nil {
		return nil, err
	}

	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.root == nil {
		return nil, nil
	}

	var out []Match
	stack := []*node{x.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d, err := x.distance(q, n.tree)
		if err != nil {
			return nil, err
		}
		if d <= radius {
			out = append(out, Match{Key: n.key, Distance: d})
		}
		for cd, child := range n.children {
			if cd >= d-radius && cd <= d+radius {
				stack = append(stack, child)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Key < out[j].Key
	})

	return out, nil
}

// Contains reports whether a tree identical to t is stored.
func (x *Index) Contains(t *tree.Tree) (bool, error) {
	hits, err := x.Search(t, 0)
	if err != nil {
		return false, err
	}

	return len(hits) > 0, nil
}

// Len returns the number of stored trees.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return x.size
}

func (x *Index) distance(a, b *ted.AnnotatedTree) (int, error) {
	d, err := ted.DistanceAnnotated(a, b, x.costs)
	if err != nil {
		return 0, err
	}

	return int(math.Round(d)), nil
}
