package batch

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/rnashape/bfs"
	"github.com/katalvlaran/rnashape/core"
)

// ErrDuplicateKey is returned by SimilarityGraph when two entries share a key.
var ErrDuplicateKey = errors.New("batch: duplicate key")

// emptyKeyID stands in for the empty skeleton, which core rejects as a
// vertex ID. Canonical keys never contain '.'.
const emptyKeyID = "."

// Edge links two entries of a similarity graph.
type Edge struct {
	From     int
	To       int
	Distance float64
}

// Graph is an undirected similarity graph over indexed entries. Vertices of
// the underlying core.Graph are the entry keys.
type Graph struct {
	Keys  []string
	Edges []Edge

	g     *core.Graph
	index map[string]int // vertex ID -> entry index
}

func vertexID(key string) string {
	if key == "" {
		return emptyKeyID
	}
	return key
}

// SimilarityGraph links every pair i < j with m(i, j) < threshold. keys names
// the entries, must match the matrix order and must be unique.
func SimilarityGraph(keys []string, m *DistanceMatrix, threshold float64) (*Graph, error) {
	if len(keys) != m.N() {
		return nil, fmt.Errorf("%w: %d keys for %d rows", ErrDimensionMismatch, len(keys), m.N())
	}
	n := m.N()
	g := &Graph{Keys: keys, g: core.NewGraph(), index: make(map[string]int, n)}
	for i, k := range keys {
		id := vertexID(k)
		if _, dup := g.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		if err := g.g.AddVertex(id); err != nil {
			return nil, err
		}
		g.index[id] = i
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m.data[i*n+j]
			if d >= threshold {
				continue
			}
			if _, err := g.g.AddEdge(vertexID(keys[i]), vertexID(keys[j])); err != nil {
				return nil, fmt.Errorf("batch: link %q %q: %w", keys[i], keys[j], err)
			}
			g.Edges = append(g.Edges, Edge{From: i, To: j, Distance: d})
		}
	}

	return g, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.Keys) }

// Degree returns the number of neighbours of vertex i.
func (g *Graph) Degree(i int) int {
	d, err := g.g.Degree(vertexID(g.Keys[i]))
	if err != nil {
		return 0
	}
	return d
}

// Neighbors returns the neighbours of vertex i in ascending index order.
func (g *Graph) Neighbors(i int) []int {
	ids, err := g.g.NeighborIDs(vertexID(g.Keys[i]))
	if err != nil {
		return nil
	}
	out := make([]int, len(ids))
	for k, id := range ids {
		out[k] = g.index[id]
	}
	sort.Ints(out)

	return out
}

// Components labels the connected components of g. comp[i] is the component
// of vertex i; components are numbered 0..count-1 in order of their smallest
// vertex. Each unlabelled vertex seeds one bfs.BFS walk; ctx cancels it.
func (g *Graph) Components(ctx context.Context) (comp []int, count int, err error) {
	n := g.Len()
	comp = make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	for s := 0; s < n; s++ {
		if comp[s] >= 0 {
			continue
		}
		label := count
		_, err := bfs.BFS(g.g, vertexID(g.Keys[s]),
			bfs.WithContext(ctx),
			bfs.WithOnVisit(func(id string, _ int) error {
				comp[g.index[id]] = label
				return nil
			}))
		if err != nil {
			return nil, 0, err
		}
		count++
	}

	return comp, count, nil
}
