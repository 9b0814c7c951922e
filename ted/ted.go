// SPDX-License-Identifier: MIT

package ted

import (
	"github.com/katalvlaran/rnashape/tree"
)

// Distance returns the tree edit distance between a and b under costs.
//
// Example:
//
//	a, _ := tree.Build("(())")
//	b, _ := tree.Build("()()")
//	d, err := ted.Distance(a, b, ted.UnitCosts()) // d == 2
func Distance(a, b *tree.Tree, costs Costs) (float64, error) {
	if err := costs.validate(); err != nil {
		return 0, err
	}
	A, err := Annotate(a)
	if err != nil {
		return 0, err
	}
	B, err := Annotate(b)
	if err != nil {
		return 0, err
	}

	return DistanceAnnotated(A, B, costs)
}

// DistanceAnnotated is Distance over trees that are already annotated, so a
// caller comparing one tree against many annotates it once.
func DistanceAnnotated(A, B *AnnotatedTree, costs Costs) (float64, error) {
	if err := costs.validate(); err != nil {
		return 0, err
	}
	e, err := newEngine(A, B, costs)
	if err != nil {
		return 0, err
	}

	return e.run(), nil
}

// engine holds every cost the run can consult plus the two DP tables.
type engine struct {
	A, B *AnnotatedTree
	del  []float64 // del[i]: delete post-order node i of A
	ins  []float64 // ins[j]: insert post-order node j of B
	upd  []float64 // upd[ra[i]*cols+cb[j]]: relabel i of A onto j of B
	ra   []int
	cb   []int
	cols int
	td   []float64 // tree distances, n*m row-major
	fd   []float64 // forest distances, (n+1)*(m+1) row-major, reused
}

// newEngine evaluates and checks every cost before any table is filled.
func newEngine(A, B *AnnotatedTree, c Costs) (*engine, error) {
	n, m := A.Len(), B.Len()
	e := &engine{A: A, B: B, del: make([]float64, n), ins: make([]float64, m)}
	for i := 0; i < n; i++ {
		v := c.Delete(A.labels[i])
		if err := checkCost("delete("+A.labels[i].String()+")", v); err != nil {
			return nil, err
		}
		e.del[i] = v
	}
	for j := 0; j < m; j++ {
		v := c.Insert(B.labels[j])
		if err := checkCost("insert("+B.labels[j].String()+")", v); err != nil {
			return nil, err
		}
		e.ins[j] = v
	}
	if n == 0 || m == 0 {
		return e, nil
	}

	// relabel costs are evaluated once per distinct label pair
	rows, ra := compactLabels(A.labels)
	cols, cb := compactLabels(B.labels)
	e.ra, e.cb, e.cols = ra, cb, len(cols)
	e.upd = make([]float64, len(rows)*len(cols))
	for r, la := range rows {
		for k, lb := range cols {
			v := c.Update(la, lb)
			if err := checkCost("update("+la.String()+","+lb.String()+")", v); err != nil {
				return nil, err
			}
			e.upd[r*len(cols)+k] = v
		}
	}
	e.td = make([]float64, n*m)
	e.fd = make([]float64, (n+1)*(m+1))

	return e, nil
}

// compactLabels returns the distinct labels in first-seen order and, for each
// input position, the index of its label in that list.
func compactLabels(labels []tree.Label) ([]tree.Label, []int) {
	var (
		distinct []tree.Label
		index    [256]int
		out      = make([]int, len(labels))
	)
	for i := range index {
		index[i] = -1
	}
	for i, l := range labels {
		if index[l] < 0 {
			index[l] = len(distinct)
			distinct = append(distinct, l)
		}
		out[i] = index[l]
	}

	return distinct, out
}

func (e *engine) run() float64 {
	n, m := e.A.Len(), e.B.Len()
	switch {
	case n == 0:
		return sum(e.ins)
	case m == 0:
		return sum(e.del)
	}
	for _, i := range e.A.keyroots {
		for _, j := range e.B.keyroots {
			e.treeDist(i, j)
		}
	}

	return e.td[(n-1)*m+(m-1)]
}

// treeDist fills the forest table for keyroots i and j. Row x of the table is
// the forest lmd(i)..x+ioff of A, column y the forest lmd(j)..y+joff of B;
// row and column 0 are the empty forests.
func (e *engine) treeDist(i, j int) {
	var (
		A, B   = e.A, e.B
		m      = B.Len()
		stride = m + 1
		fd     = e.fd
		li     = A.lmd[i]
		lj     = B.lmd[j]
		rows   = i - li + 2
		cols   = j - lj + 2
		ioff   = li - 1
		joff   = lj - 1
	)

	fd[0] = 0
	for x := 1; x < rows; x++ {
		fd[x*stride] = fd[(x-1)*stride] + e.del[x+ioff]
	}
	for y := 1; y < cols; y++ {
		fd[y] = fd[y-1] + e.ins[y+joff]
	}

	for x := 1; x < rows; x++ {
		xi := x + ioff
		for y := 1; y < cols; y++ {
			yj := y + joff
			del := fd[(x-1)*stride+y] + e.del[xi]
			ins := fd[x*stride+y-1] + e.ins[yj]
			var diag float64
			if A.lmd[xi] == li && B.lmd[yj] == lj {
				diag = fd[(x-1)*stride+y-1] + e.upd[e.ra[xi]*e.cols+e.cb[yj]]
				v := min3(del, ins, diag)
				fd[x*stride+y] = v
				e.td[xi*m+yj] = v
				continue
			}
			p := A.lmd[xi] - 1 - ioff
			q := B.lmd[yj] - 1 - joff
			diag = fd[p*stride+q] + e.td[xi*m+yj]
			fd[x*stride+y] = min3(del, ins, diag)
		}
	}
}

func min3(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}

	return a
}

func sum(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}

// Similarity maps the distance into [0, 1]: 1 - d/bound, where bound is the
// cost of deleting all of a and inserting all of b. Two empty trees (or a
// zero bound) have similarity 1.
func Similarity(a, b *tree.Tree, costs Costs) (float64, error) {
	if err := costs.validate(); err != nil {
		return 0, err
	}
	A, err := Annotate(a)
	if err != nil {
		return 0, err
	}
	B, err := Annotate(b)
	if err != nil {
		return 0, err
	}
	e, err := newEngine(A, B, costs)
	if err != nil {
		return 0, err
	}
	bound := sum(e.del) + sum(e.ins)
	if bound == 0 {
		return 1, nil
	}
	s := 1 - e.run()/bound
	if s < 0 {
		s = 0
	}

	return s, nil
}
