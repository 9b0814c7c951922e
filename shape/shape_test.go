package shape_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/shape"
	"github.com/katalvlaran/rnashape/tree"
)

// TestReduce_Known checks hand-derived shapes at every level.
func TestReduce_Known(t *testing.T) {
	cases := []struct {
		in         string
		l1, l3, l5 string
	}{
		{"..(((.....))).", "_[]_", "[]", "[]"},
		{"((.((...))))", "[_[]]", "[[]]", "[]"},
		{"((...))..((...))", "[]_[]", "[][]", "[][]"},
		{"(((..)(..)).)", "[[[][]]_]", "[[[][]]]", "[[][]]"},
		{"....", "_", "", ""},
		{"", "", "", ""},
		{"(.)", "[]", "[]", "[]"},
	}
	for _, tc := range cases {
		for level, want := range map[shape.Level]string{
			shape.Level1: tc.l1, shape.Level3: tc.l3, shape.Level5: tc.l5,
		} {
			got, err := shape.Reduce(tc.in, level)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%q at %s", tc.in, level)
		}
	}
}

// TestReduce_Idempotent checks Reduce(Reduce(s, L), L) == Reduce(s, L) on
// random structures.
func TestReduce_Idempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 300; i++ {
		n := r.IntN(50)
		s, err := dotbracket.Random(r, n, r.IntN(n/2+1))
		require.NoError(t, err)
		for _, level := range shape.Levels {
			once, err := shape.Reduce(s, level)
			require.NoError(t, err)
			twice, err := shape.Reduce(once, level)
			require.NoError(t, err)
			require.Equal(t, once, twice, "%q at %s", s, level)
		}
	}
}

// TestReduce_Coarsening checks that each level only removes information:
// level 5 of level 3 equals level 5, and level 3 of level 1 equals level 3.
func TestReduce_Coarsening(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 1))
	for i := 0; i < 200; i++ {
		s, err := dotbracket.Random(r, 40, r.IntN(15))
		require.NoError(t, err)
		l1, err := shape.Reduce(s, shape.Level1)
		require.NoError(t, err)
		l3, err := shape.Reduce(s, shape.Level3)
		require.NoError(t, err)
		l5, err := shape.Reduce(s, shape.Level5)
		require.NoError(t, err)

		got, err := shape.Reduce(l1, shape.Level3)
		require.NoError(t, err)
		require.Equal(t, l3, got, s)
		got, err = shape.Reduce(l3, shape.Level5)
		require.NoError(t, err)
		require.Equal(t, l5, got, s)
	}
}

func TestReduce_Errors(t *testing.T) {
	_, err := shape.Reduce("(..)", shape.Level(2))
	assert.ErrorIs(t, err, shape.ErrUnsupportedLevel)

	_, err = shape.Reduce("((..)", shape.Level1)
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)

	_, err = shape.Reduce("[(])", shape.Level3)
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)

	_, err = shape.ReduceTree(tree.New(), shape.Level(4))
	assert.ErrorIs(t, err, shape.ErrUnsupportedLevel)
}

func TestReduceTree_LeavesInput(t *testing.T) {
	in, err := tree.Build("((.((...))))")
	require.NoError(t, err)
	out, err := shape.ReduceTree(in, shape.Level5)
	require.NoError(t, err)
	assert.Equal(t, "((.((...))))", in.String())
	assert.Equal(t, "()", out.String())
	assert.Equal(t, out.Size(), out.Len())

	empty, err := shape.ReduceTree(&tree.Tree{}, shape.Level1)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestShapiro(t *testing.T) {
	cases := []struct {
		in   string
		want []tree.Label // pre-order labels of the paired nodes
	}{
		{"(((...).))", []tree.Label{tree.LabelHelix, tree.LabelBulge, tree.LabelHairpin}},
		{"(.(...).)", []tree.Label{tree.LabelInterior, tree.LabelHairpin}},
		{"((..)(..))", []tree.Label{tree.LabelMulti, tree.LabelHairpin, tree.LabelHairpin}},
		{"()", []tree.Label{tree.LabelHairpin}},
	}
	for _, tc := range cases {
		tr, err := shape.Shapiro(tc.in)
		require.NoError(t, err)
		var got []tree.Label
		for _, id := range tr.PreOrder() {
			if tr.Label(id).IsPaired() {
				got = append(got, tr.Label(id))
			}
		}
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tree.LabelRoot, tr.Label(tr.Root()))
		assert.Equal(t, tc.in, tr.String())
	}

	_, err := shape.Shapiro("(")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

func TestGranular(t *testing.T) {
	cases := []struct {
		in   string
		g    int
		want string
	}{
		{"((((..)))).(.)", 2, "(())()"},
		{"((((..)))).(.)", 1, "(((())))()"},
		{"((((..)))).(.)", 4, "()()"},
		{"((()()))", 2, "(()())"},
		{"(((((()())))))", 3, "((()()))"},
		{"....", 2, ""},
	}
	for _, tc := range cases {
		got, err := shape.Granular(tc.in, tc.g)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q g=%d", tc.in, tc.g)
	}

	_, err := shape.Granular("()", 0)
	assert.ErrorIs(t, err, shape.ErrBadGranularity)
	_, err = shape.Granular("(", 1)
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

func TestHIT(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{".((..(((...)))..((..)))).", "((U1)((U2)((U3)P3)(U2)((U2)P2)P2)(U1)R)"},
		{"((.(..)))", "(((U1)((U2)P1)P2)R)"},
		{"()()", "((P1)(P1)R)"},
		{"...", "((U3)R)"},
		{"", "(R)"},
	}
	for _, tc := range cases {
		got, err := shape.HIT(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := shape.HIT("(.")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

func TestStemShape(t *testing.T) {
	cases := []struct {
		in, shape, tree string
	}{
		{".((..(((...)))..((..)))).", "[[]3[]2]2", "((((()))(())))"},
		{"((((..)))).(.)", "[]4[]1", "(((())))()"},
		{"((()()))", "[[]1[]1]2", "((()()))"},
		{"((.((...))))", "[]4", "(((())))"},
		{"....", "", ""},
	}
	for _, tc := range cases {
		got, err := shape.StemShape(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.shape, got, tc.in)

		tr, err := shape.StemTree(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.tree, tr.String(), tc.in)
	}

	_, err := shape.StemShape(")(")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
	_, err = shape.StemTree(")(")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}
