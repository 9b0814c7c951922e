package dotbracket_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnashape/dotbracket"
)

// TestValidate covers accepted and rejected structures.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"empty", "", true},
		{"unpaired only", "....", true},
		{"hairpin", "..(((.....))).", true},
		{"multiloop", "((..)(..))", true},
		{"close first", ")(", false},
		{"unclosed", "((.)", false},
		{"overclosed", "(.))", false},
		{"illegal symbol", "((x))", false},
		{"shape symbol", "[..]", false},
		{"trailing newline", "(..)\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, dotbracket.Validate(tc.in))
			err := dotbracket.Check(tc.in)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
			}
		})
	}
}

// validByCounter is the reference validator: a plain depth counter over
// the Vienna alphabet.
func validByCounter(s string) bool {
	depth := 0
	for _, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		case '.':
		default:
			return false
		}
	}
	return depth == 0
}

// TestValidate_RandomAgainstCounter compares Validate and Check with
// validByCounter on random strings over "().x", on balanced structures from
// Random and on those structures with one position overwritten.
func TestValidate_RandomAgainstCounter(t *testing.T) {
	const alphabet = "().x"
	r := rand.New(rand.NewPCG(2024, 17))
	valid := 0
	for i := 0; i < 5000; i++ {
		var s string
		switch i % 3 {
		case 0:
			b := make([]byte, r.IntN(24))
			for k := range b {
				b[k] = alphabet[r.IntN(len(alphabet))]
			}
			s = string(b)
		case 1, 2:
			length := r.IntN(40)
			balanced, err := dotbracket.Random(r, length, r.IntN(length/2+1))
			require.NoError(t, err)
			require.True(t, dotbracket.Validate(balanced), balanced)
			s = balanced
			if i%3 == 2 && length > 0 {
				b := []byte(balanced)
				b[r.IntN(length)] = alphabet[r.IntN(len(alphabet))]
				s = string(b)
			}
		}

		want := validByCounter(s)
		require.Equal(t, want, dotbracket.Validate(s), "%q", s)
		if want {
			valid++
			require.NoError(t, dotbracket.Check(s), "%q", s)
		} else {
			require.ErrorIs(t, dotbracket.Check(s), dotbracket.ErrInvalidStructure, "%q", s)
		}
	}
	// both outcomes must be well represented
	assert.Greater(t, valid, 1000)
	assert.Less(t, valid, 4000)
}

// TestCheck_Kinds verifies the secondary sentinel attached to each failure.
func TestCheck_Kinds(t *testing.T) {
	err := dotbracket.Check("(.a)")
	require.Error(t, err)
	assert.ErrorIs(t, err, dotbracket.ErrIllegalSymbol)
	assert.Contains(t, err.Error(), "position 3")

	err = dotbracket.Check("())")
	require.Error(t, err)
	assert.ErrorIs(t, err, dotbracket.ErrUnbalanced)
	assert.Contains(t, err.Error(), "position 3")

	err = dotbracket.Check("((")
	assert.ErrorIs(t, err, dotbracket.ErrUnbalanced)
	assert.NotErrorIs(t, err, dotbracket.ErrIllegalSymbol)
}

// TestAlphabet_Shape checks the shape grammar.
func TestAlphabet_Shape(t *testing.T) {
	assert.True(t, dotbracket.Shape.Validate("[_[]_]"))
	assert.False(t, dotbracket.Shape.Validate("[(])"))
	assert.False(t, dotbracket.Shape.Validate("]["))
	assert.True(t, dotbracket.Shape.Has('_'))
	assert.False(t, dotbracket.Shape.Has('.'))
}

func TestBasePairs(t *testing.T) {
	pairs, err := dotbracket.BasePairs("((..))")
	require.NoError(t, err)
	assert.Equal(t, []dotbracket.Pair{{Open: 1, Close: 6}, {Open: 2, Close: 5}}, pairs)

	pairs, err = dotbracket.BasePairs("(.)(())")
	require.NoError(t, err)
	assert.Equal(t, []dotbracket.Pair{{Open: 1, Close: 3}, {Open: 4, Close: 7}, {Open: 5, Close: 6}}, pairs)
	assert.Equal(t, "(4,7)", pairs[1].String())

	pairs, err = dotbracket.BasePairs("....")
	require.NoError(t, err)
	assert.Empty(t, pairs)

	_, err = dotbracket.BasePairs("(()")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

func TestPairTable(t *testing.T) {
	table, err := dotbracket.PairTable(".(.)")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 4, 0, 2}, table)
}

func TestBasePairDistance(t *testing.T) {
	a := []dotbracket.Pair{{Open: 1, Close: 6}, {Open: 2, Close: 5}}
	b := []dotbracket.Pair{{Open: 1, Close: 6}, {Open: 3, Close: 4}}
	assert.Equal(t, 2, dotbracket.BasePairDistance(a, b))
	assert.Equal(t, 0, dotbracket.BasePairDistance(a, a))
	assert.Equal(t, 2, dotbracket.BasePairDistance(a, nil))
}

func TestOnlyPaired(t *testing.T) {
	got, err := dotbracket.OnlyPaired(".((..)).(.)")
	require.NoError(t, err)
	assert.Equal(t, "(())()", got)

	_, err = dotbracket.OnlyPaired("(")
	assert.ErrorIs(t, err, dotbracket.ErrUnbalanced)
}

func TestMountain(t *testing.T) {
	m, err := dotbracket.Mountain("..(((.....)))..")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2, 3, 3, 3, 3, 3, 3, 2, 1, 0, 0, 0}, m)

	d, err := dotbracket.MountainDistance([]int{1, 2, 2, 2, 1}, []int{1, 2, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = dotbracket.MountainDistance([]int{1}, []int{1, 0})
	assert.ErrorIs(t, err, dotbracket.ErrLengthMismatch)
}

func TestBPSeq(t *testing.T) {
	got, err := dotbracket.BPSeq("ccugaacag", ".((....))")
	require.NoError(t, err)
	want := strings.Join([]string{
		"1 C 0", "2 C 9", "3 U 8", "4 G 0", "5 A 0",
		"6 A 0", "7 C 0", "8 A 3", "9 G 2",
	}, "\n")
	assert.Equal(t, want, got)

	_, err = dotbracket.BPSeq("CCX", "...")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidSequence)
	_, err = dotbracket.BPSeq("CC", "...")
	assert.ErrorIs(t, err, dotbracket.ErrLengthMismatch)
	_, err = dotbracket.BPSeq("CCC", "(((")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

// TestRandom_Valid checks that generated structures are balanced and honour
// the requested size for a spread of seeds.
func TestRandom_Valid(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		length := r.IntN(60)
		pairs := r.IntN(length/2 + 1)
		s, err := dotbracket.Random(r, length, pairs)
		require.NoError(t, err)
		require.Len(t, s, length)
		require.True(t, dotbracket.Validate(s), s)
		require.Equal(t, pairs, strings.Count(s, "("))
	}
}

func TestRandom_BadParams(t *testing.T) {
	_, err := dotbracket.Random(nil, 3, 2)
	assert.ErrorIs(t, err, dotbracket.ErrBadRandomParams)
	_, err = dotbracket.Random(nil, -1, 0)
	assert.ErrorIs(t, err, dotbracket.ErrBadRandomParams)

	s, err := dotbracket.Random(nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

// TestAuxiliary checks helix-end marking against hand-derived strings.
func TestAuxiliary(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{".((..(((...)))..((..)))).", ".[(..[((...))]..[(..)])]."},
		{"((.(..)))", "[(.[..])]"},
		{"((()))", "[(())]"},
		{"()()", "[][]"},
		{"(.(.).)", "[.[.].]"},
		{"....", "...."},
		{"", ""},
	}
	for _, tc := range cases {
		got, err := dotbracket.Auxiliary(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := dotbracket.Auxiliary("(()")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}
