package dotbracket_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rnashape/dotbracket"
)

func TestStems(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []dotbracket.Stem
	}{
		{
			name: "two hairpins",
			in:   "((..)).((..))",
			want: []dotbracket.Stem{
				{Opens: []int{1, 2}, Closes: []int{6, 5}, Pairs: map[int]int{1: 6, 2: 5}},
				{Opens: []int{8, 9}, Closes: []int{13, 12}, Pairs: map[int]int{8: 13, 9: 12}},
			},
		},
		{
			name: "multiloop closes its own stem",
			in:   "(()())",
			want: []dotbracket.Stem{
				{Opens: []int{2}, Closes: []int{3}, Pairs: map[int]int{2: 3}},
				{Opens: []int{4}, Closes: []int{5}, Pairs: map[int]int{4: 5}},
				{Opens: []int{1}, Closes: []int{6}, Pairs: map[int]int{1: 6}},
			},
		},
		{
			name: "helix above a multiloop",
			in:   "((()()))",
			want: []dotbracket.Stem{
				{Opens: []int{3}, Closes: []int{4}, Pairs: map[int]int{3: 4}},
				{Opens: []int{5}, Closes: []int{6}, Pairs: map[int]int{5: 6}},
				{Opens: []int{1, 2}, Closes: []int{8, 7}, Pairs: map[int]int{1: 8, 2: 7}},
			},
		},
		{
			name: "bulge stays inside the stem",
			in:   "(.(..))",
			want: []dotbracket.Stem{
				{Opens: []int{1, 3}, Closes: []int{7, 6}, Pairs: map[int]int{1: 7, 3: 6}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dotbracket.Stems(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStems_Empty(t *testing.T) {
	got, err := dotbracket.Stems("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = dotbracket.Stems("....")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = dotbracket.Stems("(()")
	assert.ErrorIs(t, err, dotbracket.ErrInvalidStructure)
}

// TestStems_CoverPairs checks that stems partition the base-pair set.
func TestStems_CoverPairs(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 100; i++ {
		s, err := dotbracket.Random(r, 40, r.IntN(20))
		require.NoError(t, err)

		stems, err := dotbracket.Stems(s)
		require.NoError(t, err)
		pairs, err := dotbracket.BasePairs(s)
		require.NoError(t, err)

		seen := make(map[dotbracket.Pair]int)
		for _, st := range stems {
			require.Len(t, st.Closes, st.Len())
			for k, o := range st.Opens {
				seen[dotbracket.Pair{Open: o, Close: st.Closes[k]}]++
				require.Equal(t, st.Closes[k], st.Pairs[o])
			}
		}
		require.Len(t, seen, len(pairs), s)
		for _, p := range pairs {
			require.Equal(t, 1, seen[p], s)
		}
	}
}
