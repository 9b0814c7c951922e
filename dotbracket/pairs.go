package dotbracket

import (
	"sort"
	"strings"
)

// BasePairs returns every base pair of s, 1-based, sorted by opening position.
//
//	BasePairs("((..))") == []Pair{{1, 6}, {2, 5}}
func BasePairs(s string) ([]Pair, error) {
	if err := Check(s); err != nil {
		return nil, err
	}

	var (
		stack = make([]int, 0, len(s)/2)
		pairs = make([]Pair, 0, len(s)/2)
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Vienna.Open:
			stack = append(stack, i)
		case Vienna.Close:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, Pair{Open: top + 1, Close: i + 1})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Open < pairs[j].Open })

	return pairs, nil
}

// PairTable returns, for each 1-based position, the 1-based partner or 0 when
// the position is unpaired. Index 0 of the result holds the sequence length.
func PairTable(s string) ([]int, error) {
	pairs, err := BasePairs(s)
	if err != nil {
		return nil, err
	}
	table := make([]int, len(s)+1)
	table[0] = len(s)
	for _, p := range pairs {
		table[p.Open] = p.Close
		table[p.Close] = p.Open
	}

	return table, nil
}

// BasePairDistance is the size of the symmetric difference between two
// base-pair sets.
func BasePairDistance(a, b []Pair) int {
	seen := make(map[Pair]struct{}, len(a))
	for _, p := range a {
		seen[p] = struct{}{}
	}
	shared := 0
	for _, p := range b {
		if _, ok := seen[p]; ok {
			shared++
		}
	}

	return len(a) + len(b) - 2*shared
}

// OnlyPaired strips unpaired positions, leaving the canonical bracket skeleton.
func OnlyPaired(s string) (string, error) {
	if err := Check(s); err != nil {
		return "", err
	}

	return strings.ReplaceAll(s, string(Vienna.Unpaired), ""), nil
}
