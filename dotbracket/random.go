package dotbracket

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Random returns a valid structure of the given length holding exactly pairs
// base pairs.
//
// Each step inserts either an empty pair "()" or an unpaired "." at a uniformly
// chosen offset of the structure built so far. Any offset of a balanced string
// lies inside exactly one enclosing pair (or at top level), so every insertion
// adds a new leaf to a random parent at a random sibling index and the result
// stays balanced.
//
// r may be nil, in which case the package-level generator is used.
func Random(r *rand.Rand, length, pairs int) (string, error) {
	if length < 0 || pairs < 0 || 2*pairs > length {
		return "", fmt.Errorf("%w: length=%d pairs=%d", ErrBadRandomParams, length, pairs)
	}
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	// kinds[i] is true when step i inserts a pair.
	unpaired := length - 2*pairs
	kinds := make([]bool, pairs+unpaired)
	for i := 0; i < pairs; i++ {
		kinds[i] = true
	}
	for i := len(kinds) - 1; i > 0; i-- {
		j := intN(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}

	out := make([]byte, 0, length)
	for _, paired := range kinds {
		at := intN(len(out) + 1)
		if paired {
			out = slices.Insert(out, at, Vienna.Open, Vienna.Close)
		} else {
			out = slices.Insert(out, at, Vienna.Unpaired)
		}
	}

	return string(out), nil
}
