package dotbracket_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rnashape/dotbracket"
)

// ExampleCheck shows the typed failure for an unbalanced structure.
func ExampleCheck() {
	err := dotbracket.Check("((..)")
	fmt.Println(errors.Is(err, dotbracket.ErrInvalidStructure))
	fmt.Println(errors.Is(err, dotbracket.ErrUnbalanced))
	// Output:
	// true
	// true
}

// ExampleBasePairs lists the pairs of a small hairpin.
func ExampleBasePairs() {
	pairs, _ := dotbracket.BasePairs("((..))")
	fmt.Println(pairs)
	// Output:
	// [(1,6) (2,5)]
}

// ExampleStems splits a two-branch structure into helices.
func ExampleStems() {
	stems, _ := dotbracket.Stems("((()()))")
	for _, st := range stems {
		fmt.Println(st.Opens, st.Closes)
	}
	// Output:
	// [3] [4]
	// [5] [6]
	// [1 2] [8 7]
}

// ExampleAuxiliary marks where each run of stacked pairs begins and ends.
func ExampleAuxiliary() {
	aux, _ := dotbracket.Auxiliary(".((..(((...)))..((..)))).")
	fmt.Println(aux)
	// Output:
	// .[(..[((...))]..[(..)])].
}
