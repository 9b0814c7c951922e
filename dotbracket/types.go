package dotbracket

import (
	"errors"
	"fmt"
)

// Sentinel errors for structure handling.
var (
	// ErrInvalidStructure is returned for any malformed structure string.
	ErrInvalidStructure = errors.New("dotbracket: invalid structure")

	// ErrIllegalSymbol marks a character outside the alphabet.
	ErrIllegalSymbol = errors.New("dotbracket: illegal symbol")

	// ErrUnbalanced marks an unmatched closing or opening bracket.
	ErrUnbalanced = errors.New("dotbracket: unbalanced brackets")

	// ErrLengthMismatch is returned when aligned inputs differ in length.
	ErrLengthMismatch = errors.New("dotbracket: length mismatch")

	// ErrInvalidSequence is returned for a nucleotide sequence outside ACGUT.
	ErrInvalidSequence = errors.New("dotbracket: invalid sequence")

	// ErrBadRandomParams is returned when Random cannot honour length/pairs.
	ErrBadRandomParams = errors.New("dotbracket: invalid random parameters")
)

// Alphabet is a three-symbol bracket grammar.
type Alphabet struct {
	Open     byte
	Close    byte
	Unpaired byte
}

// Vienna is the dot-bracket grammar used for secondary structures.
var Vienna = Alphabet{Open: '(', Close: ')', Unpaired: '.'}

// Shape is the grammar of abstract shapes.
var Shape = Alphabet{Open: '[', Close: ']', Unpaired: '_'}

// Has reports whether c belongs to the alphabet.
func (a Alphabet) Has(c byte) bool {
	return c == a.Open || c == a.Close || c == a.Unpaired
}

// Pair is a base pair; both positions are 1-based and Open < Close.
type Pair struct {
	Open  int
	Close int
}

// String renders the pair as "(open,close)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.Open, p.Close)
}

// Stem is a maximal helix. Opens runs outer to inner (ascending), Closes is
// aligned with Opens (so it is descending), and Pairs maps each opening
// position to its partner. All positions are 1-based.
type Stem struct {
	Opens  []int
	Closes []int
	Pairs  map[int]int
}

// Len returns the number of base pairs in the stem.
func (s Stem) Len() int { return len(s.Opens) }
