// Package dotbracket validates and analyses RNA secondary structures written
// in dot-bracket notation.
//
// What
//
//   - Validate / Check: single-pass balance check over the ( ) . alphabet.
//   - Alphabet: the same check for any three-symbol grammar (e.g. the
//     [ ] _ shape grammar used by package shape).
//   - BasePairs: every (open, close) pair, 1-based, sorted by open position.
//   - Stems: maximal helices recovered with a stack of pending openers.
//   - Mountain / MountainDistance / BasePairDistance: classic comparisons that
//     do not need a tree.
//   - OnlyPaired, BPSeq, Random: canonicalisation, bpseq export and a random
//     structure generator used by property tests.
//
// Positions
//
//	Every exported position is 1-based. Internally the package works on
//	0-based byte offsets.
//
// Errors
//
//   - ErrInvalidStructure: umbrella for malformed input, always wrapped
//     together with ErrIllegalSymbol or ErrUnbalanced.
//   - ErrLengthMismatch: two inputs that must be aligned differ in length.
//   - ErrInvalidSequence: nucleotide sequence outside ACGUT.
//   - ErrBadRandomParams: impossible length/pair request for Random.
//
// Complexity
//
//	Validation, pairing, stems and mountains are O(n) time and O(n) memory.
//
// Usage
//
//	if err := dotbracket.Check("((..))."); err != nil {
//	    // errors.Is(err, dotbracket.ErrInvalidStructure) == true
//	}
//	pairs, _ := dotbracket.BasePairs("((..))") // [{1 6} {2 5}]
package dotbracket
