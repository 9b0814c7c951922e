package dotbracket

import "fmt"

// Validate reports whether s is a well-formed dot-bracket structure.
// The empty string is valid.
func Validate(s string) bool { return Vienna.Validate(s) }

// Check is Validate with a typed failure. The returned error wraps
// ErrInvalidStructure and either ErrIllegalSymbol or ErrUnbalanced.
func Check(s string) error { return Vienna.Check(s) }

// Validate reports whether s is balanced and uses only the alphabet symbols.
func (a Alphabet) Validate(s string) bool {
	return a.Check(s) == nil
}

// Check scans s once with an open-bracket counter.
//
// Implementation:
//   - Stage 1: reject the first byte outside the alphabet.
//   - Stage 2: reject a close that would drive the counter negative.
//   - Stage 3: reject a non-zero counter at the end of input.
//
// Positions in error messages are 1-based.
func (a Alphabet) Check(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case a.Open:
			depth++
		case a.Close:
			if depth == 0 {
				return fmt.Errorf("%w: %w: unmatched %q at position %d",
					ErrInvalidStructure, ErrUnbalanced, c, i+1)
			}
			depth--
		case a.Unpaired:
		default:
			return fmt.Errorf("%w: %w: %q at position %d",
				ErrInvalidStructure, ErrIllegalSymbol, c, i+1)
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %w: %d unclosed %q",
			ErrInvalidStructure, ErrUnbalanced, depth, a.Open)
	}

	return nil
}
