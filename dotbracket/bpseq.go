package dotbracket

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidSequence reports whether seq is a non-empty nucleotide string over
// ACGUT, case-insensitive.
func ValidSequence(seq string) bool {
	if seq == "" {
		return false
	}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'U', 'T', 'a', 'c', 'g', 'u', 't':
		default:
			return false
		}
	}

	return true
}

// BPSeq renders seq and its structure s in bpseq format: one line per
// position holding the 1-based index, the upper-cased base and the 1-based
// partner (0 when unpaired). Lines are separated by '\n' with no trailing
// newline.
func BPSeq(seq, s string) (string, error) {
	if err := Check(s); err != nil {
		return "", err
	}
	if !ValidSequence(seq) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSequence, seq)
	}
	if len(seq) != len(s) {
		return "", fmt.Errorf("%w: sequence %d vs structure %d", ErrLengthMismatch, len(seq), len(s))
	}
	table, err := PairTable(s)
	if err != nil {
		return "", err
	}

	seq = strings.ToUpper(seq)
	var b strings.Builder
	for i := 1; i <= len(seq); i++ {
		if i > 1 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(' ')
		b.WriteByte(seq[i-1])
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(table[i]))
	}

	return b.String(), nil
}
