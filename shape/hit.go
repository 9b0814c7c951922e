package shape

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/rnashape/dotbracket"
)

// HIT returns the homeomorphically irreducible tree of s in bracket
// notation. Every helix becomes one node "(... Pn)" where n is its number of
// stacked pairs, every run of n unpaired positions becomes a leaf "(Un)",
// and the whole structure hangs under "(... R)".
//
//	HIT("((.(..)))") == "(((U1)((U2)P1)P2)R)"
//
// Helices are split wherever Auxiliary splits them.
func HIT(s string) (string, error) {
	aux, err := dotbracket.Auxiliary(s)
	if err != nil {
		return "", err
	}

	var (
		b        strings.Builder
		unpaired int
		stacked  int
	)
	flush := func() {
		if unpaired == 0 {
			return
		}
		b.WriteString("(U")
		b.WriteString(strconv.Itoa(unpaired))
		b.WriteByte(')')
		unpaired = 0
	}

	b.WriteByte('(')
	for i := 0; i < len(aux); i++ {
		switch aux[i] {
		case '.':
			unpaired++
		case '[':
			flush()
			b.WriteByte('(')
		case ')':
			flush()
			stacked++
		case ']':
			flush()
			b.WriteByte('P')
			b.WriteString(strconv.Itoa(stacked + 1))
			b.WriteByte(')')
			stacked = 0
		}
	}
	flush()
	b.WriteString("R)")

	return b.String(), nil
}
