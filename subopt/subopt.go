// Package subopt reads collections of suboptimal structures, one record per
// sequence:
//
//	> name
//	GGGAAACCC
//	(((...))) -1.20
//	((.....)) -0.40
//
// Structure lines start with '(', ')' or '.' and are cut at the first other
// symbol, which drops trailing energies. Lines starting with ';' are comments.
// The first remaining line of a record is its sequence; any further ones are
// ignored. Structures are not validated here.
package subopt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrLineTooLong is returned for a line longer than MaxLineBytes.
var ErrLineTooLong = errors.New("subopt: line too long")

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 1 << 20

// Record is one named group of structures.
type Record struct {
	Name       string
	Sequence   string
	Structures []string
}

// Read parses every record of r. Structures that appear before the first
// header form a record with an empty name. Records without structures are
// dropped.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	var (
		out []Record
		cur Record
	)
	flush := func() {
		if len(cur.Structures) > 0 {
			out = append(out, cur)
		}
		cur = Record{}
	}

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.HasPrefix(text, ">"):
			flush()
			cur.Name = strings.TrimSpace(text[1:])
		case strings.HasPrefix(text, ";"):
		case isStructureStart(text):
			cur.Structures = append(cur.Structures, text[:structureEnd(text)])
		default:
			if cur.Sequence == "" {
				cur.Sequence = strings.TrimSpace(text)
			}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: after line %d", ErrLineTooLong, line)
		}
		return nil, fmt.Errorf("subopt: read: %w", err)
	}
	flush()

	return out, nil
}

// Structures flattens the structures of every record, in input order.
func Structures(records []Record) []string {
	var out []string
	for _, rec := range records {
		out = append(out, rec.Structures...)
	}

	return out
}

func isStructureStart(s string) bool {
	return s != "" && isStructureSymbol(s[0])
}

func structureEnd(s string) int {
	for i := 0; i < len(s); i++ {
		if !isStructureSymbol(s[i]) {
			return i
		}
	}

	return len(s)
}

func isStructureSymbol(c byte) bool {
	return c == '(' || c == ')' || c == '.'
}
