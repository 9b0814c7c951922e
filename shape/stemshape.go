package shape

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/tree"
)

// stemEvent is the opening or closing end of one stem.
type stemEvent struct {
	pos  int
	open bool
	len  int
}

func stemEvents(s string) ([]stemEvent, error) {
	stems, err := dotbracket.Stems(s)
	if err != nil {
		return nil, err
	}
	events := make([]stemEvent, 0, 2*len(stems))
	for _, st := range stems {
		events = append(events,
			stemEvent{pos: st.Opens[0], open: true, len: st.Len()},
			stemEvent{pos: st.Closes[0], len: st.Len()})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].pos < events[j].pos })

	return events, nil
}

// StemShape writes every stem of s as one bracket pair and tags each closing
// bracket with the stem's number of pairs.
//
//	StemShape(".((..(((...)))..((..))))." == "[[]3[]2]2"
//
// Stems are those of dotbracket.Stems, so bulges and interior loops do not
// split a stem.
func StemShape(s string) (string, error) {
	events, err := stemEvents(s)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, e := range events {
		if e.open {
			b.WriteByte('[')
			continue
		}
		b.WriteByte(']')
		b.WriteString(strconv.Itoa(e.len))
	}

	return b.String(), nil
}

// StemTree builds the base-pair tree in which every stem of s is a chain of
// as many paired nodes as it has pairs, with no unpaired leaves. It is the
// tree form of StemShape and can be compared with ted.Distance.
func StemTree(s string) (*tree.Tree, error) {
	events, err := stemEvents(s)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, e := range events {
		bracket := dotbracket.Vienna.Close
		if e.open {
			bracket = dotbracket.Vienna.Open
		}
		for k := 0; k < e.len; k++ {
			b.WriteByte(bracket)
		}
	}

	return tree.Build(b.String())
}
