package dotbracket

// Auxiliary rewrites the outermost pair of every helix as '[' ']'. A pair
// (i, j) keeps its round brackets only when (i-1, j+1) is also a pair, so
// each bracket run "[((" marks one stretch of directly stacked pairs.
//
//	Auxiliary(".((..(((...)))..((..))))." == ".[(..[((...))]..[(..)])]."
//
// Unlike Stems, an unpaired position between two pairs ends the helix.
func Auxiliary(s string) (string, error) {
	table, err := PairTable(s)
	if err != nil {
		return "", err
	}
	n := len(s)
	out := []byte(s)
	for o := 1; o <= n; o++ {
		c := table[o]
		if c <= o {
			continue
		}
		if o > 1 && c < n && table[o-1] == c+1 {
			continue
		}
		out[o-1], out[c-1] = '[', ']'
	}

	return string(out), nil
}
