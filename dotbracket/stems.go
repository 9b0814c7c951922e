package dotbracket

// Stems extracts the maximal helices of s.
//
// Algorithm:
//  1. Push the position of every opener on a stack.
//  2. A closer pops its partner and appends the pair to the stem under
//     construction, starting a new one if none is open.
//  3. An opener met while a stem is open ends that stem and marks the current
//     top opener as a boundary: that pair encloses more than one branch.
//  4. After a pop, a boundary opener on top of the stack ends the stem, so the
//     multi-branch pair starts a stem of its own.
//
// Unpaired positions never end a stem, so bulges and interior loops stay
// inside the helix that surrounds them. Stems are returned in the order their
// first pair completes.
//
// Complexity: O(n) time, O(n) memory.
func Stems(s string) ([]Stem, error) {
	if err := Check(s); err != nil {
		return nil, err
	}

	var (
		stems    []Stem
		openers  = make([]int, 0, len(s)/2)
		boundary = make([]bool, len(s))
		current  *Stem
	)
	flush := func() {
		if current == nil {
			return
		}
		stems = append(stems, finishStem(current))
		current = nil
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Vienna.Open:
			if current != nil {
				if len(openers) > 0 {
					boundary[openers[len(openers)-1]] = true
				}
				flush()
			}
			openers = append(openers, i)
		case Vienna.Close:
			if current == nil {
				current = &Stem{Pairs: make(map[int]int)}
			}
			open := openers[len(openers)-1]
			openers = openers[:len(openers)-1]
			current.Opens = append(current.Opens, open+1)
			current.Closes = append(current.Closes, i+1)
			current.Pairs[open+1] = i + 1
			if len(openers) > 0 && boundary[openers[len(openers)-1]] {
				flush()
			}
		}
	}
	flush()

	return stems, nil
}

// finishStem reverses the pop order (inner to outer) into outer to inner.
func finishStem(st *Stem) Stem {
	n := len(st.Opens)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		st.Opens[i], st.Opens[j] = st.Opens[j], st.Opens[i]
		st.Closes[i], st.Closes[j] = st.Closes[j], st.Closes[i]
	}

	return *st
}
