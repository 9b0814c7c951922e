package dotbracket

import "fmt"

// Mountain returns the mountain representation of s: the bracket depth after
// each position is read.
//
//	Mountain("..(((.....))).." == []int{0, 0, 1, 2, 3, 3, 3, 3, 3, 3, 2, 1, 0, 0, 0}
func Mountain(s string) ([]int, error) {
	if err := Check(s); err != nil {
		return nil, err
	}
	m := make([]int, len(s))
	level := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Vienna.Open:
			level++
		case Vienna.Close:
			level--
		}
		m[i] = level
	}

	return m, nil
}

// MountainDistance is the L1 distance between two mountains of equal length.
func MountainDistance(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	d := 0
	for i := range a {
		if a[i] > b[i] {
			d += a[i] - b[i]
		} else {
			d += b[i] - a[i]
		}
	}

	return d, nil
}
