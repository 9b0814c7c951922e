package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedLevel is returned for a level other than 1, 3 or 5.
	ErrUnsupportedLevel = errors.New("shape: unsupported level")

	// ErrBadGranularity is returned when the granularity is below 1.
	ErrBadGranularity = errors.New("shape: granularity must be >= 1")
)

// Level is an abstraction level.
type Level int

const (
	Level1 Level = 1
	Level3 Level = 3
	Level5 Level = 5
)

// Levels lists the supported levels in increasing abstraction.
var Levels = []Level{Level1, Level3, Level5}

// Validate reports ErrUnsupportedLevel for an unknown level.
func (l Level) Validate() error {
	switch l {
	case Level1, Level3, Level5:
		return nil
	}

	return fmt.Errorf("%w: %d", ErrUnsupportedLevel, int(l))
}

func (l Level) String() string {
	return fmt.Sprintf("level%d", int(l))
}
