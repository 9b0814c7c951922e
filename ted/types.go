// SPDX-License-Identifier: MIT

package ted

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rnashape/tree"
)

var (
	// ErrInvalidCosts is returned for an unusable cost configuration.
	ErrInvalidCosts = errors.New("ted: invalid cost configuration")

	// ErrNegativeCost is wrapped with ErrInvalidCosts when a cost function
	// yields a negative or NaN value.
	ErrNegativeCost = errors.New("ted: negative cost")
)

// Costs holds the per-node edit cost functions. Delete is charged for nodes
// of the first tree, Insert for nodes of the second, Update for a node of the
// first mapped onto a node of the second.
type Costs struct {
	Insert func(l tree.Label) float64
	Delete func(l tree.Label) float64
	Update func(a, b tree.Label) float64
}

// LabelCosts returns constant insert and delete costs and a relabel cost that
// is zero for equal labels and relabel otherwise.
func LabelCosts(insert, remove, relabel float64) Costs {
	return Costs{
		Insert: func(tree.Label) float64 { return insert },
		Delete: func(tree.Label) float64 { return remove },
		Update: func(a, b tree.Label) float64 {
			if a == b {
				return 0
			}
			return relabel
		},
	}
}

// UnitCosts is LabelCosts(1, 1, 1).
func UnitCosts() Costs { return LabelCosts(1, 1, 1) }

// UnlabeledCosts charges 1 per insert or delete and never charges a relabel.
func UnlabeledCosts() Costs { return LabelCosts(1, 1, 0) }

func (c Costs) validate() error {
	if c.Insert == nil || c.Delete == nil || c.Update == nil {
		return fmt.Errorf("%w: nil cost function", ErrInvalidCosts)
	}

	return nil
}

func checkCost(op string, v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%w: %w: %s=%v", ErrInvalidCosts, ErrNegativeCost, op, v)
	}

	return nil
}
