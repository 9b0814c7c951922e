package batch_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rnashape/batch"
	"github.com/katalvlaran/rnashape/registry"
)

// ExampleRank ranks four skeletons by how much observed mass sits near them.
//
// Scenario:
//
//	"()" seen 3 times, "(())" once, "((()))" once, "()()()" twice.
//	With threshold 2 only the one-pair-apart skeletons are linked:
//	  ()  -- (())  -- ((()))
//	"(())" collects 1 + 3 + 1 and wins despite being rare.
func ExampleRank() {
	reg := registry.New()
	_, _ = reg.AddN("..(...).", 3)
	_, _ = reg.AddN("((...))", 1)
	_, _ = reg.AddN("(((...)))", 1)
	_, _ = reg.AddN("(.)(.)(.)", 2)

	cfg := batch.DefaultConfig()
	cfg.Threshold = 2
	scores, err := batch.Rank(context.Background(), reg, cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range scores {
		fmt.Printf("%-7s count=%d centrality=%d\n", s.Key, s.Count, s.Centrality)
	}
	// Output:
	// (())    count=1 centrality=5
	// ()      count=3 centrality=4
	// ((()))  count=1 centrality=2
	// ()()()  count=2 centrality=2
}
