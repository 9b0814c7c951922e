// Command rna2d validates, abstracts and compares RNA secondary structures
// written in dot-bracket notation.
//
//	rna2d shape -l 5 "((((...))))..((...))"
//	rna2d distance "(((...)))" "((.(...).))"
//	rna2d rank subopts.txt --threshold 4 --top 10
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
