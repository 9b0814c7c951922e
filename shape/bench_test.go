package shape_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/rnashape/dotbracket"
	"github.com/katalvlaran/rnashape/shape"
)

// BenchmarkReduce_Level5 reduces a random 1000-nt structure.
func BenchmarkReduce_Level5(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 3))
	s, err := dotbracket.Random(r, 1000, 300)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = shape.Reduce(s, shape.Level5)
	}
}
