package maze_test

import (
	"math/rand"
	"testing"

	"github.com/tessella/tessella/maze"
	"github.com/tessella/tessella/square"
)

// BenchmarkGenerate_Grid measures maze generation over an M×M square grid
// for each bias.
func BenchmarkGenerate_Grid(b *testing.B) {
	const M = 50
	s, err := square.New(M, M)
	if err != nil {
		b.Fatalf("square.New: %v", err)
	}

	for _, bias := range []maze.Bias{maze.Default, maze.Straight, maze.Winding} {
		b.Run(bias.String(), func(b *testing.B) {
			src := maze.Rand(rand.New(rand.NewSource(42)))
			b.ReportAllocs()
			b.SetBytes(int64(M * M))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := maze.Generate(s, src, bias); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
