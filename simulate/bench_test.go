package simulate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/labmap"
	"github.com/katalvlaran/patrol/simulate"
)

// BenchmarkSimulate_Example measures a full run over the 10×10 example.
func BenchmarkSimulate_Example(b *testing.B) {
	m, err := labmap.ParseString(exampleMap)
	if err != nil {
		b.Fatalf("setup ParseString failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = simulate.Simulate(m.Grid, m.Guard)
	}
}

// BenchmarkSimulate_Random130 measures runs on a 130×130 grid with
// roughly 1.5% obstructions, the size of a typical puzzle input.
// Complexity: O(S), S ≤ 16·W·H
func BenchmarkSimulate_Random130(b *testing.B) {
	const n = 130
	rng := rand.New(rand.NewSource(42))
	rows := make([][]gridgraph.Cell, n)
	for y := range rows {
		rows[y] = make([]gridgraph.Cell, n)
		for x := range rows[y] {
			if rng.Intn(64) == 0 {
				rows[y][x] = gridgraph.Obstruction
			}
		}
	}
	start := gridgraph.Position{Row: n / 2, Col: n / 2}
	rows[start.Row][start.Col] = gridgraph.Open
	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = simulate.Simulate(g, guard.New(start, guard.North))
	}
}
