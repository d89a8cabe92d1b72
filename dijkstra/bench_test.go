package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gridstar/dijkstra"
	"github.com/katalvlaran/gridstar/grid"
)

// BenchmarkDijkstra_Open128 runs a full sweep over an open 128×128 Conn8 board.
func BenchmarkDijkstra_Open128(b *testing.B) {
	g, err := grid.New(128, grid.WithConnectivity(grid.Conn8))
	if err != nil {
		b.Fatal(err)
	}
	src := dijkstra.Source(grid.Pos{X: 1, Y: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Dijkstra(g, src); err != nil {
			b.Fatal(err)
		}
	}
}
