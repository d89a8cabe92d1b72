package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridstar/frontier"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/search"
)

func benchSearch(b *testing.B, k frontier.Kind) {
	rng := rand.New(rand.NewSource(1))
	base := randomGrid(rng, 64, 0.3, grid.Conn8)
	start, goal := grid.Pos{X: 1, Y: 1}, grid.Pos{X: 62, Y: 62}
	base.SetWall(start, false)
	base.SetWall(goal, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := search.New(base.Snapshot(), start, goal, search.WithFrontier(k))
		if err != nil {
			b.Fatal(err)
		}
		for st := search.Running; !st.Done(); {
			if st, err = e.Step(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkEngine_List64 runs the linear-scan frontier on a 64×64 board.
func BenchmarkEngine_List64(b *testing.B) { benchSearch(b, frontier.KindList) }

// BenchmarkEngine_Heap64 runs the heap frontier on a 64×64 board.
func BenchmarkEngine_Heap64(b *testing.B) { benchSearch(b, frontier.KindHeap) }
