package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/bfs"
	"github.com/katalvlaran/gridstar/dijkstra"
	"github.com/katalvlaran/gridstar/grid"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	_, _, err = dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(grid.Pos{X: 1, Y: 1}))
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(grid.Pos{X: -1, Y: 1}))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfBounds)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(grid.Pos{X: 0, Y: 2}))
	assert.ErrorIs(t, err, dijkstra.ErrSourceBlocked)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(grid.Pos{X: 1, Y: 1}), dijkstra.WithMaxDistance(-3))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Cost model: orthogonal moves cost 1, diagonal moves cost 2.
// ------------------------------------------------------------------------

func TestDijkstra_DiagonalCost(t *testing.T) {
	g, err := grid.New(6, grid.WithConnectivity(grid.Conn8))
	require.NoError(t, err)

	d, err := dijkstra.Distance(g, grid.Pos{X: 1, Y: 1}, grid.Pos{X: 4, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, d, "a diagonal step never beats two orthogonal ones")

	// Diagonal pays off only when it is the sole route.
	g8, err := grid.Parse([]string{
		"#####",
		"#.###",
		"##.##",
		"###.#",
		"#####",
	}, grid.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	d, err = dijkstra.Distance(g8, grid.Pos{X: 1, Y: 1}, grid.Pos{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, d)
}

func TestDijkstra_PathAndUnreachable(t *testing.T) {
	g, err := grid.Parse([]string{
		"######",
		"#..#.#",
		"#.##.#",
		"#....#",
		"######",
		"######",
	})
	require.NoError(t, err)
	src := grid.Pos{X: 2, Y: 1}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, 8, dist[grid.Pos{X: 4, Y: 1}])

	path, err := dijkstra.PathTo(prev, src, grid.Pos{X: 4, Y: 1})
	require.NoError(t, err)
	assert.Len(t, path, 9)
	assert.Equal(t, src, path[0])

	_, err = dijkstra.Distance(g, src, grid.Pos{X: 0, Y: 0})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = dijkstra.PathTo(prev, src, grid.Pos{X: 3, Y: 1})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(src))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev is nil without WithReturnPath")
	assert.Len(t, dist, 9)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g, err := grid.New(7)
	require.NoError(t, err)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Pos{X: 1, Y: 1}), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	// cells within Manhattan distance 2 of a corner: 1 + 2 + 3
	assert.Len(t, dist, 6)
	for _, d := range dist {
		assert.LessOrEqual(t, d, 2)
	}
}

// TestDijkstra_MatchesBFSOnConn4 cross-checks against BFS, where every move costs 1.
func TestDijkstra_MatchesBFSOnConn4(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		g, err := grid.New(12)
		require.NoError(t, err)
		for y := 1; y < 11; y++ {
			for x := 1; x < 11; x++ {
				if rng.Float64() < 0.3 {
					g.SetWall(grid.Pos{X: x, Y: y}, true)
				}
			}
		}
		src := grid.Pos{X: 1, Y: 1}
		g.SetWall(src, false)

		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)
		res, err := bfs.BFS(g, src)
		require.NoError(t, err)
		assert.Equal(t, res.Depth, dist, "trial %d", trial)
	}
}
