package mapgen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/bfs"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/mapgen"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*mapgen.Config)
		want error
	}{
		{"zero size", func(c *mapgen.Config) { c.Size = 0 }, mapgen.ErrBadSize},
		{"negative p", func(c *mapgen.Config) { c.WallProbability = -0.1 }, mapgen.ErrBadProbability},
		{"p above one", func(c *mapgen.Config) { c.WallProbability = 1.5 }, mapgen.ErrBadProbability},
		{"NaN p", func(c *mapgen.Config) { c.WallProbability = math.NaN() }, mapgen.ErrBadProbability},
		{"no attempts", func(c *mapgen.Config) { c.MaxAttempts = 0 }, mapgen.ErrBadAttempts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := mapgen.DefaultConfig()
			tc.mut(&cfg)
			_, err := mapgen.Generate(cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.NoError(t, mapgen.DefaultConfig().Validate())
}

// TestGenerate_Shape checks border walls, interior endpoints and forced Air.
func TestGenerate_Shape(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := mapgen.DefaultConfig()
		cfg.Size = 16
		cfg.Seed = seed
		cfg.WallProbability = 1
		m, err := mapgen.Generate(cfg)
		require.NoError(t, err)

		n := m.Grid.Size()
		require.Equal(t, 16, n)
		for i := 0; i < n; i++ {
			for _, p := range []grid.Pos{{X: i, Y: 0}, {X: i, Y: n - 1}, {X: 0, Y: i}, {X: n - 1, Y: i}} {
				assert.Equal(t, grid.Wall, m.Grid.State(p), "border %v", p)
			}
		}
		for _, p := range []grid.Pos{m.Start, m.Goal} {
			assert.True(t, p.X >= 1 && p.X <= n-2 && p.Y >= 1 && p.Y <= n-2, "endpoint %v on border", p)
			assert.True(t, m.Grid.IsPassable(p))
		}
		// p = 1 walls everything else
		open := n*n - m.Grid.Count(grid.Wall)
		if m.Start == m.Goal {
			assert.Equal(t, 1, open)
		} else {
			assert.Equal(t, 2, open)
		}
		assert.Equal(t, grid.Conn8, m.Grid.Connectivity())
	}
}

func TestGenerate_NoWalls(t *testing.T) {
	cfg := mapgen.DefaultConfig()
	cfg.Size = 10
	cfg.WallProbability = 0
	m, err := mapgen.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 4*10-4, m.Grid.Count(grid.Wall))
	assert.Equal(t, 1, m.Attempts)
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := mapgen.DefaultConfig()
	cfg.Size = 32
	cfg.Seed = 99
	a, err := mapgen.Generate(cfg)
	require.NoError(t, err)
	b, err := mapgen.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Grid.String(), b.Grid.String())
	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.Goal, b.Goal)

	cfg.Seed = 100
	c, err := mapgen.Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Grid.String(), c.Grid.String())
}

// TestGenerate_TinyBoards keeps endpoints in bounds when there is no interior.
func TestGenerate_TinyBoards(t *testing.T) {
	for _, size := range []int{1, 2} {
		cfg := mapgen.DefaultConfig()
		cfg.Size = size
		m, err := mapgen.Generate(cfg)
		require.NoError(t, err)
		assert.True(t, m.Grid.InBounds(m.Start))
		assert.True(t, m.Grid.InBounds(m.Goal))
		assert.True(t, m.Grid.IsPassable(m.Start))
		assert.True(t, m.Grid.IsPassable(m.Goal))
	}
}

func TestGenerate_RequireReachable(t *testing.T) {
	cfg := mapgen.DefaultConfig()
	cfg.Size = 24
	cfg.Connectivity = grid.Conn4
	cfg.WallProbability = 0.3
	cfg.RequireReachable = true
	cfg.MaxAttempts = 50
	for seed := int64(1); seed <= 10; seed++ {
		cfg.Seed = seed
		m, err := mapgen.Generate(cfg)
		require.NoError(t, err)
		assert.True(t, bfs.Reachable(m.Grid, m.Start, m.Goal))
		assert.GreaterOrEqual(t, m.Attempts, 1)
	}

	// On an all-wall board only equal or adjacent endpoints connect.
	cfg.WallProbability = 1
	cfg.MaxAttempts = 3
	var failed bool
	for seed := int64(1); seed <= 10 && !failed; seed++ {
		cfg.Seed = seed
		_, err := mapgen.Generate(cfg)
		if err != nil {
			assert.ErrorIs(t, err, mapgen.ErrUnreachable)
			failed = true
		}
	}
	assert.True(t, failed)
}
