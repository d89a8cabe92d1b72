package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/frontier"
	"github.com/katalvlaran/gridstar/grid"
)

// manhattanTo returns an estimator towards goal.
func manhattanTo(goal grid.Pos) frontier.Estimator {
	return func(p grid.Pos) int {
		dx, dy := p.X-goal.X, p.Y-goal.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return dx + dy
	}
}

func zero(grid.Pos) int { return 0 }

// kinds runs fn once per implementation.
func kinds(t *testing.T, fn func(t *testing.T, newF func(frontier.Estimator) frontier.Frontier)) {
	t.Run("list", func(t *testing.T) {
		fn(t, func(e frontier.Estimator) frontier.Frontier { return frontier.NewList(e) })
	})
	t.Run("heap", func(t *testing.T) {
		fn(t, func(e frontier.Estimator) frontier.Frontier { return frontier.NewHeap(e) })
	})
}

func TestExtractMin_Empty(t *testing.T) {
	kinds(t, func(t *testing.T, newF func(frontier.Estimator) frontier.Frontier) {
		f := newF(zero)
		_, ok := f.ExtractMin()
		assert.False(t, ok)
		assert.Equal(t, 0, f.Len())
	})
}

// TestExtractMin_TieBreak checks that equal g+h entries leave in insertion order.
func TestExtractMin_TieBreak(t *testing.T) {
	kinds(t, func(t *testing.T, newF func(frontier.Estimator) frontier.Frontier) {
		goal := grid.Pos{X: 3, Y: 3}
		f := newF(manhattanTo(goal))
		f.Push(0, grid.Pos{X: 1, Y: 1}, 2) // f=6
		f.Push(1, grid.Pos{X: 2, Y: 1}, 1) // f=4
		f.Push(2, grid.Pos{X: 1, Y: 2}, 1) // f=4
		f.Push(3, grid.Pos{X: 3, Y: 2}, 3) // f=4

		var order []int
		for f.Len() > 0 {
			e, ok := f.ExtractMin()
			require.True(t, ok)
			order = append(order, e.Node)
		}
		assert.Equal(t, []int{1, 2, 3, 0}, order)
	})
}

// TestReplace_MovesToBack verifies that a replaced entry loses its tie priority.
func TestReplace_MovesToBack(t *testing.T) {
	kinds(t, func(t *testing.T, newF func(frontier.Estimator) frontier.Frontier) {
		f := newF(zero)
		a, b := grid.Pos{X: 1, Y: 1}, grid.Pos{X: 2, Y: 2}
		f.Push(10, a, 5)
		f.Push(11, b, 3)

		require.True(t, f.Replace(a, 12, 3))
		assert.False(t, f.Replace(grid.Pos{X: 9, Y: 9}, 0, 0))

		got, ok := f.Find(a)
		require.True(t, ok)
		assert.Equal(t, 12, got.Node)
		assert.Equal(t, 3, got.Cost)
		assert.Equal(t, []grid.Pos{b, a}, f.Positions())

		first, _ := f.ExtractMin()
		assert.Equal(t, b, first.Pos, "b was inserted before a's replacement")
		second, _ := f.ExtractMin()
		assert.Equal(t, 12, second.Node)
	})
}

func TestFindAndRemove(t *testing.T) {
	kinds(t, func(t *testing.T, newF func(frontier.Estimator) frontier.Frontier) {
		f := newF(zero)
		p := grid.Pos{X: 4, Y: 1}
		_, ok := f.Find(p)
		assert.False(t, ok)

		f.Push(7, p, 2)
		e, ok := f.Find(p)
		require.True(t, ok)
		assert.Equal(t, 7, e.Node)
		assert.Equal(t, 2, e.Cost)

		assert.True(t, f.Remove(p))
		assert.False(t, f.Remove(p))
		assert.Equal(t, 0, f.Len())
	})
}

// TestListHeapAgree drives both implementations with the same random
// operations and expects identical extraction sequences.
func TestListHeapAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	est := manhattanTo(grid.Pos{X: 8, Y: 8})
	list := frontier.NewList(est)
	hp := frontier.NewHeap(est)

	node := 0
	for round := 0; round < 2000; round++ {
		p := grid.Pos{X: rng.Intn(16), Y: rng.Intn(16)}
		cost := rng.Intn(20)
		switch op := rng.Intn(4); {
		case op < 2:
			le, lok := list.Find(p)
			_, hok := hp.Find(p)
			require.Equal(t, lok, hok)
			node++
			if !lok {
				list.Push(node, p, cost)
				hp.Push(node, p, cost)
			} else if cost < le.Cost {
				list.Replace(p, node, cost)
				hp.Replace(p, node, cost)
			}
		case op == 2:
			assert.Equal(t, list.Remove(p), hp.Remove(p))
		default:
			le, lok := list.ExtractMin()
			he, hok := hp.ExtractMin()
			require.Equal(t, lok, hok)
			require.Equal(t, le.Node, he.Node, "round %d", round)
			require.Equal(t, le.Pos, he.Pos)
			require.Equal(t, le.Cost, he.Cost)
		}
		require.Equal(t, list.Len(), hp.Len())
	}
	assert.Equal(t, list.Positions(), hp.Positions())
}

func TestParseKind(t *testing.T) {
	k, err := frontier.ParseKind("HEAP")
	require.NoError(t, err)
	assert.Equal(t, frontier.KindHeap, k)
	k, err = frontier.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, frontier.KindList, k)
	_, err = frontier.ParseKind("fibonacci")
	assert.ErrorIs(t, err, frontier.ErrUnknownKind)

	assert.IsType(t, &frontier.Heap{}, frontier.New(frontier.KindHeap, zero))
	assert.IsType(t, &frontier.List{}, frontier.New(frontier.KindList, zero))
}
