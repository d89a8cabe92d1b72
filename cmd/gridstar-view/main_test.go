package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/config"
	"github.com/katalvlaran/gridstar/search"
)

func TestTicksPerSecond(t *testing.T) {
	assert.Equal(t, 4, ticksPerSecond(250*time.Millisecond))
	assert.Equal(t, maxTPS, ticksPerSecond(0))
	assert.Equal(t, maxTPS, ticksPerSecond(time.Millisecond))
	assert.Equal(t, 1, ticksPerSecond(3*time.Second))
}

func TestScreenSize(t *testing.T) {
	w, h := screenSize(64, 10)
	assert.Equal(t, 640, w)
	assert.Equal(t, 640+statusRows*lineHeight+8, h)

	w, _ = screenSize(5, 10)
	assert.Equal(t, 320, w, "narrow boards keep room for the status text")
}

func TestSession_StepsToCompletion(t *testing.T) {
	cfg, err := config.Parse([]byte(`
map:
  connectivity: "4"
  layout: ["#####", "#S..#", "#...#", "#..G#", "#####"]
`))
	require.NoError(t, err)
	s, err := newSession(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, 0, s.frame.Iteration)

	for i := 0; i < 20; i++ {
		require.NoError(t, s.step())
	}
	assert.Equal(t, search.GoalReached, s.engine.Status())
	assert.True(t, s.frame.Final)
	assert.Equal(t, "Goal reached - Steps: 4", s.status(false)[1])
	assert.Equal(t, "Goal reached - Steps: 4 (paused)", s.status(true)[1])
}

func TestGame_RestartReplaysLayout(t *testing.T) {
	cfg, err := config.Parse([]byte(`
map:
  seed: 9
  layout: ["#####", "#S..#", "#...#", "#..G#", "#####"]
`))
	require.NoError(t, err)
	logger := slog.New(slog.DiscardHandler)
	s, err := newSession(cfg, logger)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.step())
	}

	g := &Game{cfg: cfg, logger: logger, cell: 10, s: s}
	require.NoError(t, g.restart())
	assert.Equal(t, int64(9), g.cfg.Map.Seed, "a fixed layout keeps its seed")
	assert.Equal(t, 0, g.s.engine.Result().Iterations)
	lines := g.s.status(false)
	assert.Equal(t, "layout  iteration 0  frontier 1", lines[0])
	assert.Contains(t, lines[2], "r replay")
}

func TestGame_RestartAdvancesSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Map.Size = 8
	cfg.Map.Seed = 41
	logger := slog.New(slog.DiscardHandler)
	s, err := newSession(cfg, logger)
	require.NoError(t, err)

	g := &Game{cfg: cfg, logger: logger, cell: 10, s: s}
	require.NoError(t, g.restart())
	assert.Equal(t, int64(42), g.cfg.Map.Seed)
	assert.Equal(t, int64(42), g.s.seed)
	lines := g.s.status(false)
	assert.Contains(t, lines[0], "seed 42")
	assert.Contains(t, lines[2], "r new map")
}
