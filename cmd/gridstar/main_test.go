package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const openLayout = `
map:
  connectivity: "4"
  layout:
    - "#####"
    - "#S..#"
    - "#...#"
    - "#..G#"
    - "#####"
`

const walledLayout = `
map:
  connectivity: "8"
  layout:
    - "#######"
    - "#S....#"
    - "#.###.#"
    - "#.#G#.#"
    - "#.###.#"
    - "#.....#"
    - "#######"
`

func TestRun_GoalReachedQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", writeConfig(t, openLayout), "-quiet", "-no-color"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "Goal reached\nSteps: 4\n", stdout.String())
	assert.Contains(t, stderr.String(), "search finished")
}

func TestRun_FramesThenOutcome(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", writeConfig(t, openLayout), "-delay", "0", "-no-color"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.True(t, strings.HasSuffix(out, "Goal reached\nSteps: 4\n"))
	// 8 expansion frames and the final one, each with one player and one goal
	assert.Equal(t, 9, strings.Count(out, "P  "))
	assert.Equal(t, 9, strings.Count(out, "G  "))
	assert.Equal(t, 9*5, strings.Count(out, "  \n"))
}

func TestRun_Exhausted(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", writeConfig(t, walledLayout), "-delay", "0", "-no-color", "-verify"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.True(t, strings.HasSuffix(stdout.String(), "Can't reach\n"))
	assert.NotContains(t, stdout.String(), "Goal reached")
	assert.Contains(t, stderr.String(), "dijkstra=unreachable")
}

func TestRun_Verify(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", writeConfig(t, openLayout), "-quiet", "-verify", "-log-format", "json"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stderr.String(), `"dijkstra_cost":4`)
	assert.Contains(t, stderr.String(), `"astar_cost":4`)
	assert.NotContains(t, stderr.String(), "not optimal")
}

func TestRun_RandomMapIsDeterministic(t *testing.T) {
	args := []string{"-seed", "42", "-size", "20", "-walls", "0.3", "-quiet", "-no-color", "-log-level", "error"}
	var a, b, stderr bytes.Buffer
	require.Equal(t, exitOK, run(context.Background(), args, &a, &stderr))
	require.Equal(t, exitOK, run(context.Background(), args, &b, &stderr))
	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}

func TestRun_Maze(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-seed", "3", "-size", "21", "-style", "maze", "-conn", "4", "-quiet", "-no-color", "-verify"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Goal reached", "maze endpoints are always connected")
	assert.NotContains(t, stderr.String(), "not optimal")
}

func TestRun_PNGFinalFrame(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-config", writeConfig(t, openLayout), "-quiet", "-png-dir", dir, "-png-final",
	}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "frame-00009.png")}, files)
}

func TestRun_ConfigErrors(t *testing.T) {
	cases := [][]string{
		{"-walls", "1.5"},
		{"-size", "0"},
		{"-conn", "6"},
		{"-heuristic", "euclid"},
		{"-frontier", "fib"},
		{"-style", "cave"},
		{"-no-such-flag"},
		{"-config", filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), append(args, "-quiet"), &stdout, &stderr)
		assert.Equal(t, exitConfig, code, "%v", args)
		assert.Empty(t, stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitOK, run(context.Background(), []string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-heuristic")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-config", writeConfig(t, openLayout), "-quiet"}, &stdout, &stderr)
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, stderr.String(), "search cancelled")
}
