package console_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/render"
	"github.com/katalvlaran/gridstar/render/console"
)

func TestRender_Glyphs(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	g.SetState(grid.Pos{X: 2, Y: 1}, grid.DeadEnd)
	g.SetState(grid.Pos{X: 1, Y: 2}, grid.Path)

	var buf bytes.Buffer
	r := console.New(&buf, console.WithNoColor(), console.WithPadding(1))
	require.NoError(t, r.Render(render.Frame{
		Grid:    g,
		Player:  grid.Pos{X: 1, Y: 1},
		Goal:    grid.Pos{X: 2, Y: 2},
		Current: grid.Pos{X: 1, Y: 1},
	}))

	want := "\n" +
		"#  #  #  #  \n" +
		"#  P  *  #  \n" +
		"#  *  G  #  \n" +
		"#  #  #  #  \n"
	assert.Equal(t, want, buf.String())
}

func TestRender_DefaultPadding(t *testing.T) {
	g, err := grid.New(1)
	require.NoError(t, err)
	var buf bytes.Buffer
	r := console.New(&buf, console.WithNoColor(), console.WithPadding(-3))
	require.NoError(t, r.Render(render.Frame{Grid: g, Player: grid.Pos{X: 5, Y: 5}, Goal: grid.Pos{X: 5, Y: 5}, Current: grid.Pos{X: 5, Y: 5}}))
	assert.Equal(t, "#  \n", buf.String())

	buf.Reset()
	r = console.New(&buf, console.WithNoColor())
	require.NoError(t, r.Render(render.Frame{Grid: g, Player: grid.Pos{X: 5, Y: 5}, Goal: grid.Pos{X: 5, Y: 5}, Current: grid.Pos{X: 5, Y: 5}}))
	assert.True(t, strings.HasPrefix(buf.String(), strings.Repeat("\n", console.DefaultPadding)+"#"))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	r := console.New(&buf, console.WithNoColor())
	require.NoError(t, r.ReportGoal(7))
	require.NoError(t, r.ReportExhausted())
	assert.Equal(t, "Goal reached\nSteps: 7\nCan't reach\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_WriteError(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	r := console.New(failingWriter{}, console.WithNoColor())
	assert.Error(t, r.Render(render.Frame{Grid: g}))
}
