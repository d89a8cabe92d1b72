// Package pngframe writes search frames as PNG images, one file per frame,
// for turning a run into an animation or inspecting a single step.
package pngframe

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/render"
)

// ErrBadScale is returned by New when the pixel scale is below 1.
var ErrBadScale = errors.New("pngframe: scale must be at least 1")

// DefaultScale is the side of one cell in pixels.
const DefaultScale = 8

// Writer renders frames into a directory as frame-00001.png, frame-00002.png, ...
type Writer struct {
	dir       string
	scale     int
	finalOnly bool
	written   int
}

var _ render.Renderer = (*Writer)(nil)

// Option configures a Writer.
type Option func(*Writer)

// WithScale sets the cell side in pixels.
func WithScale(px int) Option {
	return func(w *Writer) { w.scale = px }
}

// FinalOnly skips every frame except the one emitted when the goal is reached.
func FinalOnly() Option {
	return func(w *Writer) { w.finalOnly = true }
}

// New creates dir if needed and returns a Writer into it.
func New(dir string, opts ...Option) (*Writer, error) {
	w := &Writer{dir: dir, scale: DefaultScale}
	for _, opt := range opts {
		opt(w)
	}
	if w.scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadScale, w.scale)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("pngframe: create %s: %w", dir, err)
	}
	return w, nil
}

// Written returns how many files were saved.
func (w *Writer) Written() int { return w.written }

// Render saves f as the next PNG in the directory.
func (w *Writer) Render(f render.Frame) error {
	if w.finalOnly && !f.Final {
		return nil
	}
	name := filepath.Join(w.dir, fmt.Sprintf("frame-%05d.png", f.Iteration))
	if err := draw(f, w.scale).SavePNG(name); err != nil {
		return fmt.Errorf("pngframe: save %s: %w", name, err)
	}
	w.written++
	return nil
}

// Image draws f at the given scale without touching the filesystem.
func Image(f render.Frame, scale int) image.Image {
	return draw(f, scale).Image()
}

func draw(f render.Frame, scale int) *gg.Context {
	n := f.Grid.Size()
	s := float64(scale)
	dc := gg.NewContext(n*scale, n*scale)
	dc.SetColor(render.Background)
	dc.Clear()

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p := grid.Pos{X: x, Y: y}
			dc.SetColor(render.StateColor(f.Grid.State(p)))
			dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
			dc.Fill()
		}
	}

	// markers are drawn as discs so the underlying state stays visible at the rim
	for _, p := range []grid.Pos{f.Goal, f.Current, f.Player} {
		if !f.Grid.InBounds(p) {
			continue
		}
		c, _ := render.OverlayColor(f.OverlayAt(p))
		dc.SetColor(c)
		dc.DrawCircle(float64(p.X)*s+s/2, float64(p.Y)*s+s/2, s/2)
		dc.Fill()
	}
	return dc
}
