// Package console draws search frames as coloured text, one glyph per cell,
// and prints the final outcome lines.
//
//	Wall     #  black          Frontier  *  yellow
//	Air      #  default        Expanded  *  bright yellow
//	DeadEnd  *  red            Path      *  magenta
//	Player   P  blue           Goal      G  green
//	Current  *  bright magenta
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/render"
)

// DefaultPadding is the number of blank lines printed before each frame so
// consecutive frames scroll instead of stacking.
const DefaultPadding = 10

type style struct {
	glyph string
	color *color.Color // nil prints the glyph as-is
}

// Renderer writes frames to an io.Writer.
type Renderer struct {
	w        io.Writer
	padding  int
	states   map[grid.CellState]style
	overlays map[render.Overlay]style
	success  *color.Color
	failure  *color.Color
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithNoColor strips ANSI colour codes from the output.
func WithNoColor() Option {
	return func(r *Renderer) {
		for _, s := range r.states {
			if s.color != nil {
				s.color.DisableColor()
			}
		}
		for _, s := range r.overlays {
			s.color.DisableColor()
		}
		r.success.DisableColor()
		r.failure.DisableColor()
	}
}

// WithPadding sets the blank lines printed before each frame. Negative values are treated as 0.
func WithPadding(n int) Option {
	return func(r *Renderer) {
		if n < 0 {
			n = 0
		}
		r.padding = n
	}
}

// New returns a console renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		w:       w,
		padding: DefaultPadding,
		states: map[grid.CellState]style{
			grid.Wall:     {"#", color.New(color.FgBlack)},
			grid.Air:      {"#", nil},
			grid.Frontier: {"*", color.New(color.FgYellow)},
			grid.Expanded: {"*", color.New(color.FgHiYellow)},
			grid.DeadEnd:  {"*", color.New(color.FgRed)},
			grid.Path:     {"*", color.New(color.FgMagenta)},
		},
		overlays: map[render.Overlay]style{
			render.PlayerOverlay:  {"P", color.New(color.FgBlue)},
			render.CurrentOverlay: {"*", color.New(color.FgHiMagenta)},
			render.GoalOverlay:    {"G", color.New(color.FgGreen)},
		},
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes one frame: padding lines, then one text row per grid row with
// every glyph followed by two spaces.
func (r *Renderer) Render(f render.Frame) error {
	n := f.Grid.Size()
	var b strings.Builder
	b.Grow(r.padding + n*(n*3+1))
	b.WriteString(strings.Repeat("\n", r.padding))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b.WriteString(r.cell(f, grid.Pos{X: x, Y: y}))
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) cell(f render.Frame, p grid.Pos) string {
	s, ok := r.overlays[f.OverlayAt(p)]
	if !ok {
		s = r.states[f.Grid.State(p)]
	}
	if s.color == nil {
		return s.glyph
	}
	return s.color.Sprint(s.glyph)
}

// ReportGoal prints the success lines.
func (r *Renderer) ReportGoal(steps int) error {
	_, err := fmt.Fprintf(r.w, "%s\nSteps: %d\n", r.success.Sprint("Goal reached"), steps)
	return err
}

// ReportExhausted prints the failure line.
func (r *Renderer) ReportExhausted() error {
	_, err := fmt.Fprintln(r.w, r.failure.Sprint("Can't reach"))
	return err
}
