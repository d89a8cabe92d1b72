// Package render defines how the search engine hands its state to a display
// target. The engine builds a Frame after every expansion (and once more when
// the goal is reached) and passes it to a Renderer; what a renderer does with
// it (console, PNG files, a window, a test recorder) is not the engine's concern.
package render

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridstar/grid"
)

// Frame is a snapshot of one search step.
type Frame struct {
	// Grid is a private copy of the map; renderers may keep it.
	Grid *grid.Grid
	// Player is the start cell, Goal the target, Current the cell just expanded.
	Player, Goal, Current grid.Pos
	// Path holds the reconstructed route on the final frame; empty otherwise.
	Path mapset.Set[grid.Pos]
	// Iteration is the 1-based frontier extraction that produced the frame.
	Iteration int
	// Final is set on the frame emitted when the goal is reached.
	Final bool
	// Status is the engine status name at the time of the frame.
	Status string
}

// OnPath reports whether p is part of the final route.
func (f Frame) OnPath(p grid.Pos) bool {
	return f.Path.Has(p)
}

// Overlay identifies what is drawn on top of a cell regardless of its state.
type Overlay int

const (
	// NoOverlay means the cell state is drawn.
	NoOverlay Overlay = iota
	// PlayerOverlay marks the start cell.
	PlayerOverlay
	// CurrentOverlay marks the cell expanded in this step.
	CurrentOverlay
	// GoalOverlay marks the goal.
	GoalOverlay
)

// OverlayAt returns the overlay for p. Player wins over Current, Current over Goal.
func (f Frame) OverlayAt(p grid.Pos) Overlay {
	switch p {
	case f.Player:
		return PlayerOverlay
	case f.Current:
		return CurrentOverlay
	case f.Goal:
		return GoalOverlay
	}
	return NoOverlay
}

// Renderer consumes frames.
type Renderer interface {
	Render(f Frame) error
}

// Func adapts a function to Renderer.
type Func func(f Frame) error

// Render calls fn(f).
func (fn Func) Render(f Frame) error { return fn(f) }

// Discard drops every frame.
var Discard Renderer = Func(func(Frame) error { return nil })

// Multi fans a frame out to every renderer, joining their errors.
func Multi(rs ...Renderer) Renderer {
	return Func(func(f Frame) error {
		var errs []error
		for _, r := range rs {
			if err := r.Render(f); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
