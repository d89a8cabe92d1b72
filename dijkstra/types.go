// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on grid.Grid boards.
//
// Options:
//
//	– Source:      starting cell (must be set, in bounds and passable).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; cells beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNoSource         if no Source option was supplied.
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds if the source lies outside the grid.
//	– ErrSourceBlocked    if the source is a wall.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrUnreachable      from Distance and PathTo when no route exists.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridstar/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrSourceBlocked indicates that the source cell is a wall.
	ErrSourceBlocked = errors.New("dijkstra: source is a wall")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that the destination has no route from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	Source      grid.Pos // The source cell
	ReturnPath  bool     // Whether to return the predecessor map
	MaxDistance int      // Maximum distance to explore

	hasSource bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be supplied.
func Source(p grid.Pos) Option {
	return func(o *Options) {
		o.Source = p
		o.hasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Negative values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:      unset (Dijkstra returns ErrNoSource).
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: math.MaxInt (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt,
	}
}
