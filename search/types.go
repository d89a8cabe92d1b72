package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridstar/frontier"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/heuristic"
	"github.com/katalvlaran/gridstar/ledger"
	"github.com/katalvlaran/gridstar/metrics"
	"github.com/katalvlaran/gridstar/render"
)

// Sentinel errors for engine construction and runs.
var (
	// ErrNilGrid is returned when no grid is supplied.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: position out of bounds")
	// ErrBlocked is returned when start or goal is a wall.
	ErrBlocked = errors.New("search: position is a wall")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
	// ErrIterationLimit is returned by Run when MaxIterations is reached first.
	ErrIterationLimit = errors.New("search: iteration limit reached")
	// ErrCancelled wraps the context error when a run is cancelled.
	ErrCancelled = errors.New("search: cancelled")
)

// Status is the engine state.
type Status int

const (
	// Running means the frontier still has entries to try.
	Running Status = iota
	// GoalReached means the goal was extracted and the path reconstructed.
	GoalReached
	// Exhausted means the frontier emptied without reaching the goal.
	Exhausted
	// Cancelled means the host stopped the run before it terminated.
	Cancelled
)

var statusNames = [...]string{"running", "goal_reached", "exhausted", "cancelled"}

// String returns a snake_case name, also used as a metrics label.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Done reports whether s is terminal.
func (s Status) Done() bool { return s != Running }

// Result summarises a search.
type Result struct {
	Status Status
	// Path runs from start to goal inclusive; nil unless GoalReached.
	Path []grid.Pos
	// Steps is the number of moves on Path.
	Steps int
	// Cost is the accumulated step cost of Path (diagonals count 2).
	Cost int
	// Iterations counts extraction attempts, so an Exhausted run includes
	// the final attempt on an empty frontier. Expanded counts the nodes
	// expanded, DeadEnds the expanded nodes that accepted no neighbour.
	Iterations, Expanded, DeadEnds int
	// RunID identifies the run in logs.
	RunID string
}

// Pacer is waited on between iterations of Run.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Options configures an Engine.
type Options struct {
	// Heuristic estimates the remaining cost. Default heuristic.Manhattan.
	Heuristic heuristic.Func
	// Policy is the closed-set tie-break. Default ledger.NonStrict.
	Policy ledger.Policy
	// Frontier selects the open-set implementation. Default frontier.KindList.
	Frontier frontier.Kind
	// Renderer receives a Frame per expansion and on success. Default render.Discard.
	Renderer render.Renderer
	// Pacer is waited on between Run iterations. Default: no wait.
	Pacer Pacer
	// Logger receives debug step logs and an info line per finished run.
	Logger *slog.Logger
	// Metrics records expansions and outcomes; nil records nothing.
	Metrics *metrics.Recorder
	// MarkExpanded marks expanded cells Expanded. When false only Frontier,
	// DeadEnd and Path marks are written.
	MarkExpanded bool
	// MaxIterations stops Run with ErrIterationLimit; 0 means no limit.
	MaxIterations int

	err error
}

// Option configures an Engine via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// DefaultOptions returns Manhattan, NonStrict, list frontier, marked
// expansions, no renderer, no pacing, a discarding logger and no limit.
func DefaultOptions() Options {
	return Options{
		Heuristic:    heuristic.Manhattan,
		Policy:       ledger.NonStrict,
		Frontier:     frontier.KindList,
		Renderer:     render.Discard,
		Pacer:        nil,
		Logger:       slog.New(slog.DiscardHandler),
		MarkExpanded: true,
	}
}

// WithHeuristic sets the heuristic. nil is ignored.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithPolicy sets the closed-set tie-break policy.
func WithPolicy(p ledger.Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithFrontier selects the open-set implementation.
func WithFrontier(k frontier.Kind) Option {
	return func(o *Options) { o.Frontier = k }
}

// WithRenderer sets the frame consumer. nil is ignored.
func WithRenderer(r render.Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithPacer sets the pacer waited on between Run iterations.
func WithPacer(p Pacer) Option {
	return func(o *Options) { o.Pacer = p }
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithMarkExpanded toggles the Expanded mark on expanded cells.
func WithMarkExpanded(mark bool) Option {
	return func(o *Options) { o.MarkExpanded = mark }
}

// WithMaxIterations caps Run.
//
//	n > 0:  stop after n iterations
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}
