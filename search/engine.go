package search

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridstar/frontier"
	"github.com/katalvlaran/gridstar/grid"
	"github.com/katalvlaran/gridstar/ledger"
	"github.com/katalvlaran/gridstar/render"
)

// node is an arena slot: a discovered cell and the index of the node it was
// discovered from (-1 for the start).
type node struct {
	pos    grid.Pos
	parent int
}

// Engine holds the mutable state of one search. It is not safe for
// concurrent use.
type Engine struct {
	grid        *grid.Grid
	start, goal grid.Pos
	opts        Options
	log         *slog.Logger

	nodes  []node
	open   frontier.Frontier
	closed *ledger.Ledger

	status  Status
	current grid.Pos
	result  Result
	path    mapset.Set[grid.Pos]
}

// New prepares a search on g from start to goal. The start node is queued
// with cost 0. g is mutated by the search; pass a Snapshot to keep the
// original untouched.
//
// Returns ErrNilGrid, ErrOutOfBounds or ErrBlocked for invalid input and
// ErrOptionViolation for bad options.
func New(g *grid.Grid, start, goal grid.Pos, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, p := range []grid.Pos{start, goal} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, p, g.Size(), g.Size())
		}
		if !g.IsPassable(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlocked, p)
		}
	}

	runID := uuid.NewString()
	e := &Engine{
		grid:    g,
		start:   start,
		goal:    goal,
		opts:    o,
		log:     o.Logger.With(slog.String("run_id", runID)),
		closed:  ledger.New(o.Policy),
		status:  Running,
		current: start,
		result:  Result{Status: Running, RunID: runID},
		path:    mapset.New[grid.Pos](),
	}
	e.open = frontier.New(o.Frontier, func(p grid.Pos) int { return o.Heuristic(p, goal) })
	e.open.Push(e.newNode(start, -1), start, 0)

	return e, nil
}

// Status returns the engine state.
func (e *Engine) Status() Status { return e.status }

// Result returns the summary so far; Path is set once the goal is reached.
func (e *Engine) Result() Result { return e.result }

// Grid returns the live grid being marked.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Start returns the start cell.
func (e *Engine) Start() grid.Pos { return e.start }

// Goal returns the goal cell.
func (e *Engine) Goal() grid.Pos { return e.goal }

// Current returns the cell taken from the frontier by the latest Step.
func (e *Engine) Current() grid.Pos { return e.current }

// FrontierLen returns the number of queued entries.
func (e *Engine) FrontierLen() int { return e.open.Len() }

// FrontierPositions lists queued cells in insertion order.
func (e *Engine) FrontierPositions() []grid.Pos { return e.open.Positions() }

// Closed returns the closed-set ledger.
func (e *Engine) Closed() *ledger.Ledger { return e.closed }

// Frame snapshots the current state for a renderer.
func (e *Engine) Frame() render.Frame {
	return render.Frame{
		Grid:      e.grid.Snapshot(),
		Player:    e.start,
		Goal:      e.goal,
		Current:   e.current,
		Path:      e.path,
		Iteration: e.result.Iterations,
		Final:     e.status == GoalReached,
		Status:    e.status.String(),
	}
}

// Step runs one iteration and returns the resulting status. Once the status
// is terminal further calls do nothing. The error is the renderer's.
func (e *Engine) Step() (Status, error) {
	if e.status.Done() {
		return e.status, nil
	}
	e.result.Iterations++

	entry, ok := e.open.ExtractMin()
	if !ok {
		e.finish(Exhausted)
		return e.status, nil
	}
	cur := e.nodes[entry.Node]
	e.current = cur.pos

	if cur.pos == e.goal {
		e.reconstruct(entry.Node, entry.Cost)
		e.finish(GoalReached)
		// the final frame shows the walk's root, like the last cell the path walk visited
		e.current = e.start
		return e.status, e.opts.Renderer.Render(e.Frame())
	}

	e.closed.Record(cur.pos, entry.Cost)
	e.result.Expanded++
	if e.opts.MarkExpanded {
		e.grid.SetState(cur.pos, grid.Expanded)
	}

	deadEnd := !e.expand(entry)
	if deadEnd {
		e.grid.SetState(cur.pos, grid.DeadEnd)
		e.result.DeadEnds++
	}
	e.opts.Metrics.ObserveExpansion(deadEnd, e.open.Len())
	e.log.Debug("expanded",
		slog.String("pos", cur.pos.String()),
		slog.Int("cost", entry.Cost),
		slog.Int("frontier", e.open.Len()),
		slog.Bool("dead_end", deadEnd),
	)

	return e.status, e.opts.Renderer.Render(e.Frame())
}

// expand relaxes every neighbour of entry and reports whether at least one
// was pushed or replaced.
func (e *Engine) expand(entry frontier.Entry) bool {
	from := e.nodes[entry.Node].pos
	accepted := false
	for _, d := range e.grid.Offsets() {
		p := from.Add(d)
		if !e.grid.IsPassable(p) {
			continue
		}
		cost := entry.Cost + d.Cost()
		if e.closed.Blocks(p, cost) {
			continue
		}
		if queued, ok := e.open.Find(p); ok {
			if cost >= queued.Cost {
				continue
			}
			e.open.Replace(p, e.newNode(p, entry.Node), cost)
		} else {
			e.open.Push(e.newNode(p, entry.Node), p, cost)
		}
		e.grid.SetState(p, grid.Frontier)
		accepted = true
	}
	return accepted
}

func (e *Engine) newNode(p grid.Pos, parent int) int {
	e.nodes = append(e.nodes, node{pos: p, parent: parent})
	return len(e.nodes) - 1
}

func (e *Engine) finish(s Status) {
	e.status = s
	e.result.Status = s
	e.opts.Metrics.ObserveOutcome(s.String(), e.result.Iterations, e.result.Steps, s == GoalReached)
	e.log.Info("search finished",
		slog.String("status", s.String()),
		slog.String("start", e.start.String()),
		slog.String("goal", e.goal.String()),
		slog.Int("iterations", e.result.Iterations),
		slog.Int("expanded", e.result.Expanded),
		slog.Int("dead_ends", e.result.DeadEnds),
		slog.Int("steps", e.result.Steps),
		slog.Int("cost", e.result.Cost),
	)
}
