package search

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/gridstar/search"

// Run steps the engine until it reaches a terminal status.
//
// ctx is checked once per iteration and honoured by the Pacer; on cancellation
// the status becomes Cancelled and the error wraps both ErrCancelled and
// ctx.Err(). GoalReached and Exhausted return a nil error.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "search.Engine.Run",
		trace.WithAttributes(
			attribute.String("run_id", e.result.RunID),
			attribute.String("start", e.start.String()),
			attribute.String("goal", e.goal.String()),
			attribute.Int("grid_size", e.grid.Size()),
		),
	)
	defer span.End()

	res, err := e.loop(ctx)
	span.SetAttributes(
		attribute.String("status", res.Status.String()),
		attribute.Int("iterations", res.Iterations),
		attribute.Int("steps", res.Steps),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, res.Status.String())
		return res, err
	}
	span.SetStatus(codes.Ok, res.Status.String())
	return res, nil
}

func (e *Engine) loop(ctx context.Context) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return e.cancel(err)
		}
		if limit := e.opts.MaxIterations; limit > 0 && e.result.Iterations >= limit {
			return e.result, fmt.Errorf("%w: %d", ErrIterationLimit, limit)
		}

		status, err := e.Step()
		if err != nil {
			return e.result, fmt.Errorf("search: render iteration %d: %w", e.result.Iterations, err)
		}
		if status.Done() {
			return e.result, nil
		}

		if e.opts.Pacer != nil {
			if err := e.opts.Pacer.Wait(ctx); err != nil {
				return e.cancel(err)
			}
		}
	}
}

func (e *Engine) cancel(cause error) (Result, error) {
	if !e.status.Done() {
		e.finish(Cancelled)
	}
	e.log.Warn("search cancelled", slog.Int("iterations", e.result.Iterations))
	return e.result, fmt.Errorf("%w after %d iterations: %w", ErrCancelled, e.result.Iterations, cause)
}
