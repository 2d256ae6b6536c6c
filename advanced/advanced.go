// Lower level access to the intersection engine.
//
// The top level package covers the built-in primitives with a shared default
// engine. This package is for callers that need more: a logger to trace
// dispatch, a worker pool for large batches, or new kinds of primitive.
//
// Adding a primitive takes three steps. Give the type a Kind() method returning
// a kind at or above geom.FirstCustomKind. Add that kind to a registry, which
// ranks it after every kind already there. Then register a routine for each
// pair of kinds it should intersect with; Typed adapts a function over concrete
// types. Pairs without a routine never intersect.
package advanced

import (
	"context"

	"github.com/osuushi/intersect/geom"
	"github.com/osuushi/intersect/internal"
	"go.uber.org/zap"
)

type Result = internal.Result
type Routine = internal.Routine
type Registry = internal.Registry

var (
	ErrUnsupportedPrimitiveKind = internal.ErrUnsupportedPrimitiveKind
	ErrInvalidPrimitive         = internal.ErrInvalidPrimitive
)

// A registry with only the built-in kinds and no routines.
func NewRegistry() *Registry {
	return internal.NewRegistry()
}

// A registry with the built-in kinds and routines.
func NewDefaultRegistry() *Registry {
	return internal.NewDefaultRegistry()
}

// Adapt a routine over concrete shape types. See internal.Typed.
func Typed[A, B geom.Shape](fn func(A, B) Result) Routine {
	return internal.Typed(fn)
}

// Build a result for a custom routine. Empty point lists are reported as no
// intersection.
func Points(points ...geom.Vector) Result {
	if len(points) == 0 {
		return Result{Relation: geom.None}
	}
	return Result{Relation: geom.Intersecting, Points: points}
}

func HandleIntersectPanicRecover(r interface{}) error {
	return internal.HandleIntersectPanicRecover(r)
}

type Options struct {
	// Defaults to NewDefaultRegistry()
	Registry *Registry
	// Defaults to a no-op logger
	Logger *zap.Logger
	// Batches are split over this many goroutines. Zero or one means batches
	// run on the calling goroutine.
	Workers int
}

type Engine struct {
	inner   *internal.Engine
	workers int
}

func NewEngine(options Options) *Engine {
	return &Engine{
		inner:   internal.NewEngine(options.Registry, options.Logger),
		workers: options.Workers,
	}
}

func (e *Engine) Registry() *Registry {
	return e.inner.Registry()
}

// Intersect two primitives, in either order.
func (e *Engine) Intersections(a, b geom.Shape) (result Result, err error) {
	defer func() {
		recoveredErr := HandleIntersectPanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			err = recoveredErr
		}
	}()
	return e.inner.Intersections(a, b), nil
}

// All pairwise intersections among the items, in ascending pair order. Both
// the sequential and the parallel path stop early when ctx is cancelled.
func (e *Engine) DetectIntersections(ctx context.Context, items []geom.Shape) (result []geom.Vector, err error) {
	if e.workers > 1 {
		return e.inner.DetectIntersectionsParallel(ctx, items, e.workers)
	}
	defer func() {
		recoveredErr := HandleIntersectPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return e.inner.DetectIntersectionsContext(ctx, items)
}
