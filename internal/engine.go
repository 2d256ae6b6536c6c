package internal

import (
	"context"

	"github.com/osuushi/intersect/geom"
	"github.com/osuushi/intersect/internal/dbg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// The Engine dispatches pairs of primitives to routines from its registry.
// Failures panic with IntersectError; callers outside this module go through
// the public API, which recovers them into errors. An Engine is safe for
// concurrent use as long as its registry is not modified.
type Engine struct {
	registry *Registry
	logger   *zap.Logger
}

func NewEngine(registry *Registry, logger *zap.Logger) *Engine {
	if registry == nil {
		registry = NewDefaultRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{registry: registry, logger: logger}
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

// Intersect two primitives of any registered kinds. The result does not depend
// on argument order beyond the order of points within it.
func (e *Engine) Intersections(a, b geom.Shape) Result {
	routine, first, second, swapped := e.registry.resolve(a, b)
	if routine == nil {
		if ce := e.logger.Check(zap.DebugLevel, "no routine registered"); ce != nil {
			ce.Write(
				zap.Stringer("first", first.Kind()),
				zap.Stringer("second", second.Kind()),
			)
		}
		return noIntersection
	}

	result := routine(first, second)
	if ce := e.logger.Check(zap.DebugLevel, "dispatched"); ce != nil {
		ce.Write(
			zap.String("first", dbg.Name(first)),
			zap.String("second", dbg.Name(second)),
			zap.Stringer("firstKind", first.Kind()),
			zap.Stringer("secondKind", second.Kind()),
			zap.Bool("swapped", swapped),
			zap.Stringer("relation", result.Relation),
			zap.Int("points", len(result.Points)),
		)
	}
	return result
}

// Intersect every pair (i, j) with i < j, in ascending order, and concatenate
// the points. A nil or empty list gives an empty result.
func (e *Engine) DetectIntersections(items []geom.Shape) []geom.Vector {
	// Background is never cancelled
	points, _ := e.DetectIntersectionsContext(context.Background(), items)
	return points
}

// The same as DetectIntersections, on the calling goroutine, but checking for
// cancellation before each pair.
func (e *Engine) DetectIntersectionsContext(ctx context.Context, items []geom.Shape) ([]geom.Vector, error) {
	points := []geom.Vector{}
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			points = append(points, e.Intersections(items[i], items[j]).Points...)
		}
	}
	return points, nil
}

type pairIndex struct {
	i, j int
}

// The same as DetectIntersections, but spread over a pool of workers. Points
// are still concatenated in ascending (i, j) order. Unlike the sequential
// version, failures come back as errors, since a panic on a worker goroutine
// could not be recovered by the caller.
func (e *Engine) DetectIntersectionsParallel(ctx context.Context, items []geom.Shape, workers int) ([]geom.Vector, error) {
	var pairs []pairIndex
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			pairs = append(pairs, pairIndex{i, j})
		}
	}

	results := make([]Result, len(pairs))
	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}
	for n, pair := range pairs {
		n, pair := n, pair
		group.Go(func() (err error) {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer func() {
				if recoveredErr := HandleIntersectPanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			results[n] = e.Intersections(items[pair.i], items[pair.j])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	points := []geom.Vector{}
	for _, result := range results {
		points = append(points, result.Points...)
	}
	e.logger.Debug("detected intersections",
		zap.Int("primitives", len(items)),
		zap.Int("pairs", len(pairs)),
		zap.Int("points", len(points)),
		zap.Int("workers", workers),
	)
	return points, nil
}
