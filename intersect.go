// Intersection points between 2D primitives.
//
// This package finds where lines, line segments, circles, rectangles and
// triangles meet, for any pair of primitives in either order, without a caller
// having to pick the routine for each pair of shape types. Primitives are the
// value types from the geom package, aliased here for convenience.
//
// Pairs that have no routine (a circle and a rectangle, for example) report no
// intersection rather than failing. See the advanced package for adding new
// primitives, logging, and parallel batches.
package intersect

import (
	"context"

	"github.com/osuushi/intersect/advanced"
	"github.com/osuushi/intersect/geom"
)

type Vector = geom.Vector
type Angle = geom.Angle
type Line = geom.Line
type LineSegment = geom.LineSegment
type Circle = geom.Circle
type Rectangle = geom.Rectangle
type Triangle = geom.Triangle
type Shape = geom.Shape
type Kind = geom.Kind
type Relation = geom.Relation
type Result = advanced.Result

var ErrUnsupportedPrimitiveKind = advanced.ErrUnsupportedPrimitiveKind

// The engine is never modified after construction, so sharing it is safe.
var defaultEngine = advanced.NewEngine(advanced.Options{})

// Find where two primitives intersect. The arguments may be given in either
// order. An error is only returned for a primitive whose kind is not supported
// or which is invalid (a circle with a negative radius).
func Intersections(a, b Shape) (Result, error) {
	return defaultEngine.Intersections(a, b)
}

// Find every intersection point between every pair of primitives. Points come
// in pair order: (0, 1), (0, 2), ..., (1, 2), and so on, each pair's points in
// the order its routine gives them. No primitives means no points.
func DetectIntersections(items ...Shape) ([]Vector, error) {
	return defaultEngine.DetectIntersections(context.Background(), items)
}
