package internal

import (
	"math"

	"github.com/osuushi/intersect/geom"
)

// Every built-in routine, keyed in rank order. Pairs missing from this table
// (Line–Rectangle, anything with a circle and a polygon, polygon–polygon) are
// left unimplemented and report no intersection.
var builtinRoutines = map[kindPair]Routine{
	{geom.KindLine, geom.KindLine}:               Typed(lineToLine),
	{geom.KindLine, geom.KindLineSegment}:        Typed(lineToLineSegment),
	{geom.KindLine, geom.KindCircle}:             Typed(lineToCircle),
	{geom.KindLineSegment, geom.KindLineSegment}: Typed(lineSegmentToLineSegment),
	{geom.KindLineSegment, geom.KindCircle}:      Typed(lineSegmentToCircle),
	{geom.KindLineSegment, geom.KindRectangle}:   Typed(lineSegmentToRectangle),
	{geom.KindLineSegment, geom.KindTriangle}:    Typed(lineSegmentToTriangle),
	{geom.KindCircle, geom.KindCircle}:           Typed(circleToCircle),
}

func lineToLine(l1, l2 geom.Line) Result {
	p, relation := l1.IntersectionWithLine(l2)
	return relationResult(relation, p)
}

func circleToCircle(c1, c2 geom.Circle) Result {
	points, relation := c1.IntersectionWithCircle(c2)
	return relationResult(relation, points...)
}

// Intersect a circle with the x axis. This is the canonical case that
// lineToCircle reduces every line to.
func circleToAxisX(c geom.Circle) Result {
	y := math.Abs(c.Center.Y)
	switch {
	case geom.Equal(y, c.Radius): // Tangent
		return pointsResult(geom.Vec(c.Center.X, 0))
	case y > c.Radius:
		return noIntersection
	}
	d := math.Sqrt(c.Radius*c.Radius - y*y)
	return pointsResult(
		geom.Vec(c.Center.X-d, 0),
		geom.Vec(c.Center.X+d, 0),
	)
}

// Rather than solving the rotated quadratic, move into a frame where the line
// is the x axis, solve there with circleToAxisX, and move the answers back.
func lineToCircle(l geom.Line, c geom.Circle) Result {
	// atan handles the infinite slope of vertical lines, giving ±π/2
	inclination := math.Atan(l.K)
	// A point on the line to use as the new origin
	offset := geom.Vec(0, l.B)
	if l.IsVertical() {
		offset = geom.Vec(l.X, 0)
	}

	toCanonical := geom.NewAngle(-inclination)
	fromCanonical := geom.NewAngle(inclination)

	center := c.Center.Sub(offset).RotateAround(geom.Zero(), toCanonical)
	result := circleToAxisX(geom.Circle{Center: center, Radius: c.Radius})
	for i, p := range result.Points {
		result.Points[i] = p.RotateAround(geom.Zero(), fromCanonical).Add(offset)
	}
	return result
}

// Intersect the segment's line with the circle, then keep only the points
// within the segment.
func lineSegmentToCircle(ls geom.LineSegment, c geom.Circle) Result {
	result := lineToCircle(ls.ToLine(), c)
	var points []geom.Vector
	for _, p := range result.Points {
		if ls.IsClamp(p.X, p.Y) {
			points = append(points, p)
		}
	}
	return pointsResult(points...)
}

func lineToLineSegment(l geom.Line, ls geom.LineSegment) Result {
	p, relation := l.IntersectionWithLine(ls.ToLine())
	switch relation {
	case geom.Intersecting:
		if ls.IsClamp(p.X, p.Y) {
			return pointsResult(p)
		}
		return noIntersection
	case geom.Coincident:
		// The whole segment lies on the line
		return Result{Relation: geom.Coincident}
	}
	return noIntersection
}

// Orientation test. With AB = ls1 and CD = ls2, the segments cross iff C and D
// lie on opposite sides of AB, and A and B lie on opposite sides of CD. If any
// endpoint is exactly collinear with the other segment, the result is
// Collinear and no point is computed, even if the segments touch.
func lineSegmentToLineSegment(ls1, ls2 geom.LineSegment) Result {
	a, b := ls1.P1, ls1.P2
	c, d := ls2.P1, ls2.P2

	ab := b.Sub(a)
	cd := d.Sub(c)

	abXac := ab.Cross(c.Sub(a))
	abXad := ab.Cross(d.Sub(a))
	cdXca := cd.Cross(a.Sub(c))
	cdXcb := cd.Cross(b.Sub(c))

	if abXac == 0 || abXad == 0 || cdXca == 0 || cdXcb == 0 {
		return Result{Relation: geom.Collinear}
	}

	if (abXac > 0) == (abXad > 0) || (cdXca > 0) == (cdXcb > 0) {
		return noIntersection
	}

	// The crossing divides CD in the ratio of C's and D's distances from AB
	n := math.Abs(abXac / abXad)
	return pointsResult(geom.LerpVectors(c, d, n/(1+n)))
}

func lineSegmentToRectangle(ls geom.LineSegment, rect geom.Rectangle) Result {
	return lineSegmentToPolygon(ls, rect)
}

func lineSegmentToTriangle(ls geom.LineSegment, tri geom.Triangle) Result {
	return lineSegmentToPolygon(ls, tri)
}

type polygon interface {
	Bounds() geom.Rectangle
	Edges() []geom.LineSegment
}

// Reject on bounding boxes first, then concatenate the hits against each edge
// in edge order. A segment through a corner hits both edges meeting there, so
// the corner is reported twice.
func lineSegmentToPolygon(ls geom.LineSegment, poly polygon) Result {
	if !ls.ToRectangle().Intersects(poly.Bounds()) {
		return noIntersection
	}
	var points []geom.Vector
	for _, edge := range poly.Edges() {
		if p, ok := ls.IntersectionWithLineSegment(edge); ok {
			points = append(points, p)
		}
	}
	return pointsResult(points...)
}
