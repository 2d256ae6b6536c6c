package geom

import (
	"fmt"
	"math"
)

// A finite segment between two endpoints. When both endpoints are equal the
// segment is degenerate and behaves as a single point.
type LineSegment struct {
	P1, P2 Vector
}

func NewLineSegment(p1, p2 Vector) LineSegment {
	return LineSegment{P1: p1, P2: p2}
}

func (ls LineSegment) IsDegenerate() bool {
	return ls.P1.Equals(ls.P2)
}

func (ls LineSegment) Length() float64 {
	return ls.P1.DistanceTo(ls.P2)
}

func (ls LineSegment) Delta() Vector {
	return ls.P2.Sub(ls.P1)
}

// The infinite line the segment lies on.
func (ls LineSegment) ToLine() Line {
	return NewLineThrough(ls.P1, ls.P2)
}

// The segment's bounding box.
func (ls LineSegment) ToRectangle() Rectangle {
	return Rectangle{Min: ls.P1.Min(ls.P2), Max: ls.P1.Max(ls.P2)}
}

// Check whether a point already known to be on the segment's line lies within
// the segment's span. The test is against the bounding box, padded by
// Tolerance so computed points sitting on an endpoint are kept.
func (ls LineSegment) IsClamp(x, y float64) bool {
	return ls.ToRectangle().Contains(Vector{x, y})
}

// Intersect with another segment, endpoints included. Parallel segments never
// intersect here, even when they overlap.
func (ls LineSegment) IntersectionWithLineSegment(other LineSegment) (Vector, bool) {
	r := ls.Delta()
	s := other.Delta()
	denominator := r.Cross(s)
	if denominator == 0 {
		return Vector{}, false
	}
	qp := other.P1.Sub(ls.P1)
	t := qp.Cross(s) / denominator
	u := qp.Cross(r) / denominator
	if !inUnitInterval(t) || !inUnitInterval(u) {
		return Vector{}, false
	}
	return ls.P1.Lerp(ls.P2, math.Max(0, math.Min(1, t))), true
}

func inUnitInterval(t float64) bool {
	return t >= -Tolerance && t <= 1+Tolerance
}

func (ls LineSegment) String() string {
	return fmt.Sprintf("LineSegment(%s → %s)", ls.P1, ls.P2)
}
