package geom

import (
	"fmt"
	"math"
)

// An infinite line y = K*x + B. Vertical lines have an infinite slope (+Inf
// or -Inf) and are located by X instead; B is meaningless for them. X is also
// kept for non-vertical lines as the x-intercept, or NaN when the line is
// horizontal.
type Line struct {
	K float64
	B float64
	X float64
}

func NewLine(k, b float64) Line {
	if k == 0 {
		return Line{K: k, B: b, X: math.NaN()}
	}
	if math.IsInf(k, 0) {
		// Without a point to pin it, a vertical line goes through the origin
		return Line{K: k, X: 0}
	}
	return Line{K: k, B: b, X: -b / k}
}

func NewVerticalLine(x float64) Line {
	return Line{K: math.Inf(1), X: x}
}

// The line through two points. Points with the same X give a vertical line,
// which includes the degenerate case of two equal points.
func NewLineThrough(p1, p2 Vector) Line {
	dx := p2.X - p1.X
	if dx == 0 {
		return NewVerticalLine(p1.X)
	}
	k := (p2.Y - p1.Y) / dx
	return NewLine(k, p1.Y-k*p1.X)
}

func (l Line) IsVertical() bool {
	return math.IsInf(l.K, 0)
}

func (l Line) IsHorizontal() bool {
	return l.K == 0
}

// Solve for y at x. Vertical lines have no single answer and return NaN.
func (l Line) YAt(x float64) float64 {
	if l.IsVertical() {
		return math.NaN()
	}
	return l.K*x + l.B
}

// Where two lines cross. Parallel lines give None; the same line twice gives
// Coincident.
func (l Line) IntersectionWithLine(other Line) (Vector, Relation) {
	switch {
	case l.IsVertical() && other.IsVertical():
		if Equal(l.X, other.X) {
			return Vector{}, Coincident
		}
		return Vector{}, None
	case l.IsVertical():
		return Vector{l.X, other.YAt(l.X)}, Intersecting
	case other.IsVertical():
		return Vector{other.X, l.YAt(other.X)}, Intersecting
	}

	if l.K == other.K {
		if Equal(l.B, other.B) {
			return Vector{}, Coincident
		}
		return Vector{}, None
	}
	x := (other.B - l.B) / (l.K - other.K)
	return Vector{x, l.YAt(x)}, Intersecting
}

func (l Line) String() string {
	if l.IsVertical() {
		return fmt.Sprintf("Line(x = %g)", l.X)
	}
	return fmt.Sprintf("Line(y = %gx + %g)", l.K, l.B)
}
