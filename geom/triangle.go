package geom

import (
	"fmt"
	"math"
)

type Triangle struct {
	A, B, C Vector
}

func NewTriangle(a, b, c Vector) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

func (t Triangle) Bounds() Rectangle {
	return Rectangle{
		Min: t.A.Min(t.B).Min(t.C),
		Max: t.A.Max(t.B).Max(t.C),
	}
}

// The three edges, in vertex order.
func (t Triangle) Edges() []LineSegment {
	return []LineSegment{
		{t.A, t.B},
		{t.B, t.C},
		{t.C, t.A},
	}
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%s, %s, %s)", t.A, t.B, t.C)
}
