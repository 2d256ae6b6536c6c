package geom

import "fmt"

// An axis-aligned rectangle between two corners. Min is expected to be
// component-wise less than or equal to Max; NewRectangle takes care of that.
type Rectangle struct {
	Min, Max Vector
}

// Build a rectangle from a corner and a size. Negative sizes extend the
// rectangle to the left or downward.
func NewRectangle(x, y, width, height float64) Rectangle {
	a := Vector{x, y}
	b := Vector{x + width, y + height}
	return Rectangle{Min: a.Min(b), Max: a.Max(b)}
}

func (r Rectangle) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Center() Vector {
	return r.Min.Lerp(r.Max, 0.5)
}

func (r Rectangle) Bounds() Rectangle {
	return r
}

// Inclusive of the boundary, padded by Tolerance.
func (r Rectangle) Contains(p Vector) bool {
	return p.X >= r.Min.X-Tolerance && p.X <= r.Max.X+Tolerance &&
		p.Y >= r.Min.Y-Tolerance && p.Y <= r.Max.Y+Tolerance
}

// Bounding overlap test. Rectangles that only share an edge or a corner
// overlap.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Min.X <= other.Max.X+Tolerance && other.Min.X <= r.Max.X+Tolerance &&
		r.Min.Y <= other.Max.Y+Tolerance && other.Min.Y <= r.Max.Y+Tolerance
}

// The four edges, counterclockwise starting with the bottom edge.
func (r Rectangle) Edges() []LineSegment {
	bottomLeft := r.Min
	bottomRight := Vector{r.Max.X, r.Min.Y}
	topRight := r.Max
	topLeft := Vector{r.Min.X, r.Max.Y}
	return []LineSegment{
		{bottomLeft, bottomRight},
		{bottomRight, topRight},
		{topRight, topLeft},
		{topLeft, bottomLeft},
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%s – %s)", r.Min, r.Max)
}
