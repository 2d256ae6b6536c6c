package geom

import (
	"math"

	"github.com/pkg/errors"
)

var ErrNegativeRadius = errors.New("circle radius must not be negative")

// A Circle with a zero radius is a point.
type Circle struct {
	Center Vector
	Radius float64
}

func NewCircle(center Vector, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, errors.Wrapf(ErrNegativeRadius, "radius %g", radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

func (c Circle) Valid() bool {
	return c.Radius >= 0
}

func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}

func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Contains(p Vector) bool {
	return c.Center.DistanceTo(p) <= c.Radius+Tolerance
}

func (c Circle) Bounds() Rectangle {
	r := Vector{c.Radius, c.Radius}
	return Rectangle{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}

// Intersect two circles. With centers d apart and radii r1 and r2 there is
// nothing when d > r1+r2 or d < |r1-r2|, a single tangent point when d equals
// either bound, and otherwise two points on the radical line. Concentric
// circles share nothing, unless the radii also match, in which case they are
// coincident.
func (c Circle) IntersectionWithCircle(other Circle) ([]Vector, Relation) {
	delta := other.Center.Sub(c.Center)
	d := delta.Length()
	sum := c.Radius + other.Radius
	diff := math.Abs(c.Radius - other.Radius)

	if d == 0 {
		if Equal(c.Radius, other.Radius) {
			return nil, Coincident
		}
		return nil, None
	}

	if d > sum+Tolerance || d < diff-Tolerance {
		return nil, None
	}

	// Distance from c's center to the radical line, along delta
	a := (c.Radius*c.Radius - other.Radius*other.Radius + d*d) / (2 * d)
	mid := c.Center.AddScaled(delta, a/d)

	if Equal(d, sum) || Equal(d, diff) {
		return []Vector{mid}, Intersecting
	}

	h := math.Sqrt(math.Max(0, c.Radius*c.Radius-a*a))
	// Perpendicular to delta, scaled to h
	offset := Vector{-delta.Y, delta.X}.MulScalar(h / d)
	return []Vector{mid.Add(offset), mid.Sub(offset)}, Intersecting
}
