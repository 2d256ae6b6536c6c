package geom

import "math"

const Tolerance = 1e-9

// Equality between derived values is tolerance based. Inputs that are exactly
// tangent almost never survive a rotation into the canonical frame without
// picking up a few ulps of error, so exact comparison would turn tangents
// into near misses at random.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Like the triangulation convention of a slightly rotated coordinate system:
// if two points share a Y value, the one with the smaller X is "lower". Used to
// give multi-point results a stable order.
func (v Vector) Below(other Vector) bool {
	if v.Y == other.Y {
		return v.X < other.X
	}
	return v.Y < other.Y
}
