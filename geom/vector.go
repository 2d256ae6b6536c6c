package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var ErrZeroLength = errors.New("zero length vector has no direction")

// A Vector is a point or a displacement. Vectors are values: every operation
// returns a new vector and leaves the receiver alone, so a vector handed to
// someone else can never be changed behind their back.
type Vector struct {
	X float64
	Y float64
}

func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// The origin. This is also the default pivot for rotations.
func Zero() Vector {
	return Vector{}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) AddScalar(s float64) Vector {
	return Vector{v.X + s, v.Y + s}
}

// v + other*s
func (v Vector) AddScaled(other Vector, s float64) Vector {
	return Vector{v.X + other.X*s, v.Y + other.Y*s}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) SubScalar(s float64) Vector {
	return Vector{v.X - s, v.Y - s}
}

// Element-wise product.
func (v Vector) Mul(other Vector) Vector {
	return Vector{v.X * other.X, v.Y * other.Y}
}

// Scaling by a non-finite factor yields the zero vector.
func (v Vector) MulScalar(s float64) Vector {
	if !isFinite(s) {
		return Vector{}
	}
	return Vector{v.X * s, v.Y * s}
}

// Element-wise quotient.
func (v Vector) Div(other Vector) Vector {
	return Vector{v.X / other.X, v.Y / other.Y}
}

// Dividing by zero scales by an infinite factor, which gives the zero vector.
func (v Vector) DivScalar(s float64) Vector {
	return v.MulScalar(1 / s)
}

func (v Vector) Min(other Vector) Vector {
	return Vector{math.Min(v.X, other.X), math.Min(v.Y, other.Y)}
}

func (v Vector) Max(other Vector) Vector {
	return Vector{math.Max(v.X, other.X), math.Max(v.Y, other.Y)}
}

// Clamp each component into [min, max]. Assumes min <= max component-wise.
func (v Vector) Clamp(min, max Vector) Vector {
	return Vector{
		math.Max(min.X, math.Min(max.X, v.X)),
		math.Max(min.Y, math.Min(max.Y, v.Y)),
	}
}

// Scale the vector so its length lies in [min, max]. A zero vector has no
// direction to scale along and is returned unchanged.
func (v Vector) ClampLength(min, max float64) Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.MulScalar(math.Max(min, math.Min(max, length)) / length)
}

func (v Vector) Floor() Vector {
	return Vector{math.Floor(v.X), math.Floor(v.Y)}
}

func (v Vector) Ceil() Vector {
	return Vector{math.Ceil(v.X), math.Ceil(v.Y)}
}

// Halves round away from zero.
func (v Vector) Round() Vector {
	return Vector{math.Round(v.X), math.Round(v.Y)}
}

func (v Vector) RoundToZero() Vector {
	return Vector{math.Trunc(v.X), math.Trunc(v.Y)}
}

func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// The z component of the 3D cross product. Positive when other is
// counterclockwise from v, negative when clockwise, zero when collinear.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

func (v Vector) ManhattanLength() float64 {
	return math.Abs(v.X) + math.Abs(v.Y)
}

func (v Vector) Normalize() (Vector, error) {
	length := v.Length()
	if length == 0 {
		return Vector{}, ErrZeroLength
	}
	return Vector{v.X / length, v.Y / length}, nil
}

// Rescale the vector to the given length, keeping its direction.
func (v Vector) WithLength(length float64) (Vector, error) {
	unit, err := v.Normalize()
	if err != nil {
		return Vector{}, errors.Wrapf(err, "cannot set length of %s", v)
	}
	return unit.MulScalar(length), nil
}

// Direction of the vector in radians, in [0, 2π).
func (v Vector) Angle() float64 {
	angle := math.Atan2(v.Y, v.X)
	if angle < 0 {
		angle += FullTurn
	}
	return angle
}

// The enclosed angle with another vector, in [0, π]. The cosine is clamped
// because rounding can push it just outside acos's domain. If either vector
// has zero length the angle is 0.
func (v Vector) AngleTo(other Vector) float64 {
	denominator := v.Length() * other.Length()
	if denominator == 0 {
		return 0
	}
	cos := v.Dot(other) / denominator
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

func (v Vector) DistanceTo(other Vector) float64 {
	return math.Sqrt(v.DistanceToSquared(other))
}

func (v Vector) DistanceToSquared(other Vector) float64 {
	dx, dy := v.X-other.X, v.Y-other.Y
	return dx*dx + dy*dy
}

func (v Vector) ManhattanDistanceTo(other Vector) float64 {
	return math.Abs(v.X-other.X) + math.Abs(v.Y-other.Y)
}

// Move alpha of the way from v towards other.
func (v Vector) Lerp(other Vector, alpha float64) Vector {
	return Vector{
		v.X + (other.X-v.X)*alpha,
		v.Y + (other.Y-v.Y)*alpha,
	}
}

func LerpVectors(a, b Vector, alpha float64) Vector {
	return a.Lerp(b, alpha)
}

// Exact comparison. Use ApproxEquals for computed points.
func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) ApproxEquals(other Vector) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y)
}

// Rotate the point counterclockwise around center.
func (v Vector) RotateAround(center Vector, angle Angle) Vector {
	c, s := math.Cos(angle.Radian()), math.Sin(angle.Radian())
	x := v.X - center.X
	y := v.Y - center.Y
	return Vector{
		x*c - y*s + center.X,
		x*s + y*c + center.Y,
	}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
