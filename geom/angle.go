package geom

import (
	"fmt"
	"math"
)

const (
	RadianToDegree = 180 / math.Pi
	DegreeToRadian = math.Pi / 180
	FullTurn       = 2 * math.Pi
)

// An Angle is a rotation normalized into a single turn. Both views are stored
// so that an angle built from degrees keeps its exact degree value; classifying
// a right angle depends on that.
type Angle struct {
	radian float64
	degree float64
}

// Reduce a radian (isRadian) or degree value into [0, 2π) or [0, 360). Values
// just below zero would land exactly on the full turn after the fixup, so those
// collapse to 0. Non-finite values normalize to 0.
func NormalizeAngle(value float64, isRadian bool) float64 {
	if !isFinite(value) {
		return 0
	}
	turn := 360.0
	if isRadian {
		turn = FullTurn
	}
	value = math.Mod(value, turn)
	if value < 0 {
		value += turn
	}
	if value >= turn {
		value = 0
	}
	return value
}

func NewAngle(radian float64) Angle {
	r := NormalizeAngle(radian, true)
	return Angle{radian: r, degree: r * RadianToDegree}
}

func NewAngleDegrees(degree float64) Angle {
	d := NormalizeAngle(degree, false)
	return Angle{radian: d * DegreeToRadian, degree: d}
}

func (a Angle) Radian() float64 {
	return a.radian
}

func (a Angle) Degree() float64 {
	return a.degree
}

func (a Angle) Neg() Angle {
	return NewAngle(-a.radian)
}

func (a Angle) Add(other Angle) Angle {
	return NewAngle(a.radian + other.radian)
}

// The angle folded into [0, 90).
func (a Angle) Acute() float64 {
	return math.Abs(math.Mod(a.degree, 90))
}

func (a Angle) Obtuse() float64 {
	return 180 - a.Acute()
}

// Classification follows a fixed boundary policy. IsAcute and IsObtuse are not
// complements: 90 and 270 are neither, 0 is both acute and right, and 180 is
// both obtuse and right.
func (a Angle) IsAcute() bool {
	return a.degree < 90 || a.degree > 270
}

func (a Angle) IsRight() bool {
	return math.Mod(a.degree, 90) == 0
}

func (a Angle) IsObtuse() bool {
	return a.degree > 90 && a.degree < 270
}

func (a Angle) String() string {
	return fmt.Sprintf("Angle(%gπ rad, %g°)", a.radian/math.Pi, a.degree)
}
