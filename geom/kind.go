package geom

import "fmt"

// Kind identifies the type of a primitive for intersection dispatch. The
// built-in kinds are declared in rank order: when two kinds meet, the one
// declared first is passed to the routine first. New kinds start at
// FirstCustomKind and get their rank from the registry they are added to.
type Kind int

const (
	KindLine Kind = iota
	KindLineSegment
	KindCircle
	KindRectangle
	KindTriangle

	FirstCustomKind Kind = 100
)

var kindNames = map[Kind]string{
	KindLine:        "Line",
	KindLineSegment: "LineSegment",
	KindCircle:      "Circle",
	KindRectangle:   "Rectangle",
	KindTriangle:    "Triangle",
}

// BuiltinKinds lists the kinds every registry starts with, in rank order.
func BuiltinKinds() []Kind {
	return []Kind{KindLine, KindLineSegment, KindCircle, KindRectangle, KindTriangle}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Shape is anything that can take part in intersection dispatch.
type Shape interface {
	Kind() Kind
}

func (Line) Kind() Kind        { return KindLine }
func (LineSegment) Kind() Kind { return KindLineSegment }
func (Circle) Kind() Kind      { return KindCircle }
func (Rectangle) Kind() Kind   { return KindRectangle }
func (Triangle) Kind() Kind    { return KindTriangle }

// Relation classifies how two primitives meet.
type Relation int

const (
	// No shared points.
	None Relation = iota
	// One or more isolated shared points, which are reported.
	Intersecting
	// An endpoint of one segment is collinear with the other segment. This
	// covers endpoints touching the other segment as well as collinear
	// segments. No point is reported.
	Collinear
	// Infinitely many shared points (the same line, the same circle). No points
	// are reported.
	Coincident
)

func (r Relation) String() string {
	switch r {
	case None:
		return "None"
	case Intersecting:
		return "Intersecting"
	case Collinear:
		return "Collinear"
	case Coincident:
		return "Coincident"
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}
