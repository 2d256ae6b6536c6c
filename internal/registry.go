package internal

import (
	"reflect"

	"github.com/osuushi/intersect/geom"
	"github.com/pkg/errors"
)

// A Routine intersects two primitives. It is always called with its arguments
// in rank order, so a routine registered for (Line, Circle) only ever sees a
// line first and a circle second.
type Routine func(a, b geom.Shape) Result

// Routines are keyed by kind pairs in rank order.
type kindPair [2]geom.Kind

// The Registry is the extension point for new primitives. Growing it takes two
// steps: add the kind, which gives it the next rank, then register a routine
// for every pair of kinds that should be able to intersect. Pairs with no
// routine are treated as never intersecting.
type Registry struct {
	order    []geom.Kind
	ranks    map[geom.Kind]int
	routines map[kindPair]Routine
}

// An empty registry knowing only the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{
		ranks:    make(map[geom.Kind]int),
		routines: make(map[kindPair]Routine),
	}
	for _, kind := range geom.BuiltinKinds() {
		r.mustAddKind(kind)
	}
	return r
}

// A registry with every built-in routine.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for pair, routine := range builtinRoutines {
		r.routines[pair] = routine
	}
	return r
}

// Append a kind to the ordering. Its rank is the number of kinds before it.
func (r *Registry) AddKind(kind geom.Kind) error {
	if _, ok := r.ranks[kind]; ok {
		return errors.Errorf("kind %s is already registered", kind)
	}
	r.ranks[kind] = len(r.order)
	r.order = append(r.order, kind)
	return nil
}

func (r *Registry) mustAddKind(kind geom.Kind) {
	if err := r.AddKind(kind); err != nil {
		panic(err)
	}
}

// Register the routine for a pair of kinds, replacing any existing one. The
// routine receives its arguments in the order the kinds are given here; if
// that is not rank order, the registry swaps them on the way in.
func (r *Registry) Register(a, b geom.Kind, routine Routine) error {
	rankA, ok := r.ranks[a]
	if !ok {
		return errors.Wrapf(ErrUnsupportedPrimitiveKind, "cannot register routine for %s", a)
	}
	rankB, ok := r.ranks[b]
	if !ok {
		return errors.Wrapf(ErrUnsupportedPrimitiveKind, "cannot register routine for %s", b)
	}
	if rankA > rankB {
		swapped := routine
		routine = func(x, y geom.Shape) Result { return swapped(y, x) }
		a, b = b, a
	}
	r.routines[kindPair{a, b}] = routine
	return nil
}

// A copy that can be extended without affecting the original.
func (r *Registry) Clone() *Registry {
	clone := &Registry{
		order:    append([]geom.Kind(nil), r.order...),
		ranks:    make(map[geom.Kind]int, len(r.ranks)),
		routines: make(map[kindPair]Routine, len(r.routines)),
	}
	for kind, rank := range r.ranks {
		clone.ranks[kind] = rank
	}
	for pair, routine := range r.routines {
		clone.routines[pair] = routine
	}
	return clone
}

// The kinds in rank order.
func (r *Registry) Kinds() []geom.Kind {
	return append([]geom.Kind(nil), r.order...)
}

func (r *Registry) Rank(kind geom.Kind) (int, bool) {
	rank, ok := r.ranks[kind]
	return rank, ok
}

// Find the routine for two shapes, and put the shapes into the order the
// routine expects. An unknown kind panics with ErrUnsupportedPrimitiveKind. A
// missing routine is not an error: the routine is nil.
func (r *Registry) resolve(a, b geom.Shape) (routine Routine, first, second geom.Shape, swapped bool) {
	rankA := r.rankOf(a)
	rankB := r.rankOf(b)
	first, second = a, b
	if rankB < rankA {
		first, second = b, a
		swapped = true
	}
	return r.routines[kindPair{first.Kind(), second.Kind()}], first, second, swapped
}

func (r *Registry) rankOf(s geom.Shape) int {
	if isNilShape(s) {
		fatalf(ErrUnsupportedPrimitiveKind, "nil primitive")
	}
	rank, ok := r.ranks[s.Kind()]
	if !ok {
		fatalf(ErrUnsupportedPrimitiveKind, "%s (%T)", s.Kind(), s)
	}
	return rank
}

func isNilShape(s geom.Shape) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Typed adapts a routine over concrete shape types to a Routine. Shapes may be
// passed by value or by pointer. A shape whose type does not match the kind it
// reports panics with ErrInvalidPrimitive, as does a shape that reports itself
// invalid.
func Typed[A, B geom.Shape](fn func(A, B) Result) Routine {
	return func(a, b geom.Shape) Result {
		return fn(as[A](a), as[B](b))
	}
}

type validator interface {
	Valid() bool
}

func as[T geom.Shape](s geom.Shape) T {
	var result T
	switch v := any(s).(type) {
	case T:
		result = v
	case *T:
		result = *v
	default:
		fatalf(ErrInvalidPrimitive, "%T reports kind %s but is not a %T", s, s.Kind(), result)
	}
	if v, ok := geom.Shape(result).(validator); ok && !v.Valid() {
		fatalf(ErrInvalidPrimitive, "%v", result)
	}
	return result
}
