package internal

import "github.com/pkg/errors"

// Threading errors through every routine would make the geometry unreadable,
// and the only failures are bad inputs discovered deep inside dispatch.
// Instead, we panic with an IntersectError, and the public API recovers to
// convert to an error.

var (
	ErrUnsupportedPrimitiveKind = errors.New("unsupported primitive kind")
	ErrInvalidPrimitive         = errors.New("invalid primitive")
)

type IntersectError struct {
	error
}

func (e IntersectError) Unwrap() error {
	return e.error
}

// Panic with an IntersectError wrapping a sentinel.
func fatalf(sentinel error, format string, args ...interface{}) {
	panic(IntersectError{errors.Wrapf(sentinel, format, args...)})
}

// Call with recover() in a deferred function. IntersectErrors are returned;
// anything else is a real bug and keeps panicking.
func HandleIntersectPanicRecover(r interface{}) error {
	if r != nil {
		if intersectError, ok := r.(IntersectError); ok {
			return intersectError
		}
		panic(r)
	}
	return nil
}
