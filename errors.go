package geministore

import "errors"

// Sentinel errors for the sketch core.
//
// Insertion overflow is not an error value: it is silently dropped and
// only surfaced through Matrix.Overflows. A step-budget exhaustion in
// reach is not an error either; that package reports it by returning
// false.
var (
	// ErrInvalidIdentifier indicates vertex id 0 was used where a
	// non-zero VID is required.
	ErrInvalidIdentifier = errors.New("geministore: vertex id 0 is reserved as the empty sentinel")

	// ErrNilMatrix indicates an operation was handed a nil *Matrix.
	ErrNilMatrix = errors.New("geministore: matrix is nil")

	// ErrInvalidDimension indicates a non-positive matrix dimension was
	// requested at construction.
	ErrInvalidDimension = errors.New("geministore: dimension must be > 0")
)

// MalformedWindow reports whether the window [tb, te] is invalid
// (tb > te). Callers use this to short-circuit to the empty result
// without treating it as a failure.
func MalformedWindow(tb, te Time) bool { return tb > te }
