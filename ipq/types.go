// Package ipq defines the ordering predicate type and the sentinel errors
// returned by indexed-heap operations.
package ipq

import "errors"

// Sentinel errors for indexed-heap operations.
var (
	// ErrDuplicateValue indicates an attempt to store a value that is already
	// present. The value→index mapping cannot represent two positions for one
	// value, so duplicates are a caller contract violation.
	ErrDuplicateValue = errors.New("ipq: duplicate value")

	// ErrValueNotFound indicates Update referenced a value that is not
	// currently stored in the heap.
	ErrValueNotFound = errors.New("ipq: value not found")

	// ErrNotImproving indicates Update was called with a replacement value
	// that does not compare strictly ahead of the old value under the
	// configured ordering. Update is a decrease-key: it only moves elements
	// toward the root.
	ErrNotImproving = errors.New("ipq: updated value must improve on the old value")

	// ErrNilLess indicates a heap constructor received a nil ordering
	// predicate. Constructors panic with this message; a heap without an
	// ordering cannot do anything meaningful.
	ErrNilLess = errors.New("ipq: ordering predicate is nil")
)

// Less is the ordering predicate for a Heap: it reports whether a should sit
// nearer the root than b. For a min-heap over integers, use
//
//	func(a, b int) bool { return a < b }
type Less[T any] func(a, b T) bool
