// check.go — assertion operations for xgx-assert core.
//
// Scope (tiny core):
//   - Four pure checks that compare inputs and return nil or exactly one
//     descriptor from descriptor.go.
//   - Curried forms (EqWith, InRangeWith, KnownWith) producing a Check for
//     the resumable path in resume.go.
//
// Contract shared by all checks:
//   - Pure and non-suspending: no side effects beyond constructing the
//     returned value, no panics, no allocation on the success path.
//   - Inputs are recorded verbatim on failure; slice arguments (known sets)
//     are read during the call and never retained.
package xgxassert

import (
	"cmp"
	"fmt"
)

// Check is a single assertion over an input value: nil on success, a
// descriptor on failure. Inputs are comparable so a Resumable can refuse to
// re-run the input that already failed.
type Check[I comparable] func(I) error

// Eq succeeds iff expected == actual under T's equality; otherwise it fails
// with Mismatch{expected, actual}. Argument order is fixed — expected first —
// and governs field assignment.
func Eq[T comparable](expected, actual T) error {
	if expected == actual {
		return nil
	}
	return Mismatch[T]{Expected: expected, Actual: actual}
}

// InRange succeeds iff lower <= value <= upper; otherwise it fails with
// OutOfRange{value, lower, upper}. Bounds are not validated before comparing:
// if lower > upper the check always fails and records the bounds as given.
func InRange[T cmp.Ordered](value, lower, upper T) error {
	if lower <= value && value <= upper {
		return nil
	}
	return OutOfRange[T]{Value: value, Lower: lower, Upper: upper}
}

// Known succeeds iff value equals some entry of known; otherwise it fails
// with UnknownVariant tagged by the value's type (see TagOf), not its payload.
// The known slice is only read; it is never retained past the call.
func Known[T comparable](value T, known []T) error {
	for _, k := range known {
		if value == k {
			return nil
		}
	}
	return UnknownVariant{Tag: boundTag(fmt.Sprintf("%T", value))}
}

// Labeled constrains closed sets of named variants: comparable values that
// know their own label.
type Labeled interface {
	comparable
	fmt.Stringer
}

// KnownEnum is Known specialized for closed sets of labeled variants: the
// recorded discriminant is the variant's own label rather than a type-derived
// tag. The label is bounded like any other Tag.
func KnownEnum[V Labeled](value V, known []V) error {
	for _, k := range known {
		if value == k {
			return nil
		}
	}
	return UnknownVariant{Tag: boundTag(value.String())}
}

// EqWith curries Eq into a Check against a fixed expected value.
func EqWith[T comparable](expected T) Check[T] {
	return func(actual T) error { return Eq(expected, actual) }
}

// InRangeWith curries InRange into a Check against fixed bounds.
func InRangeWith[T cmp.Ordered](lower, upper T) Check[T] {
	return func(value T) error { return InRange(value, lower, upper) }
}

// KnownWith curries Known into a Check against a fixed set. The set is
// captured by reference; callers must not mutate it while the Check is live.
func KnownWith[T comparable](known []T) Check[T] {
	return func(value T) error { return Known(value, known) }
}
