// descriptor.go — failure descriptor value types for xgx-assert core.
//
// Scope (tiny core):
//   - Define the three leaf descriptors: Mismatch, OutOfRange, UnknownVariant.
//   - Keep them small, comparable, stack-resident value types with no owned
//     heap data, so they duplicate freely and cross FFI-like boundaries
//     without ownership ambiguity.
//   - Record caller inputs verbatim: no normalization, no bound validation.
//
// Interop:
//   - All descriptors implement error; structural equality works through ==
//     and therefore through errors.Is when the target is a descriptor value.
//   - KindVal() exposes the taxonomy from kind.go (getter named to avoid any
//     future collision with a fluent setter, mirroring the xgx-error core).
//
// Notes:
//   - UnknownVariant carries a bounded Tag, never the offending payload, so
//     its size is fixed regardless of the compared type.
package xgxassert

import (
	"cmp"
	"fmt"
)

// maxTagWidth bounds the Tag stored in an UnknownVariant. Longer labels are
// truncated, keeping the descriptor fixed-size regardless of the source type.
const maxTagWidth = 32

// Tag is a short, bounded discriminant identifying the class or label of a
// value that failed a known-set check. It is derived from the value's type or
// variant label, never from its payload.
type Tag string

// boundTag truncates s to maxTagWidth. Truncation is byte-wise: tags are
// diagnostic discriminants, not user-facing text.
func boundTag(s string) Tag {
	if len(s) > maxTagWidth {
		return Tag(s[:maxTagWidth])
	}
	return Tag(s)
}

// TagOf derives the bounded Tag a failed Known check would record for T:
// the type's name as printed by fmt's %T. Useful when constructing expected
// descriptors in tests or match tables.
func TagOf[T any]() Tag {
	var zero T
	return boundTag(fmt.Sprintf("%T", zero))
}

// Mismatch describes a failed equality check: the value was one thing
// instead of another. Both operands are recorded exactly as given, expected
// first — the field order is a compatibility contract, not an implementation
// detail.
type Mismatch[T comparable] struct {
	Expected T
	Actual   T
}

func (m Mismatch[T]) Error() string {
	return fmt.Sprintf("mismatch: expected %v, got %v", m.Expected, m.Actual)
}

// KindVal reports KindMismatch.
func (m Mismatch[T]) KindVal() Kind { return KindMismatch }

// OutOfRange describes a failed interval check: value does not lie within
// [Lower, Upper]. The bounds are recorded as given even when Lower > Upper;
// the library does not validate caller-supplied bounds, an inverted interval
// simply admits no value.
type OutOfRange[T cmp.Ordered] struct {
	Value T
	Lower T
	Upper T
}

func (o OutOfRange[T]) Error() string {
	return fmt.Sprintf("out of range: %v not in [%v, %v]", o.Value, o.Lower, o.Upper)
}

// KindVal reports KindOutOfRange.
func (o OutOfRange[T]) KindVal() Kind { return KindOutOfRange }

// UnknownVariant describes a value that matched no entry of a known set.
// It records only a bounded discriminant of the unmatched value's class or
// label — not the value itself — so the descriptor stays fixed-size no matter
// what was compared.
type UnknownVariant struct {
	Tag Tag
}

func (u UnknownVariant) Error() string {
	if u.Tag == "" {
		return "unknown variant"
	}
	return "unknown variant: " + string(u.Tag)
}

// KindVal reports KindUnknownVariant.
func (u UnknownVariant) KindVal() Kind { return KindUnknownVariant }

// Interface conformance guards (keep in the file that defines the types).
var (
	_ error = Mismatch[int]{}
	_ error = OutOfRange[int]{}
	_ error = UnknownVariant{}
)
