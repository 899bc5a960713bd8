// matcher.go — optional, type-safe matcher helpers for xgx-assert core.
//
// Copyright (c) 2025.
// SPDX-License-Identifier: MIT
//
// Overview
//   Matchers feed the Recover combinator (recover.go). Any func(error) bool
//   works; these helpers cover the two shapes callers reach for most:
//   matching by kind, and matching by concrete descriptor type.
//
// Goals
//   • Zero policy: purely a convenience for authors who prefer typed access.
//   • No lock-in: hand-written predicates mix freely with these.
//   • Interop-first: MatchAs builds on errors.As, so it also sees through
//     wrappers a caller forgot to strip.
//
// Usage
//   v, err := xgxassert.Recover(
//       xgxassert.Eq(32, port),
//       xgxassert.MatchAs[xgxassert.Mismatch[int]](),
//       defaultPort,
//   )
//
// Caveats
//   • MatchAs relies on Go's type identity: the descriptor's full
//     instantiated type must match E exactly (Mismatch[int] does not match
//     Mismatch[int64]).
package xgxassert

import "errors"

// MatchKind returns a Matcher accepting any failure whose first kind carrier
// reports k.
func MatchKind(k Kind) Matcher {
	return func(err error) bool { return KindOf(err) == k }
}

// MatchAs returns a Matcher accepting any failure that errors.As can extract
// as the concrete type E.
func MatchAs[E error]() Matcher {
	return func(err error) bool {
		var e E
		return errors.As(err, &e)
	}
}

// MatchAny returns a Matcher accepting a failure that any of the given
// matchers accepts. With no arguments it matches nothing.
func MatchAny(ms ...Matcher) Matcher {
	return func(err error) bool {
		for _, m := range ms {
			if m != nil && m(err) {
				return true
			}
		}
		return false
	}
}
