// recover.go — the fail-recoverable strategy for xgx-assert core.
//
// Recover inspects a propagated failure, matches it against an expected
// shape, and converts a matched failure into a fallback value. Its one hard
// contract: a failure it did not explicitly match is never masked — unmatched
// failures propagate bit-for-bit, Context wrappers and all.
//
// Matchers are plain predicates over errors; MatchKind and MatchAs
// (matcher.go) cover the common shapes, and any func(error) bool composes.
package xgxassert

// Matcher decides whether a failure has the shape a caller knows how to
// recover from. It receives the failure with Context wrappers already
// stripped (see Inner).
type Matcher func(error) bool

// Recover applies local recovery to the outcome of a check.
//
//   - err == nil: success, nothing to recover; returns (zero T, nil).
//   - match(Inner(err)) is true: the failure is consumed and (fallback, nil)
//     is returned.
//   - otherwise: the original err is returned unchanged — including any
//     Context chain — alongside the zero T.
//
// A nil matcher matches nothing, so every failure propagates.
func Recover[T any](err error, match Matcher, fallback T) (T, error) {
	var zero T
	if err == nil {
		return zero, nil
	}
	if match != nil && match(Inner(err)) {
		return fallback, nil
	}
	return zero, err
}

// RecoverErr is Recover without a substitute value: a matched failure is
// converted to nil, everything else propagates unchanged. Useful when the
// check guards a side condition rather than producing a value.
func RecoverErr(err error, match Matcher) error {
	if err == nil {
		return nil
	}
	if match != nil && match(Inner(err)) {
		return nil
	}
	return err
}
