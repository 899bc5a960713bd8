// predicates.go — minimal, stdlib-aligned predicates for xgx-assert core.
//
// Scope:
//   - Zero-policy helpers answering common classification questions.
//   - Interop-first: use errors.As so traversal works over both single
//     Unwrap() error (Context, Resumable) and multi Unwrap() []error
//     (Accumulated) forms.
//
// Out of scope (by design):
//   - Rendering, retry policy, logging.
package xgxassert

import "errors"

// kindCarrier is the capability every library value exposes; foreign errors
// that implement it participate in kind classification too.
type kindCarrier interface{ KindVal() Kind }

// KindOf returns the first Kind discovered along err's unwrap graph, or ""
// if none. errors.As traverses both single and multi unwraps.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var kc kindCarrier
	if errors.As(err, &kc) {
		return kc.KindVal()
	}
	return ""
}

// HasKind reports whether any error in err's unwrap graph carries the given
// kind.
func HasKind(err error, k Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == k || hasKindDeep(err, k)
}

// hasKindDeep walks the full graph: KindOf only sees the first carrier, but a
// batch may bury the interesting kind below an Accumulated or Context node.
func hasKindDeep(err error, k Kind) bool {
	found := false
	Walk(err, func(e error) bool {
		if kc, ok := e.(kindCarrier); ok && kc.KindVal() == k {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsLeaf reports whether err itself (not something it wraps) is one of the
// leaf descriptors.
func IsLeaf(err error) bool {
	if err == nil {
		return false
	}
	kc, ok := err.(kindCarrier)
	return ok && kc.KindVal().IsLeaf()
}

// Overflowed reports whether err is (or wraps) an Accumulated whose capacity
// was exceeded under the drop policy.
func Overflowed(err error) bool {
	if err == nil {
		return false
	}
	var acc Accumulated
	return errors.As(err, &acc) && acc.Overflowed()
}
