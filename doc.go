// doc.go — package documentation for xgx-assert
//
// Package xgxassert turns failed assertions into small, typed, inspectable
// values instead of panicking. It is the assertion-side sibling of xgx-error:
// the same tenets (interop-first, minimal surface, policy-free core), applied
// to checks rather than classification. It is designed to be:
//   - Allocation-conscious (stack-resident value types, fixed capacities)
//   - Interoperable with the stdlib (errors.Is/As, Unwrap chains, fmt.Formatter)
//   - Policy-free (no logging/retry/rendering rules in core)
//
// # Descriptors
//
// Every failed check produces exactly one descriptor value:
//
//   - Mismatch[T]    — expected == actual failed; both operands recorded verbatim.
//   - OutOfRange[T]  — value within [lower, upper] failed; bounds recorded as
//     given, even when inverted (the library never validates caller bounds —
//     inverted bounds simply always fail).
//   - UnknownVariant — value matched no entry of a known set; carries a short
//     bounded Tag identifying the value's class or label, never its payload.
//
// Descriptors are comparable value types, so two failures from the same inputs
// are == to each other, and errors.Is matches them structurally.
//
// # Failure Strategies
//
// All four strategies share the descriptor vocabulary and compose freely:
//
//	+-------------------+---------------------------------------------------+
//	| Strategy          | Entry point                                       |
//	+-------------------+---------------------------------------------------+
//	| Fail-fast         | Eq / InRange / Known / KnownEnum (return error)   |
//	| Fail-complete     | Accumulator: Push results, Finalize a batch       |
//	| Fail-recoverable  | Recover(err, matcher, fallback)                   |
//	| Resumable         | TryOrResume(op, input) → Resumable.Resume(fixed)  |
//	+-------------------+---------------------------------------------------+
//
// Fail-fast is plain Go error flow. The Accumulator defers propagation and
// reports every violation of a batch in push order. Recover converts a failure
// of a matched shape into a fallback value and propagates everything else
// bit-for-bit. Resumable defers the failure while keeping enough state to
// re-run the original check with corrected input.
//
// # Context
//
// WithContext wraps any failure with a bounded note and an optional opaque
// Correlation token. Wrapping never alters the wrapped value, and chains never
// collapse: wrapping twice yields Context around Context, innermost first.
// Context implements Unwrap, so errors.Is/As see through it; Inner strips
// Context wrappers when you need the bare descriptor for comparison.
//
// # Allocation Model
//
// No check allocates on its success path. Descriptors are small values with no
// owned heap data; any slice argument (known sets) is read during the call and
// never retained. The Accumulator performs one allocation at construction for
// its fixed, caller-chosen capacity and never grows; overflow is an explicit
// policy (drop-and-flag or reject-the-push), never a reallocation. The
// Resumable retry token is the check value plus the original input — no hidden
// buffers.
//
// # No Panics
//
// No operation in this package panics, aborts, logs, or retries implicitly.
// The worst-case observable effect of a misuse (inverted bounds, push after
// finalize, resuming with the already-failed input) is a failure value.
//
// # Interop
//
//   - Every descriptor and wrapper implements error.
//   - Context and Resumable implement Unwrap() error; Accumulated implements
//     Unwrap() []error, so errors.Is/As traverse batches (Go 1.20 semantics).
//   - fmt: %v/%s concise one-liner, %+v verbose structured form, %q quoted.
//
// # Minimal Surface, Clear Semantics
//
// The surface is intentionally small:
//   - Eq / InRange / Known / KnownEnum (+ EqWith / InRangeWith / KnownWith)
//   - WithContext / Inner
//   - Accumulator (Push / Finalize) and Accumulated
//   - Recover with MatchKind / MatchAs matchers
//   - TryOrResume / Resume
//   - KindOf / HasKind and the traversal helpers Flatten / Walk / Root / Has
package xgxassert
