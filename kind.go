// kind.go — failure kind taxonomy for xgx-assert core.
//
// Intent:
//   - Classify every value the library can produce with a small, stable Kind.
//   - Leaf kinds describe one failed check; wrapper kinds compose over any
//     failure (including each other).
//   - Keep semantics open-ended: no rendering/retry policy attached to kinds;
//     higher-level modules may interpret them, core does not.
//
// Conventions (documented, not enforced here):
//   - Kinds are lowercase snake_case ASCII.
//   - The empty string is never a built-in; KindOf returns "" for errors that
//     carry no kind.
package xgxassert

// Kind classifies failure values into machine-readable categories.
//
// Kinds are stringly-typed for stability across serialization boundaries and
// so that adapters outside the core can extend the vocabulary without a
// central enum.
type Kind string

// Leaf kinds — one failed check each.
const (
	KindMismatch       Kind = "mismatch"
	KindOutOfRange     Kind = "out_of_range"
	KindUnknownVariant Kind = "unknown_variant"
)

// Wrapper kinds — compose over any failure kind.
const (
	KindContext     Kind = "context"
	KindAccumulated Kind = "accumulated"
	KindResumable   Kind = "resumable"
)

// allBuiltinKinds is the ordered set of kinds the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
// Order is stable to minimize churn in docs/examples.
var allBuiltinKinds = []Kind{
	// Leaves (3)
	KindMismatch,
	KindOutOfRange,
	KindUnknownVariant,

	// Wrappers (3)
	KindContext,
	KindAccumulated,
	KindResumable,
}

// builtinKindSet provides O(1) membership checks for built-ins.
// Declared via composite literal to avoid runtime init loops.
var builtinKindSet = map[Kind]struct{}{
	KindMismatch:       {},
	KindOutOfRange:     {},
	KindUnknownVariant: {},
	KindContext:        {},
	KindAccumulated:    {},
	KindResumable:      {},
}

// leafKindSet marks the kinds that describe a single failed check.
var leafKindSet = map[Kind]struct{}{
	KindMismatch:       {},
	KindOutOfRange:     {},
	KindUnknownVariant: {},
}

// BuiltinKinds returns a defensive copy of the built-in kinds in a stable order.
func BuiltinKinds() []Kind {
	out := make([]Kind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// IsBuiltin reports whether k is one of the built-in core kinds.
// This is ergonomics-only; adapters may define and use custom kinds freely.
func (k Kind) IsBuiltin() bool {
	_, ok := builtinKindSet[k]
	return ok
}

// IsLeaf reports whether k describes a single failed check (as opposed to a
// wrapper that composes over other failures).
func (k Kind) IsLeaf() bool {
	_, ok := leafKindSet[k]
	return ok
}
