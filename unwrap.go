// unwrap.go — traversal helpers over failure graphs for xgx-assert core.
//
// Scope (tiny core):
//   - Generic traversal over single- and multi-wrapped failures.
//   - DFS flattening that cooperates with Accumulated (Unwrap() []error) and
//     the single-unwrap wrappers Context and Resumable (Unwrap() error),
//     plus anything foreign following the same stdlib conventions.
//
// Design notes (Go ≥1.20):
//   - errors.Unwrap only calls Unwrap() error; correct traversal must handle
//     the multi form too.
//   - A blanket map[error] "seen" set would panic on non-comparable dynamic
//     types — and this package ships one: Resumable holds a func field. The
//     guard is therefore dual:
//       • seenErr (map[error]struct{})   — comparable dynamic types
//       • seenPtr (map[uintptr]struct{}) — pointer identity otherwise
//     Non-comparable, non-pointer dynamics (Resumable, Accumulated) are
//     treated as acyclic, which value semantics guarantee, and the depth cap
//     bounds foreign pathologies.
//
// Traversal semantics:
//   - Walk:    pre-order (visit, then expand children); stops when fn returns false.
//   - Flatten: collects LEAVES only (nodes with no children) in DFS order.
//   - Root:    first DFS leaf (deepest along the first path), nil-safe.
//   - Has:     nil-safe wrapper over errors.Is.
package xgxassert

import (
	"errors"
	"reflect"
)

// single/multi unwrap interfaces (stdlib-compatible)
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// isComparable reports whether err's dynamic value is safe as a map key.
// Context is statically comparable but may wrap a non-comparable dynamic
// value, and hashing it would panic; being a value wrapper it cannot form a
// cycle, so it takes the allowed-through branch instead. Accumulated carries
// a slice and Resumable a func, so reflect reports both non-comparable.
func isComparable(err error) bool {
	if err == nil {
		return false
	}
	switch err.(type) {
	case UnknownVariant:
		return true
	case Context, Accumulated:
		return false
	}
	return reflect.TypeOf(err).Comparable()
}

// ptrID returns a pointer identity for pointer-typed dynamic errors.
func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen returns true if err was newly marked; false if already seen.
// Comparable dynamics use seenErr; non-comparable pointers use seenPtr;
// non-comparable values (this package's Resumable/Accumulated) are allowed
// through, bounded by the depth cap.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if isComparable(err) {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	return true
}

// maxDepth caps traversal against runaway foreign graphs.
const maxDepth = 1 << 12

// Flatten walks a failure graph and returns leaf errors (nodes with no
// children) in depth-first order: an Accumulated of wrapped descriptors
// flattens to the bare descriptors. If err is nil, Flatten returns nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	// Fast path: not a wrapper at all → single leaf.
	switch err.(type) {
	case multiUnwrapper, singleUnwrapper:
	default:
		return []error{err}
	}

	type frame struct {
		e   error
		idx int // next child index to visit (for multi)
	}

	out := make([]error, 0, 4)
	stack := make([]frame, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, frame{e: err})
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		top := &stack[len(stack)-1]

		// Explore multi first; keep the node until all children are processed.
		if m, ok := top.e.(multiUnwrapper); ok {
			children := m.Unwrap()
			for top.idx < len(children) && children[top.idx] == nil {
				top.idx++
			}
			if top.idx < len(children) {
				child := children[top.idx]
				top.idx++
				if markSeen(child, seenErr, seenPtr) {
					stack = append(stack, frame{e: child})
				}
				continue
			}
			stack = stack[:len(stack)-1]
			continue
		}

		// Then single-unwrap; descend IN-PLACE so parents are not
		// misclassified as leaves.
		if s, ok := top.e.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil {
				if markSeen(u, seenErr, seenPtr) {
					top.e = u
					continue
				}
				stack = stack[:len(stack)-1]
				continue
			}
		}

		// Leaf node: record and pop.
		out = append(out, top.e)
		stack = stack[:len(stack)-1]
	}

	return out
}

// Walk traverses a failure graph depth-first and calls visit for each
// distinct node in PRE-ORDER (visit before expanding children). If visit
// returns false, traversal stops early. Safe on cycles; nil err or visit is
// a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Expand children (multi first; push in reverse for L→R DFS).
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				c := kids[i]
				if c == nil {
					continue
				}
				if markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); u != nil && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}

// Root returns the first DFS leaf (deepest along the first path).
// If err is nil, Root returns nil.
func Root(err error) error {
	leaves := Flatten(err)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}

// Has reports whether target appears anywhere in err's unwrap graph.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
