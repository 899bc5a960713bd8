// resume.go — the resumable strategy for xgx-assert core.
//
// A Resumable carries a failure plus a retry token: the original check and
// the input that failed it. This models "propagate now, let an upstream
// handler fix and retry" without unwinding state through intermediate frames.
//
// Contract:
//   - Resume never re-executes the check with the original, already-failed
//     input. Check inputs are comparable, so the contract is enforced
//     mechanically: resuming with an equal input returns the stored failure
//     without invoking the check again.
//   - The retry token is the check value plus one input value — bounded
//     state, no hidden buffers.
package xgxassert

// Resumable wraps a failed check with enough state to retry it against
// corrected input. It implements error (so it propagates through ordinary
// error flow) and Unwrap (so errors.Is/As reach the underlying failure).
type Resumable[I comparable] struct {
	failure error
	op      Check[I]
	input   I
}

func (r Resumable[I]) Error() string {
	if r.failure == nil {
		return "resumable"
	}
	return "resumable: " + r.failure.Error()
}

// Unwrap exposes the underlying failure to stdlib traversal.
func (r Resumable[I]) Unwrap() error { return r.failure }

// KindVal reports KindResumable.
func (r Resumable[I]) KindVal() Kind { return KindResumable }

// Failure returns the failure produced by the original invocation.
func (r Resumable[I]) Failure() error { return r.failure }

// Input returns the input value that failed the check.
func (r Resumable[I]) Input() I { return r.input }

// Resume re-invokes the original check with corrected input and returns its
// result: nil on success, a fresh descriptor on another failure. If corrected
// equals the input that already failed, the stored failure is returned
// without re-invoking the check.
func (r Resumable[I]) Resume(corrected I) error {
	if corrected == r.input {
		return r.failure
	}
	if r.op == nil {
		return r.failure
	}
	return r.op(corrected)
}

// TryOrResume invokes op(input). On success it returns nil; on failure it
// returns a Resumable wrapping the failure together with op and input, so a
// caller further up can correct the input and Resume. A nil op is treated as
// a vacuous success.
func TryOrResume[I comparable](op Check[I], input I) error {
	if op == nil {
		return nil
	}
	err := op(input)
	if err == nil {
		return nil
	}
	return Resumable[I]{failure: err, op: op, input: input}
}
