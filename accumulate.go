// accumulate.go — the fail-complete strategy for xgx-assert core.
//
// Goals:
//   - Run an independent batch of checks and report every violation in one
//     value, instead of stopping at the first (e.g., validating several
//     fields of a record).
//   - Bounded by construction: capacity is a fixed, caller-chosen bound with
//     exactly one allocation at construction; the buffer never grows and
//     entries are never reordered.
//   - Preserve stdlib semantics for the batched result: Accumulated
//     implements Unwrap() []error for errors.Is/As tree traversal and its
//     Error() newline-joins child messages like errors.Join.
//
// State machine: Empty → Collecting → Finalized. Push accepts results while
// not finalized; Finalize emits the batch exactly once. Misuse (push after
// finalize, overflow under the reject policy) yields a sentinel error from
// the call itself — never a panic.
package xgxassert

import (
	"errors"
	"strings"
)

// Sentinel errors returned by Accumulator misuse paths. Compare with
// errors.Is.
var (
	// ErrCapacity is returned by Push under OverflowReject when the
	// accumulator is already full.
	ErrCapacity = errors.New("xgxassert: accumulator at capacity")

	// ErrFinalized is returned by Push and Finalize once the accumulator has
	// been finalized.
	ErrFinalized = errors.New("xgxassert: accumulator already finalized")
)

// OverflowPolicy fixes, at construction, what Push does with a failure that
// arrives when the accumulator is already full.
type OverflowPolicy uint8

const (
	// OverflowDrop drops the new failure and sets the overflow flag on the
	// eventual Accumulated. Push itself succeeds.
	OverflowDrop OverflowPolicy = iota

	// OverflowReject fails the Push call itself with ErrCapacity, leaving the
	// collected entries untouched.
	OverflowReject
)

// accState tracks the accumulator lifecycle.
type accState uint8

const (
	accEmpty accState = iota
	accCollecting
	accFinalized
)

// Accumulator collects every failure from a batch of checks in push order and
// reports them all on Finalize. Capacity and overflow policy are fixed at
// construction; the backing buffer is allocated once and never grows.
//
// An Accumulator is a single-owner value: it is not safe for concurrent use,
// matching the library's synchronous model.
type Accumulator struct {
	entries    []error
	policy     OverflowPolicy
	state      accState
	overflowed bool
}

// NewAccumulator returns an accumulator holding at most capacity failures,
// applying policy when a failure arrives beyond that bound. A capacity below
// one is clamped to one so the accumulator can always record at least the
// first failure.
func NewAccumulator(capacity int, policy OverflowPolicy) *Accumulator {
	if capacity < 1 {
		capacity = 1
	}
	return &Accumulator{
		entries: make([]error, 0, capacity),
		policy:  policy,
	}
}

// Push records the outcome of one check. A nil err is a success and changes
// nothing. A failure is appended in encounter order while capacity remains;
// at capacity the construction-time policy applies: OverflowDrop drops the
// failure and sets the overflow flag, OverflowReject returns ErrCapacity.
// After Finalize, Push always returns ErrFinalized.
func (a *Accumulator) Push(err error) error {
	if a.state == accFinalized {
		return ErrFinalized
	}
	if err == nil {
		return nil
	}
	a.state = accCollecting
	if len(a.entries) == cap(a.entries) {
		if a.policy == OverflowReject {
			return ErrCapacity
		}
		a.overflowed = true
		return nil
	}
	a.entries = append(a.entries, err)
	return nil
}

// Finalize ends collection and yields the batch outcome: nil when no failure
// was pushed, otherwise an Accumulated holding every collected failure in
// push order (with the overflow flag, if failures were dropped). A second
// Finalize returns ErrFinalized so a batch report cannot be emitted twice.
func (a *Accumulator) Finalize() error {
	if a.state == accFinalized {
		return ErrFinalized
	}
	a.state = accFinalized
	if len(a.entries) == 0 {
		return nil
	}
	return Accumulated{entries: a.entries, overflowed: a.overflowed}
}

// Len reports how many failures have been collected so far.
func (a *Accumulator) Len() int { return len(a.entries) }

// Cap reports the fixed capacity chosen at construction.
func (a *Accumulator) Cap() int { return cap(a.entries) }

// Overflowed reports whether any failure has been dropped under OverflowDrop.
func (a *Accumulator) Overflowed() bool { return a.overflowed }

// Accumulated is the batched failure produced by Finalize: an ordered
// sequence of the collected failures plus an overflow flag. It implements
// Unwrap() []error, so errors.Is/As traverse the entries, and its Error()
// newline-joins child messages like errors.Join.
type Accumulated struct {
	entries    []error
	overflowed bool
}

// Error concatenates entry messages with newlines, matching the stdlib
// errors.Join shape.
func (a Accumulated) Error() string {
	if len(a.entries) == 0 {
		return "accumulated"
	}
	if len(a.entries) == 1 {
		return a.entries[0].Error()
	}
	var sb strings.Builder
	for i, e := range a.entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap exposes the entries to stdlib traversal (errors.Is/As walk them
// pre-order).
func (a Accumulated) Unwrap() []error { return a.entries }

// KindVal reports KindAccumulated.
func (a Accumulated) KindVal() Kind { return KindAccumulated }

// Entries returns a defensive copy of the collected failures in push order.
func (a Accumulated) Entries() []error {
	out := make([]error, len(a.entries))
	copy(out, a.entries)
	return out
}

// Len reports the number of collected failures.
func (a Accumulated) Len() int { return len(a.entries) }

// Overflowed reports whether failures beyond capacity were dropped.
func (a Accumulated) Overflowed() bool { return a.overflowed }
