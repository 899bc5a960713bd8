// context.go — the Context wrapper for xgx-assert core.
//
// Design:
//   - Context attaches diagnostic metadata (a bounded note, an optional
//     opaque correlation token) to any failure without altering it.
//   - Wrapping is purely additive: chains never collapse. Wrapping an
//     already-wrapped failure yields Context around Context, innermost
//     context closest to the descriptor (most specific first).
//   - Context implements Unwrap() error, so errors.Is/As traverse through it
//     and structural comparisons reach the wrapped descriptor unchanged.
//
// Rationale for the note bound: the core promises fixed-size values; an
// unbounded caller string would smuggle arbitrary heap data into what is
// otherwise a stack-resident wrapper. Longer notes are truncated, not
// rejected.
package xgxassert

// maxNoteWidth bounds the note text a Context will store.
const maxNoteWidth = 120

// Correlation is an opaque fixed-width token attached to a failure for
// cross-system tracing. The core never interprets it; external collaborators
// (trace propagation, log pipelines) assign and read it. A trace/span id or a
// uuid fits directly. The zero value means "no correlation attached".
type Correlation [16]byte

// zeroCorrelation is the canonical absent token.
var zeroCorrelation Correlation

// Context wraps a failure with a human-readable note and/or a correlation
// token. It never alters the wrapped value and is transparent to errors.Is/As
// via Unwrap. Use Inner to strip Context wrappers when comparing descriptors
// directly.
type Context struct {
	inner error
	note  string
	corr  Correlation
}

func (c Context) Error() string {
	if c.inner == nil {
		// Only reachable by constructing a zero Context by hand.
		return c.note
	}
	if c.note == "" {
		return c.inner.Error()
	}
	return c.note + ": " + c.inner.Error()
}

// Unwrap exposes the wrapped failure to stdlib traversal.
func (c Context) Unwrap() error { return c.inner }

// KindVal reports KindContext.
func (c Context) KindVal() Kind { return KindContext }

// Note returns the attached note ("" if none was given or it was empty).
func (c Context) Note() string { return c.note }

// Correlation returns the attached token and whether one was attached.
func (c Context) Correlation() (Correlation, bool) {
	return c.corr, c.corr != zeroCorrelation
}

// WithContext wraps a failed result in a Context carrying note and, if given,
// the first correlation token. A nil err is a success and passes through
// untouched. Notes longer than the internal bound are truncated.
//
// Wrapping an already-wrapped failure preserves the full chain:
//
//	err = WithContext(err, "parsing header")
//	err = WithContext(err, "loading config", corr)
//	// Context{note: "loading config"} → Context{note: "parsing header"} → descriptor
func WithContext(err error, note string, corr ...Correlation) error {
	if err == nil {
		return nil
	}
	c := Context{inner: err, note: boundNote(note)}
	if len(corr) > 0 {
		c.corr = corr[0]
	}
	return c
}

// Inner strips Context wrappers (and only Context wrappers) from err,
// returning the innermost non-Context value. Other wrappers — Accumulated,
// Resumable, foreign errors — are returned as-is; use Flatten or Root for
// full-graph traversal.
func Inner(err error) error {
	for {
		c, ok := err.(Context)
		if !ok {
			return err
		}
		err = c.inner
	}
}

// boundNote truncates note to maxNoteWidth bytes.
func boundNote(note string) string {
	if len(note) > maxNoteWidth {
		return note[:maxNoteWidth]
	}
	return note
}
