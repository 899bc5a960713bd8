// format.go — fmt.Formatter implementations for xgx-assert core.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, structured form:
//	             kind=<kind> <descriptor fields>
//	             cause: <recursively formatted with %+v>   (wrappers)
//	%q       → quoted Error().
//
// Rationale:
//   - Rendering policy stays out of the core; fmt interop is the one
//     display capability the library ships, so any logger or test harness
//     that understands %+v gets structured output for free.
//   - Wrapper kinds defer cause formatting to fmt with %+v so nested
//     descriptors render their own detail.
package xgxassert

import (
	"encoding/hex"
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// dispatch routes the non-%+v verbs identically for every kind.
func dispatch(s fmt.State, verb rune, e error, verbose func()) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			verbose()
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

func (m Mismatch[T]) Format(s fmt.State, verb rune) {
	dispatch(s, verb, m, func() {
		_, _ = fmt.Fprintf(s, "kind=%s expected=%v actual=%v", KindMismatch, m.Expected, m.Actual)
	})
}

func (o OutOfRange[T]) Format(s fmt.State, verb rune) {
	dispatch(s, verb, o, func() {
		_, _ = fmt.Fprintf(s, "kind=%s value=%v lower=%v upper=%v", KindOutOfRange, o.Value, o.Lower, o.Upper)
	})
}

func (u UnknownVariant) Format(s fmt.State, verb rune) {
	dispatch(s, verb, u, func() {
		_, _ = fmt.Fprintf(s, "kind=%s tag=%q", KindUnknownVariant, string(u.Tag))
	})
}

func (c Context) Format(s fmt.State, verb rune) {
	dispatch(s, verb, c, func() {
		_, _ = fmt.Fprintf(s, "kind=%s note=%q", KindContext, c.note)
		if corr, ok := c.Correlation(); ok {
			_, _ = fmt.Fprintf(s, " corr=%s", hex.EncodeToString(corr[:]))
		}
		if c.inner != nil {
			_, _ = io.WriteString(s, "\ncause: ")
			_, _ = fmt.Fprintf(s, "%+v", c.inner)
		}
	})
}

func (a Accumulated) Format(s fmt.State, verb rune) {
	dispatch(s, verb, a, func() {
		_, _ = fmt.Fprintf(s, "kind=%s entries=%d overflowed=%t", KindAccumulated, len(a.entries), a.overflowed)
		for i, e := range a.entries {
			_, _ = fmt.Fprintf(s, "\n[%d] %+v", i, e)
		}
	})
}

func (r Resumable[I]) Format(s fmt.State, verb rune) {
	dispatch(s, verb, r, func() {
		_, _ = fmt.Fprintf(s, "kind=%s input=%v", KindResumable, r.input)
		if r.failure != nil {
			_, _ = io.WriteString(s, "\ncause: ")
			_, _ = fmt.Fprintf(s, "%+v", r.failure)
		}
	})
}
