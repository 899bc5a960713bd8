// recover_test.go — recovery combinator and matcher behavior.
package xgxassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_MatchedFailureBecomesFallback(t *testing.T) {
	t.Parallel()

	v, err := Recover(Eq(32, 0), MatchAs[Mismatch[int]](), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestRecover_UnmatchedFailurePropagatesUnchanged(t *testing.T) {
	t.Parallel()

	orig := Eq(32, 0)
	_, err := Recover(orig, MatchAs[OutOfRange[int]](), 0)
	require.Error(t, err)
	assert.Equal(t, orig, err, "unmatched failure must be the original value, bit for bit")
	assert.Equal(t, Mismatch[int]{Expected: 32, Actual: 0}, err)
}

func TestRecover_SuccessIsNoOp(t *testing.T) {
	t.Parallel()

	v, err := Recover(Eq(7, 7), MatchAs[Mismatch[int]](), 99)
	require.NoError(t, err)
	assert.Zero(t, v, "success carries no recovered value")
}

func TestRecover_MatcherSeesThroughContext(t *testing.T) {
	t.Parallel()

	t.Run("matched through context", func(t *testing.T) {
		wrapped := WithContext(Eq(32, 0), "boundary")
		v, err := Recover(wrapped, MatchAs[Mismatch[int]](), -1)
		require.NoError(t, err)
		assert.Equal(t, -1, v)
	})

	t.Run("unmatched keeps the context chain", func(t *testing.T) {
		wrapped := WithContext(WithContext(Eq(32, 0), "specific"), "outer")
		_, err := Recover(wrapped, MatchAs[OutOfRange[int]](), -1)
		require.Error(t, err)
		c, ok := err.(Context)
		require.True(t, ok, "context must be preserved on propagation")
		assert.Equal(t, "outer", c.Note())
	})
}

func TestRecover_NilMatcherMatchesNothing(t *testing.T) {
	t.Parallel()

	orig := Eq(1, 2)
	_, err := Recover(orig, nil, 0)
	assert.Equal(t, orig, err)
}

func TestRecoverErr(t *testing.T) {
	t.Parallel()

	t.Run("matched is converted to nil", func(t *testing.T) {
		require.NoError(t, RecoverErr(InRange(0, 1, 9), MatchKind(KindOutOfRange)))
	})

	t.Run("unmatched propagates", func(t *testing.T) {
		orig := InRange(0, 1, 9)
		assert.Equal(t, orig, RecoverErr(orig, MatchKind(KindMismatch)))
	})

	t.Run("success is a no-op", func(t *testing.T) {
		require.NoError(t, RecoverErr(nil, MatchKind(KindMismatch)))
	})
}

func TestMatchers(t *testing.T) {
	t.Parallel()

	t.Run("MatchKind", func(t *testing.T) {
		assert.True(t, MatchKind(KindMismatch)(Eq(1, 2)))
		assert.False(t, MatchKind(KindOutOfRange)(Eq(1, 2)))
	})

	t.Run("MatchAs requires exact instantiation", func(t *testing.T) {
		assert.True(t, MatchAs[Mismatch[int]]()(Eq(1, 2)))
		assert.False(t, MatchAs[Mismatch[int64]]()(Eq(1, 2)))
		assert.False(t, MatchAs[Mismatch[string]]()(Eq(1, 2)))
	})

	t.Run("MatchAny", func(t *testing.T) {
		m := MatchAny(MatchKind(KindMismatch), MatchKind(KindOutOfRange))
		assert.True(t, m(Eq(1, 2)))
		assert.True(t, m(InRange(0, 1, 9)))
		assert.False(t, m(Known("x", []string{"a"})))
		assert.False(t, MatchAny()(Eq(1, 2)))
		assert.True(t, MatchAny(nil, MatchKind(KindMismatch))(Eq(1, 2)))
	})
}
