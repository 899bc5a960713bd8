// check_test.go — verification of the four checks and their curried forms.
package xgxassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEq_Semantics(t *testing.T) {
	t.Parallel()

	t.Run("equal values succeed", func(t *testing.T) {
		require.NoError(t, Eq(42, 42))
		require.NoError(t, Eq("a", "a"))
		require.NoError(t, Eq(struct{ X int }{1}, struct{ X int }{1}))
	})

	t.Run("unequal values fail with Mismatch, expected first", func(t *testing.T) {
		err := Eq(32, 0)
		require.Error(t, err)
		m, ok := err.(Mismatch[int])
		require.True(t, ok, "expected Mismatch[int], got %T", err)
		assert.Equal(t, 32, m.Expected)
		assert.Equal(t, 0, m.Actual)
	})

	t.Run("descriptor equality is structural", func(t *testing.T) {
		assert.Equal(t, Eq(32, 0), Mismatch[int]{Expected: 32, Actual: 0})
		assert.NotEqual(t, Eq(32, 0), Mismatch[int]{Expected: 0, Actual: 32})
	})

	t.Run("operands recorded verbatim, no normalization", func(t *testing.T) {
		err := Eq("Café ", "cafe")
		m := err.(Mismatch[string])
		assert.Equal(t, "Café ", m.Expected)
		assert.Equal(t, "cafe", m.Actual)
	})
}

func TestInRange_Semantics(t *testing.T) {
	t.Parallel()

	t.Run("inclusive bounds", func(t *testing.T) {
		require.NoError(t, InRange(1, 1, 10))
		require.NoError(t, InRange(10, 1, 10))
		require.NoError(t, InRange(5, 1, 10))
	})

	t.Run("below lower fails", func(t *testing.T) {
		err := InRange(0, 1, 10)
		require.Error(t, err)
		assert.Equal(t, OutOfRange[int]{Value: 0, Lower: 1, Upper: 10}, err)
	})

	t.Run("above upper fails", func(t *testing.T) {
		err := InRange(11, 1, 10)
		require.Error(t, err)
		assert.Equal(t, OutOfRange[int]{Value: 11, Lower: 1, Upper: 10}, err)
	})

	t.Run("inverted bounds always fail, recorded as given", func(t *testing.T) {
		err := InRange(5, 10, 1)
		require.Error(t, err)
		o, ok := err.(OutOfRange[int])
		require.True(t, ok, "expected OutOfRange[int], got %T", err)
		assert.Equal(t, 5, o.Value)
		assert.Equal(t, 10, o.Lower)
		assert.Equal(t, 1, o.Upper)
	})

	t.Run("ordered strings", func(t *testing.T) {
		require.NoError(t, InRange("m", "a", "z"))
		require.Error(t, InRange("~", "a", "z"))
	})
}

func TestKnown_Semantics(t *testing.T) {
	t.Parallel()

	colors := []string{"red", "green", "blue"}

	t.Run("member succeeds", func(t *testing.T) {
		require.NoError(t, Known("green", colors))
	})

	t.Run("non-member fails with type-derived tag", func(t *testing.T) {
		err := Known("mauve", colors)
		require.Error(t, err)
		u, ok := err.(UnknownVariant)
		require.True(t, ok, "expected UnknownVariant, got %T", err)
		assert.Equal(t, TagOf[string](), u.Tag)
	})

	t.Run("empty set fails", func(t *testing.T) {
		require.Error(t, Known(1, nil))
	})

	t.Run("tag carries the class, never the payload", func(t *testing.T) {
		secret := "p@ssw0rd-that-must-not-leak-into-diagnostics"
		err := Known(secret, colors)
		u := err.(UnknownVariant)
		assert.NotContains(t, string(u.Tag), "p@ssw0rd")
		assert.LessOrEqual(t, len(u.Tag), maxTagWidth)
	})
}

// suit is a closed labeled-variant set used by KnownEnum tests.
type suit uint8

const (
	clubs suit = iota
	diamonds
	hearts
	spades
)

func (s suit) String() string {
	switch s {
	case clubs:
		return "clubs"
	case diamonds:
		return "diamonds"
	case hearts:
		return "hearts"
	case spades:
		return "spades"
	}
	return "suit(?)"
}

func TestKnownEnum_Semantics(t *testing.T) {
	t.Parallel()

	reds := []suit{diamonds, hearts}

	t.Run("member succeeds", func(t *testing.T) {
		require.NoError(t, KnownEnum(hearts, reds))
	})

	t.Run("non-member fails with the variant's label", func(t *testing.T) {
		err := KnownEnum(spades, reds)
		require.Error(t, err)
		u, ok := err.(UnknownVariant)
		require.True(t, ok, "expected UnknownVariant, got %T", err)
		assert.Equal(t, Tag("spades"), u.Tag)
	})
}

func TestCurriedChecks(t *testing.T) {
	t.Parallel()

	t.Run("EqWith", func(t *testing.T) {
		check := EqWith(32)
		require.NoError(t, check(32))
		assert.Equal(t, Mismatch[int]{Expected: 32, Actual: 0}, check(0))
	})

	t.Run("InRangeWith", func(t *testing.T) {
		check := InRangeWith(1, 10)
		require.NoError(t, check(5))
		assert.Equal(t, OutOfRange[int]{Value: 0, Lower: 1, Upper: 10}, check(0))
	})

	t.Run("KnownWith", func(t *testing.T) {
		check := KnownWith([]string{"a", "b"})
		require.NoError(t, check("a"))
		require.Error(t, check("c"))
	})
}

func TestTagBounded(t *testing.T) {
	t.Parallel()

	long := "this-label-is-deliberately-much-longer-than-the-tag-bound"
	tag := boundTag(long)
	assert.Len(t, string(tag), maxTagWidth)
	assert.Equal(t, long[:maxTagWidth], string(tag))

	short := boundTag("short")
	assert.Equal(t, Tag("short"), short)
}

func TestChecksNeverPanic_WorstCaseIsAFailureValue(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		_ = InRange(5, 10, 1)
		_ = Known[string]("x", nil)
		_ = KnownEnum(suit(99), nil)
		_ = Eq("", "x")
	})
}
