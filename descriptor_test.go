// descriptor_test.go — descriptor value semantics: messages, equality, duplication.
package xgxassert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor_ErrorStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mismatch: expected 32, got 0", Mismatch[int]{Expected: 32, Actual: 0}.Error())
	assert.Equal(t, "out of range: 5 not in [10, 1]", OutOfRange[int]{Value: 5, Lower: 10, Upper: 1}.Error())
	assert.Equal(t, "unknown variant: spades", UnknownVariant{Tag: "spades"}.Error())
	assert.Equal(t, "unknown variant", UnknownVariant{}.Error())
}

func TestDescriptor_KindVal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindMismatch, Mismatch[string]{}.KindVal())
	assert.Equal(t, KindOutOfRange, OutOfRange[float64]{}.KindVal())
	assert.Equal(t, KindUnknownVariant, UnknownVariant{}.KindVal())
}

func TestDescriptor_ValueDuplication(t *testing.T) {
	t.Parallel()

	// descriptors are plain values: copies are independent and compare equal
	a := Mismatch[int]{Expected: 1, Actual: 2}
	b := a
	assert.True(t, a == b)
	b.Actual = 3
	assert.Equal(t, 2, a.Actual)
	assert.False(t, a == b)
}

func TestDescriptor_ErrorsIsMatchesStructurally(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(Eq(1, 2), Mismatch[int]{Expected: 1, Actual: 2}))
	assert.False(t, errors.Is(Eq(1, 2), Mismatch[int]{Expected: 2, Actual: 1}))
	assert.False(t, errors.Is(Eq(1, 2), Mismatch[int8]{Expected: 1, Actual: 2}))
}

func TestTagOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Tag("string"), TagOf[string]())
	assert.Equal(t, Tag("int"), TagOf[int]())
	// named types report their qualified name, still bounded
	assert.LessOrEqual(t, len(TagOf[frameClass]()), maxTagWidth)
}
