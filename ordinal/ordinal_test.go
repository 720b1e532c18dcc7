package ordinal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josestg/rangeblaze/ordinal"
)

func TestMinMaxValue(t *testing.T) {
	assert.Equal(t, int8(127), ordinal.MaxValue[int8]())
	assert.Equal(t, int8(-128), ordinal.MinValue[int8]())
	assert.Equal(t, uint8(255), ordinal.MaxValue[uint8]())
	assert.Equal(t, uint8(0), ordinal.MinValue[uint8]())
	assert.Equal(t, int32(2147483647), ordinal.MaxValue[int32]())
	assert.Equal(t, int32(-2147483648), ordinal.MinValue[int32]())
	assert.Equal(t, ordinal.MaxValue[uint64](), ^uint64(0))
}

func TestSaturatingSuccessor(t *testing.T) {
	assert.Equal(t, int8(5), ordinal.AddOne(int8(4)))
	assert.Equal(t, int8(127), ordinal.AddOne(int8(127)), "must saturate at max, never wrap")
	assert.Equal(t, int8(-128), ordinal.SubOne(int8(-128)), "must saturate at min, never wrap")

	next, ok := ordinal.CheckedAddOne(int8(126))
	assert.True(t, ok)
	assert.Equal(t, int8(127), next)

	_, ok = ordinal.CheckedAddOne(int8(127))
	assert.False(t, ok)
}

func TestSafeLen(t *testing.T) {
	assert.Equal(t, ordinal.LenOf(1), ordinal.SafeLen(int8(5), int8(5)))
	assert.Equal(t, ordinal.LenOf(256), ordinal.SafeLen(int8(-128), int8(127)))
	assert.True(t, ordinal.SafeLen(uint64(0), ^uint64(0)).IsOverflow(), "full uint64 range is one past uint64 max")
}

func TestLenArithmetic(t *testing.T) {
	a := ordinal.LenOf(10)
	b := ordinal.LenOf(20)
	assert.Equal(t, ordinal.LenOf(30), a.Add(b))
	assert.Equal(t, 0, a.Add(b).Compare(ordinal.LenOf(30)))
	assert.Equal(t, -1, a.Compare(b))

	overflow := ordinal.SafeLen(uint64(0), ^uint64(0))
	assert.Equal(t, overflow, overflow.Add(ordinal.LenOf(5)), "overflow saturates")

	sum := overflow.Sub(ordinal.LenOf(1))
	u, ok := sum.Uint64()
	assert.True(t, ok)
	assert.Equal(t, ^uint64(0), u)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, ordinal.Compare(1, 2))
	assert.Equal(t, 0, ordinal.Compare(2, 2))
	assert.Equal(t, 1, ordinal.Compare(3, 2))
}
