package ranges_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josestg/rangeblaze/ranges"
)

func TestIsEmpty(t *testing.T) {
	assert.False(t, ranges.New(1, 5).IsEmpty())
	assert.False(t, ranges.New(5, 5).IsEmpty())
	assert.True(t, ranges.New(5, 1).IsEmpty())
}

func TestLen(t *testing.T) {
	l := ranges.New(1, 10).Len()
	n, ok := l.Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(10), n)

	assert.True(t, ranges.New(5, 1).Len().IsZero())
}

func TestContains(t *testing.T) {
	r := ranges.New(5, 10)
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(4))
	assert.False(t, r.Contains(11))
}

func TestTouches(t *testing.T) {
	assert.True(t, ranges.New(1, 5).Touches(ranges.New(6, 10)))
	assert.False(t, ranges.New(1, 5).Touches(ranges.New(7, 10)))
	assert.False(t, ranges.New(1, 5).Touches(ranges.New(5, 10)))
	// A range ending at the type's max never touches anything after it.
	assert.False(t, ranges.New[uint8](250, 255).Touches(ranges.New[uint8](255, 255)))
}

func TestOverlaps(t *testing.T) {
	assert.True(t, ranges.New(1, 5).Overlaps(ranges.New(5, 10)))
	assert.True(t, ranges.New(1, 10).Overlaps(ranges.New(3, 4)))
	assert.False(t, ranges.New(1, 5).Overlaps(ranges.New(6, 10)))
}

func TestTouchesOrOverlaps(t *testing.T) {
	assert.True(t, ranges.New(1, 5).TouchesOrOverlaps(ranges.New(6, 10)))
	assert.True(t, ranges.New(6, 10).TouchesOrOverlaps(ranges.New(1, 5)))
	assert.True(t, ranges.New(1, 5).TouchesOrOverlaps(ranges.New(3, 10)))
	assert.False(t, ranges.New(1, 5).TouchesOrOverlaps(ranges.New(7, 10)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1..=10", ranges.New(1, 10).String())
	v := ranges.NewValue(ranges.New(1, 10), "x")
	assert.Equal(t, "(1..=10, x)", v.String())
}
