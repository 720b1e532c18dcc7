package sequence_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josestg/rangeblaze/sequence"
)

func from[E any](vs ...E) func(func(E) bool) {
	return func(yield func(E) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func TestEnum(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range sequence.Enum(from("a", "b", "c")) {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, vals)
}

func TestEnumStopsEarly(t *testing.T) {
	var idx []int
	for i, v := range sequence.Enum(from("a", "b", "c")) {
		idx = append(idx, i)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
}

func TestValueAtFound(t *testing.T) {
	v, ok := sequence.ValueAt(from("a", "b", "c", "d"), 2)
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestValueAtOutOfRange(t *testing.T) {
	v, ok := sequence.ValueAt(from("a", "b"), 5)
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", sequence.String(from(1, 2, 3)))
	assert.Equal(t, "[]", sequence.String(from[int]()))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", sequence.Format(from(1, 2, 3), ", "))
	assert.Equal(t, "[1->2->3]", sequence.Format(from(1, 2, 3), "->"))
}

func TestValueAtMatchesSlices(t *testing.T) {
	vs := []string{"x", "y", "z"}
	v, ok := sequence.ValueAt(slices.Values(vs), 1)
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}
