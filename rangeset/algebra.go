package rangeset

import (
	"github.com/josestg/rangeblaze/disjoint"
	"github.com/josestg/rangeblaze/ordinal"
)

// Union returns the union of any number of sets, as a new RangeSet; the
// operands are left untouched ("by-reference" form).
func Union[T ordinal.Integer](sets ...*RangeSet[T]) *RangeSet[T] {
	return FromStream[T](disjoint.UnionK[T](streamsOf(sets)...))
}

// Intersection returns the intersection of any number of sets.
func Intersection[T ordinal.Integer](sets ...*RangeSet[T]) *RangeSet[T] {
	return FromStream[T](disjoint.IntersectionK[T](streamsOf(sets)...))
}

// Difference returns a ∖ b.
func Difference[T ordinal.Integer](a, b *RangeSet[T]) *RangeSet[T] {
	return FromStream[T](disjoint.Difference[T](a.Stream(), b.Stream()))
}

// SymmetricDifference returns the k-way symmetric difference of sets: a
// position is in the output iff it is covered by an odd number of
// inputs.
func SymmetricDifference[T ordinal.Integer](sets ...*RangeSet[T]) *RangeSet[T] {
	return FromStream[T](disjoint.SymmetricDifferenceK[T](streamsOf(sets)...))
}

// Complement returns every T not covered by s.
func Complement[T ordinal.Integer](s *RangeSet[T]) *RangeSet[T] {
	return FromStream[T](disjoint.NewComplement[T](s.Stream()))
}

// Union returns the union of s and other, leaving both untouched.
func (s *RangeSet[T]) Union(other *RangeSet[T]) *RangeSet[T] {
	return Union[T](s, other)
}

// Intersect returns the intersection of s and other, leaving both
// untouched.
func (s *RangeSet[T]) Intersect(other *RangeSet[T]) *RangeSet[T] {
	return Intersection[T](s, other)
}

// Difference returns s ∖ other, leaving both untouched.
func (s *RangeSet[T]) Difference(other *RangeSet[T]) *RangeSet[T] {
	return Difference[T](s, other)
}

// SymmetricDifference returns s ⊕ other, leaving both untouched.
func (s *RangeSet[T]) SymmetricDifference(other *RangeSet[T]) *RangeSet[T] {
	return SymmetricDifference[T](s, other)
}

// Complement returns every T not in s.
func (s *RangeSet[T]) Complement() *RangeSet[T] {
	return Complement[T](s)
}

func streamsOf[T ordinal.Integer](sets []*RangeSet[T]) []disjoint.Stream[T] {
	out := make([]disjoint.Stream[T], len(sets))
	for i, s := range sets {
		out[i] = s.Stream()
	}
	return out
}
