// Package ordinal provides the integer-key arithmetic that every range
// container in this module is generic over.
//
// # Why not just use cmp.Ordered?
//
// A range container needs more than comparison: it needs a successor
// ("the next key after this one") and predecessor, and it needs to count
// how many keys lie between two endpoints without overflowing at the top
// of the type's range. cmp.Ordered alone cannot express any of that.
//
// # Saturating arithmetic
//
// Every "+1" and "-1" performed on a key saturates at the type's bounds
// instead of wrapping. A wrap at the maximum value is always a bug here:
// it would make a range's end appear smaller than its start, or make two
// disjoint ranges appear to touch when they do not. AddOne and SubOne are
// the only places this arithmetic happens, so every other package in this
// module can treat a wrap as impossible.
//
// # The length-counter problem
//
// The number of integers in the range [min_value, max_value] is one more
// than the type can represent (e.g. a uint8 range can hold 256 values, but
// uint8 only counts up to 255). SafeLen returns a Len, a small saturating
// counter type built exactly to hold "up to one more than T can count".
package ordinal

import (
	"unsafe"

	"github.com/josestg/rangeblaze/internal/generics"
)

// Integer is the constraint for keys usable in a range container: any
// built-in signed or unsigned integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func bitSize[T Integer]() int {
	zero := generics.ZeroValue[T]()
	return int(unsafe.Sizeof(zero)) * 8
}

func isSigned[T Integer]() bool {
	zero := generics.ZeroValue[T]()
	return zero-1 < zero
}

// MaxValue returns the largest representable value of T.
func MaxValue[T Integer]() T {
	if isSigned[T]() {
		return T(uint64(1)<<(bitSize[T]()-1) - 1)
	}
	return ^generics.ZeroValue[T]()
}

// MinValue returns the smallest representable value of T.
func MinValue[T Integer]() T {
	if isSigned[T]() {
		return -MaxValue[T]() - 1
	}
	return generics.ZeroValue[T]()
}

// SafeMaxValue is the largest T for which SafeMaxValue+1 can still be
// represented by Len. For every integer kind this module supports (Go has
// no native 128-bit integer), this equals MaxValue; the distinction only
// matters for 128-bit keys, so it is kept as a separate function rather
// than collapsed into MaxValue.
func SafeMaxValue[T Integer]() T {
	return MaxValue[T]()
}

// AddOne returns x+1, saturating at MaxValue instead of wrapping.
func AddOne[T Integer](x T) T {
	if x == MaxValue[T]() {
		return x
	}
	return x + 1
}

// SubOne returns x-1, saturating at MinValue instead of wrapping.
func SubOne[T Integer](x T) T {
	if x == MinValue[T]() {
		return x
	}
	return x - 1
}

// CheckedAddOne returns (x+1, true), or (x, false) iff x is MaxValue.
func CheckedAddOne[T Integer](x T) (T, bool) {
	if x == MaxValue[T]() {
		return x, false
	}
	return x + 1, true
}

// Compare returns -1, 0, or 1 as a < b, a == b, or a > b.
func Compare[T Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SafeLen returns e-s+1, the count of integers in [s,e], as a Len. The
// caller must ensure s <= e; an empty range is not a valid input here (the
// store and streams filter those out before reaching this function).
func SafeLen[T Integer](s, e T) Len {
	if isSigned[T]() {
		diff := uint64(int64(e)) - uint64(int64(s))
		return lenFromDiff(diff)
	}
	diff := uint64(e) - uint64(s)
	return lenFromDiff(diff)
}

func lenFromDiff(diff uint64) Len {
	if diff == ^uint64(0) {
		// e-s == UMAX, so e-s+1 overflows the counter by exactly one.
		return Len{overflow: true}
	}
	return Len{n: diff + 1}
}
