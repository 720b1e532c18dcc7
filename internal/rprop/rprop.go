// Package rprop generates reusable property-test specs for the universal
// algebra laws RangeSet/RangeMap are expected to satisfy: commutativity,
// associativity, involution, De Morgan's laws, idempotence, the
// inclusion-exclusion length identity, the priority rule for map union,
// and the parity rule for
// symmetric difference. Each Spec pairs a name with a *testing.T func,
// generalized to randomized RangeSet[int]/RangeMap[int,string] instances
// rather than one fixed container, since these laws are properties of
// the algebra rather than of any single interface.
//
// No quickcheck-style library is available, so sampling is done with
// stdlib math/rand/v2 directly rather than reaching for a dependency
// that has no real-world precedent here.
package rprop

import (
	"math/rand/v2"
	"testing"

	"github.com/josestg/rangeblaze/ranges"
	"github.com/josestg/rangeblaze/rangemap"
	"github.com/josestg/rangeblaze/rangeset"
)

// Spec names and runs one property-test scenario.
type Spec struct {
	Name string
	Test func(t *testing.T)
}

const (
	defaultTrials  = 64
	defaultMaxVal  = 200
	defaultMaxRuns = 8
)

// randSet builds a RangeSet[int] out of maxRuns random, possibly
// overlapping ranges drawn from [0,maxVal].
func randSet(rng *rand.Rand, maxRuns, maxVal int) *rangeset.RangeSet[int] {
	n := rng.IntN(maxRuns + 1)
	rs := make([]ranges.Range[int], 0, n)
	for range n {
		a := rng.IntN(maxVal + 1)
		b := rng.IntN(maxVal + 1)
		if a > b {
			a, b = b, a
		}
		rs = append(rs, ranges.New(a, b))
	}
	return rangeset.FromRanges(rs...)
}

var alphabet = []string{"a", "b", "c", "d"}

// randMap builds a RangeMap[int,string] out of maxRuns random, possibly
// overlapping (range,value) pairs drawn from [0,maxVal] and a small value
// alphabet.
func randMap(rng *rand.Rand, maxRuns, maxVal int) *rangemap.RangeMap[int, string] {
	n := rng.IntN(maxRuns + 1)
	rvs := make([]ranges.Value[int, string], 0, n)
	for range n {
		a := rng.IntN(maxVal + 1)
		b := rng.IntN(maxVal + 1)
		if a > b {
			a, b = b, a
		}
		val := alphabet[rng.IntN(len(alphabet))]
		rvs = append(rvs, ranges.NewValue(ranges.New(a, b), val))
	}
	return rangemap.FromValues(rvs...)
}

func eachTrial(t *testing.T, trials int, f func(rng *rand.Rand)) {
	t.Helper()
	for i := range trials {
		rng := rand.New(rand.NewPCG(uint64(i), uint64(i)*2+1))
		f(rng)
	}
}

// UnionCommutative checks a∪b == b∪a.
func UnionCommutative(trials int) Spec {
	return Spec{
		Name: "UnionCommutative",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				b := randSet(rng, defaultMaxRuns, defaultMaxVal)
				lhs := rangeset.Union[int](a, b).String()
				rhs := rangeset.Union[int](b, a).String()
				if lhs != rhs {
					t.Fatalf("a=%s b=%s: a∪b=%q, b∪a=%q", a, b, lhs, rhs)
				}
			})
		},
	}
}

// UnionAssociative checks (a∪b)∪c == a∪(b∪c).
func UnionAssociative(trials int) Spec {
	return Spec{
		Name: "UnionAssociative",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				b := randSet(rng, defaultMaxRuns, defaultMaxVal)
				c := randSet(rng, defaultMaxRuns, defaultMaxVal)
				lhs := rangeset.Union[int](rangeset.Union[int](a, b), c).String()
				rhs := rangeset.Union[int](a, rangeset.Union[int](b, c)).String()
				if lhs != rhs {
					t.Fatalf("a=%s b=%s c=%s: (a∪b)∪c=%q, a∪(b∪c)=%q", a, b, c, lhs, rhs)
				}
			})
		},
	}
}

// IntersectionCommutative checks a∩b == b∩a.
func IntersectionCommutative(trials int) Spec {
	return Spec{
		Name: "IntersectionCommutative",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				b := randSet(rng, defaultMaxRuns, defaultMaxVal)
				lhs := rangeset.Intersection[int](a, b).String()
				rhs := rangeset.Intersection[int](b, a).String()
				if lhs != rhs {
					t.Fatalf("a=%s b=%s: a∩b=%q, b∩a=%q", a, b, lhs, rhs)
				}
			})
		},
	}
}

// IntersectionIdempotent checks a∩a == a.
func IntersectionIdempotent(trials int) Spec {
	return Spec{
		Name: "IntersectionIdempotent",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				got := rangeset.Intersection[int](a, a).String()
				if got != a.String() {
					t.Fatalf("a=%s: a∩a=%q", a, got)
				}
			})
		},
	}
}

// ComplementInvolution checks ¬¬a == a over a bounded universe:
// complement is its own inverse.
func ComplementInvolution(trials int) Spec {
	return Spec{
		Name: "ComplementInvolution",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				got := rangeset.Complement[int](rangeset.Complement[int](a)).String()
				if got != a.String() {
					t.Fatalf("a=%s: ¬¬a=%q", a, got)
				}
			})
		},
	}
}

// DeMorganUnion checks ¬(a∪b) == ¬a ∩ ¬b.
func DeMorganUnion(trials int) Spec {
	return Spec{
		Name: "DeMorganUnion",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				b := randSet(rng, defaultMaxRuns, defaultMaxVal)
				lhs := rangeset.Complement[int](rangeset.Union[int](a, b)).String()
				rhs := rangeset.Intersection[int](
					rangeset.Complement[int](a),
					rangeset.Complement[int](b),
				).String()
				if lhs != rhs {
					t.Fatalf("a=%s b=%s: ¬(a∪b)=%q, ¬a∩¬b=%q", a, b, lhs, rhs)
				}
			})
		},
	}
}

// DeMorganIntersection checks ¬(a∩b) == ¬a ∪ ¬b.
func DeMorganIntersection(trials int) Spec {
	return Spec{
		Name: "DeMorganIntersection",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				b := randSet(rng, defaultMaxRuns, defaultMaxVal)
				lhs := rangeset.Complement[int](rangeset.Intersection[int](a, b)).String()
				rhs := rangeset.Union[int](
					rangeset.Complement[int](a),
					rangeset.Complement[int](b),
				).String()
				if lhs != rhs {
					t.Fatalf("a=%s b=%s: ¬(a∩b)=%q, ¬a∪¬b=%q", a, b, lhs, rhs)
				}
			})
		},
	}
}

// LengthInclusionExclusion checks |a∪b| + |a∩b| == |a| + |b|, the
// inclusion-exclusion length identity.
func LengthInclusionExclusion(trials int) Spec {
	return Spec{
		Name: "LengthInclusionExclusion",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				b := randSet(rng, defaultMaxRuns, defaultMaxVal)
				union := rangeset.Union[int](a, b).Len()
				inter := rangeset.Intersection[int](a, b).Len()
				lhs := union.Add(inter)
				rhs := a.Len().Add(b.Len())
				if lhs.Compare(rhs) != 0 {
					t.Fatalf("a=%s b=%s: |a∪b|+|a∩b|=%s, |a|+|b|=%s", a, b, lhs, rhs)
				}
			})
		},
	}
}

// SymmetricDifferenceInvolution checks a⊕b⊕b == a: XOR-ing the same set
// twice is a no-op, the same involution property ComplementInvolution
// checks for complement.
func SymmetricDifferenceInvolution(trials int) Spec {
	return Spec{
		Name: "SymmetricDifferenceInvolution",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randSet(rng, defaultMaxRuns, defaultMaxVal)
				b := randSet(rng, defaultMaxRuns, defaultMaxVal)
				once := rangeset.SymmetricDifference[int](a, b)
				twice := rangeset.SymmetricDifference[int](once, b).String()
				if twice != a.String() {
					t.Fatalf("a=%s b=%s: a⊕b⊕b=%q", a, b, twice)
				}
			})
		},
	}
}

// MapUnionPriorityRule checks that, at every key the two maps share, the
// union's value matches the later (right-hand, higher-priority) operand's
// value, restricted to the two-argument operator form.
func MapUnionPriorityRule(trials int) Spec {
	return Spec{
		Name: "MapUnionPriorityRule",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randMap(rng, defaultMaxRuns, defaultMaxVal)
				b := randMap(rng, defaultMaxRuns, defaultMaxVal)
				u := a.Union(b)
				for x := 0; x <= defaultMaxVal; x++ {
					bv, bok := b.Get(x)
					av, aok := a.Get(x)
					uv, uok := u.Get(x)
					switch {
					case bok:
						if !uok || uv != bv {
							t.Fatalf("x=%d: b covers with %q, union has (%q,%v)", x, bv, uv, uok)
						}
					case aok:
						if !uok || uv != av {
							t.Fatalf("x=%d: a covers with %q, union has (%q,%v)", x, av, uv, uok)
						}
					default:
						if uok {
							t.Fatalf("x=%d: neither input covers, union has %q", x, uv)
						}
					}
				}
			})
		},
	}
}

// MapSymmetricDifferenceParityRule checks that a key appears in a⊕b iff
// it is covered by exactly one of a, b — the two-input case where "odd"
// reduces to "exactly one".
func MapSymmetricDifferenceParityRule(trials int) Spec {
	return Spec{
		Name: "MapSymmetricDifferenceParityRule",
		Test: func(t *testing.T) {
			eachTrial(t, trials, func(rng *rand.Rand) {
				a := randMap(rng, defaultMaxRuns, defaultMaxVal)
				b := randMap(rng, defaultMaxRuns, defaultMaxVal)
				x := a.SymmetricDifference(b)
				for k := 0; k <= defaultMaxVal; k++ {
					av, aok := a.Get(k)
					bv, bok := b.Get(k)
					xv, xok := x.Get(k)
					wantCovered := aok != bok
					if xok != wantCovered {
						t.Fatalf("k=%d: a has %v b has %v, x has %v", k, aok, bok, xok)
					}
					if !wantCovered {
						continue
					}
					want := av
					if bok {
						want = bv
					}
					if xv != want {
						t.Fatalf("k=%d: want value %q, got %q", k, want, xv)
					}
				}
			})
		},
	}
}

// All returns every property spec this package defines, each run over
// defaultTrials random instances.
func All() []Spec {
	return []Spec{
		UnionCommutative(defaultTrials),
		UnionAssociative(defaultTrials),
		IntersectionCommutative(defaultTrials),
		IntersectionIdempotent(defaultTrials),
		ComplementInvolution(defaultTrials),
		DeMorganUnion(defaultTrials),
		DeMorganIntersection(defaultTrials),
		LengthInclusionExclusion(defaultTrials),
		SymmetricDifferenceInvolution(defaultTrials),
		MapUnionPriorityRule(defaultTrials),
		MapSymmetricDifferenceParityRule(defaultTrials),
	}
}
