// Package oracle defines the "draw oracle" contract the core generation
// algorithms are parameterized over: a source of integers, choices,
// permutations and list sizes that the host property-based test framework
// ultimately controls. The core never reaches for thread-local randomness
// directly, so replaying the same oracle against the same configuration is
// deterministic by construction.
package oracle

import "math/rand"

// Oracle is the minimal draw surface the core needs. Implementations may
// be backed by a live test-framework strategy or, as here, a seeded PRNG
// for standalone use and fixture replay.
type Oracle interface {
	// Integer returns a value in [lo, hi], inclusive.
	Integer(lo, hi int) int
	// Bool returns an evenly-weighted coin flip, used for the alternating
	// sort-key choice and similar binary decisions.
	Bool() bool
}

// Choice picks one element of seq via o.Integer.
func Choice[T any](o Oracle, seq []T) T {
	return seq[o.Integer(0, len(seq)-1)]
}

// Permutation returns a random reordering of seq (Fisher-Yates, driven by
// o.Integer so replay is deterministic).
func Permutation[T any](o Oracle, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	for i := len(out) - 1; i > 0; i-- {
		j := o.Integer(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ListSize draws a list length in [min, max].
func ListSize(o Oracle, min, max int) int {
	if min >= max {
		return min
	}
	return o.Integer(min, max)
}

// Rand is the default Oracle, backed by math/rand. No example in the
// retrieved pack offers a replayable-randomness abstraction to build on, so
// this wraps the standard library's PRNG directly rather than adopting an
// unrelated third-party generator.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded deterministically: the same seed always
// drives the same sequence of draws.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (o *Rand) Integer(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + o.r.Intn(hi-lo+1)
}

func (o *Rand) Bool() bool { return o.r.Intn(2) == 0 }
