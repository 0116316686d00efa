// Ready-made value generators for the common "draw from a range" cases.
// Range constructors validate and panic on inverted bounds, like the option
// constructors.
package randmat

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// IntRange returns a values function drawing uniformly from [lo, hi].
// Panics when lo > hi.
func IntRange[T constraints.Integer](lo, hi T) func(*rand.Rand) T {
	if lo > hi {
		panic(fmt.Sprintf("randmat: IntRange(%d, %d): inverted bounds", int64(lo), int64(hi)))
	}
	span := int64(hi) - int64(lo) + 1

	return func(rng *rand.Rand) T {
		return lo + T(rng.Int63n(span))
	}
}

// FloatRange returns a values function drawing uniformly from [lo, hi).
// Panics when lo > hi; lo == hi degenerates to the constant lo.
func FloatRange[T constraints.Float](lo, hi T) func(*rand.Rand) T {
	if lo > hi {
		panic(fmt.Sprintf("randmat: FloatRange(%g, %g): inverted bounds", float64(lo), float64(hi)))
	}
	span := hi - lo

	return func(rng *rand.Rand) T {
		return lo + T(rng.Float64())*span
	}
}

// Const returns value on every draw; handy for pseudo-Boolean adjacency
// matrices where only structure matters.
func Const[V any](value V) func(*rand.Rand) V {
	return func(*rand.Rand) V { return value }
}
