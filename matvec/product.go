// This file implements the semiring vector-matrix products.
package matvec

import (
	"github.com/katalvlaran/sparsegraph/semiring"
	"github.com/katalvlaran/sparsegraph/sparse"
)

// Product computes the semiring vector-matrix product v * m: for each arc
// (i, x) of v and each arc (j, y) of row i, the value x*y contributes to
// index j, and contributions to the same index are summed with sr.Add.
// Explicit Zero entries in the inputs flow through like any other value.
// Complexity: O(len(v) + rows(m)) plus the size of the touched rows.
func Product[T any](sr semiring.Semiring[T], v sparse.Vector[T], m sparse.Matrix[T]) sparse.Vector[T] {
	return Multiply(v, m,
		func(_ int, x T, row sparse.Vector[T]) sparse.Vector[T] {
			return sparse.Map(row, func(_ int, y T) T { return sr.Mul(x, y) })
		},
		func(parts []sparse.Vector[T]) sparse.Vector[T] {
			return sparse.UnionAll(parts, sr.Add)
		},
	)
}

// ProductNonzero computes the same product as Product but never stores a
// value equal to sr.Zero(): scalar Zero skips its whole row, scalar One
// reuses the row unchanged, and everything that remains is filtered after
// summing. It needs sr to also implement semiring.Eq to recognize the
// identities; without Eq it falls back to Product wholesale. Either way the
// result equals Product's up to explicit Zero entries.
// Complexity: as Product, minus the rows and arcs short-circuited away.
func ProductNonzero[T any](sr semiring.Semiring[T], v sparse.Vector[T], m sparse.Matrix[T]) sparse.Vector[T] {
	eq, ok := sr.(semiring.Eq[T])
	if !ok {
		return Product(sr, v, m)
	}
	zero, one := sr.Zero(), sr.One()
	notZero := func(_ int, x T) bool { return !eq.Equal(x, zero) }

	return Multiply(v, m,
		func(_ int, x T, row sparse.Vector[T]) sparse.Vector[T] {
			switch {
			case eq.Equal(x, zero):
				// Zero absorbs the whole row.
				return sparse.Vector[T]{}
			case eq.Equal(x, one):
				return row
			default:
				return sparse.Filter(
					sparse.Map(row, func(_ int, y T) T { return sr.Mul(x, y) }),
					notZero,
				)
			}
		},
		func(parts []sparse.Vector[T]) sparse.Vector[T] {
			// Add can cancel back to Zero, so filter once more after summing.
			return sparse.Filter(sparse.UnionAll(parts, sr.Add), notZero)
		},
	)
}
