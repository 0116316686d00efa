// This file implements predecessor collection and the matrix transpose
// built from it.
package matvec

import (
	"errors"

	"github.com/katalvlaran/sparsegraph/sparse"
)

// ErrNegativeColumns indicates Transpose was given a negative column count.
var ErrNegativeColumns = errors.New("matvec: negative column count")

// Predecessors returns, for every vertex with at least one incoming arc,
// its predecessor arcs: (source, value) pairs in ascending source order.
// Every stored row participates, so the input vector of the underlying
// product is the matrix's own row set.
// Complexity: O(rows(m)) plus the total number of stored arcs.
func Predecessors[V any](m sparse.Matrix[V]) sparse.Vector[[]sparse.Arc[V]] {
	seed := sparse.Map(m.Rows(), func(int, sparse.Vector[V]) []sparse.Arc[V] { return nil })

	return Multiply(seed, m,
		func(source int, acc []sparse.Arc[V], row sparse.Vector[V]) sparse.Vector[[]sparse.Arc[V]] {
			return sparse.Map(row, func(_ int, y V) []sparse.Arc[V] {
				return concat([]sparse.Arc[V]{{Index: source, Value: y}}, acc)
			})
		},
		func(parts []sparse.Vector[[]sparse.Arc[V]]) sparse.Vector[[]sparse.Arc[V]] {
			return sparse.UnionAll(parts, concat[sparse.Arc[V]])
		},
	)
}

// Transpose flips m: the value at (i, j) moves to (j, i). cols is the
// column count of m and becomes the row count of the result; every row
// 0..cols-1 is stored explicitly, empty when the column had no arcs, so the
// transpose's row set is the full vertex set. Column indices of m must lie
// below cols; stray arcs beyond it would surface as extra rows.
// Complexity: O(cols + rows(m)) plus the total number of stored arcs.
func Transpose[V any](m sparse.Matrix[V], cols int) (sparse.Matrix[V], error) {
	if cols < 0 {
		return sparse.Matrix[V]{}, ErrNegativeColumns
	}

	// Predecessor lists arrive sorted by source, which is exactly the
	// column order the transposed rows need.
	rows := sparse.Map(Predecessors(m), func(_ int, arcs []sparse.Arc[V]) sparse.Vector[V] {
		return sparse.MustNew(arcs...)
	})
	blank := sparse.Full(cols, sparse.Vector[V]{})

	return sparse.NewMatrix(sparse.Union(rows, blank)), nil
}
