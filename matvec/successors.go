// This file implements the successor-set family: plain successors,
// in-multiplicity counts, and the existence test.
package matvec

import "github.com/katalvlaran/sparsegraph/sparse"

// Successors returns the one-step successor set of the vertices stored in
// v: the union of m's rows at v's indices. Values come from the matrix rows
// with the leftmost source winning collisions; v's own values are ignored,
// so any frontier representation works.
// Complexity: O(len(v) + rows(m)) plus the size of the touched rows.
func Successors[V, W any](v sparse.Vector[V], m sparse.Matrix[W]) sparse.Vector[W] {
	return Multiply(v, m,
		func(_ int, _ V, row sparse.Vector[W]) sparse.Vector[W] { return row },
		func(parts []sparse.Vector[W]) sparse.Vector[W] {
			return sparse.UnionAll(parts, keepLeft[W])
		},
	)
}

// SuccessorCounts returns, per reached vertex, how many vertices of v have
// an arc to it. Every arc counts exactly once regardless of the values on
// either side.
// Complexity: O(len(v) + rows(m)) plus the size of the touched rows.
func SuccessorCounts[V, W any](v sparse.Vector[V], m sparse.Matrix[W]) sparse.Vector[int] {
	return Multiply(v, m,
		func(_ int, _ V, row sparse.Vector[W]) sparse.Vector[int] {
			return sparse.Map(row, func(int, W) int { return 1 })
		},
		func(parts []sparse.Vector[int]) sparse.Vector[int] {
			return sparse.UnionAll(parts, func(a, b int) int { return a + b })
		},
	)
}

// HasSuccessors reports whether any vertex of v has at least one successor
// in m. It inspects only row emptiness, never values.
// Complexity: O(len(v) + rows(m))
func HasSuccessors[V, W any](v sparse.Vector[V], m sparse.Matrix[W]) bool {
	return Multiply(v, m,
		func(_ int, _ V, row sparse.Vector[W]) bool { return !row.IsEmpty() },
		func(parts []bool) bool {
			for _, ok := range parts {
				if ok {
					return true
				}
			}

			return false
		},
	)
}
