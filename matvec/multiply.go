// This file implements the multiplication frame every operation in the
// package specializes.
package matvec

import "github.com/katalvlaran/sparsegraph/sparse"

// Multiply computes a generalized vector-matrix product in three moves:
//
//  1. intersect v's indices with m's row indices, pairing each shared
//     index i with v's value and m's row at i;
//  2. apply scalarMul to every (i, value, row) triple;
//  3. reduce the partial results with aggregate, in ascending order of i.
//
// Rows of m at indices absent from v never participate, so adding or
// removing such rows cannot change the result. aggregate receives the
// partials in index order and must return its identity for an empty or nil
// slice, which is the result whenever v and m share no index.
// Complexity: O(len(v) + rows(m)) for the intersection, plus the cost of
// scalarMul on each match and one aggregate call.
func Multiply[V, W, R any](
	v sparse.Vector[V],
	m sparse.Matrix[W],
	scalarMul func(index int, value V, row sparse.Vector[W]) R,
	aggregate func(parts []R) R,
) R {
	parts := sparse.IntersectWith(v, m.Rows(), scalarMul)

	return aggregate(parts.Values())
}
