// This file implements forest prolongation, the step that records every
// route of a walk as shared-suffix trees.
package matvec

import "github.com/katalvlaran/sparsegraph/sparse"

// ExtendForests advances every stored forest by one arc: the forest at
// source i becomes the children of a new tree rooted at each successor j,
// preserving the "trees at x are rooted at x" shape. Where several sources
// reach the same vertex, their trees are concatenated in ascending source
// order, one tree per source. Seed a walk from vertex s with the
// single-tree forest {Tree{Root: s}}. Row values are ignored.
//
// Unlike ExtendPaths, routes sharing a prefix share their representation:
// each step adds one node per (source, successor) arc, so k steps cost
// O(arcs traversed), not O(paths * length).
func ExtendForests[W any](v sparse.Vector[Forest], m sparse.Matrix[W]) sparse.Vector[Forest] {
	return Multiply(v, m,
		func(_ int, f Forest, row sparse.Vector[W]) sparse.Vector[Forest] {
			return sparse.Map(row, func(next int, _ W) Forest {
				return Forest{Tree{Root: next, Children: f}}
			})
		},
		func(parts []sparse.Vector[Forest]) sparse.Vector[Forest] {
			return sparse.UnionAll(parts, func(left, right Forest) Forest {
				return concat(left, right)
			})
		},
	)
}
