// This file implements path prolongation: one step of growing recorded
// routes along the matrix arcs.
package matvec

import "github.com/katalvlaran/sparsegraph/sparse"

// ExtendPath advances every stored path by one arc, keeping a single path
// per reached vertex. The path stored at source i is extended with each
// successor j and lands at index j, so the "path at x ends with x" shape is
// preserved. When several sources reach the same vertex, the leftmost
// (smallest) source's path wins. Seed a walk from vertex s with the
// one-element path {s}. Row values are ignored.
// Complexity: O(len(v) + rows(m)) plus O(path length) per touched arc.
func ExtendPath[W any](v sparse.Vector[Path], m sparse.Matrix[W]) sparse.Vector[Path] {
	return Multiply(v, m,
		func(_ int, p Path, row sparse.Vector[W]) sparse.Vector[Path] {
			return sparse.Map(row, func(next int, _ W) Path { return p.Append(next) })
		},
		func(parts []sparse.Vector[Path]) sparse.Vector[Path] {
			return sparse.UnionAll(parts, keepLeft[Path])
		},
	)
}

// ExtendPaths advances every path of every stored path list by one arc,
// keeping all of them: where several sources reach the same vertex, their
// lists are concatenated in ascending source order. The lists can grow
// quadratically on dense graphs; prefer ExtendPath or ExtendForests when
// one route per vertex or a shared-suffix encoding is enough.
// Complexity: O(len(v) + rows(m)) plus O(paths * path length) per arc.
func ExtendPaths[W any](v sparse.Vector[[]Path], m sparse.Matrix[W]) sparse.Vector[[]Path] {
	return Multiply(v, m,
		func(_ int, ps []Path, row sparse.Vector[W]) sparse.Vector[[]Path] {
			return sparse.Map(row, func(next int, _ W) []Path {
				out := make([]Path, len(ps))
				for k, p := range ps {
					out[k] = p.Append(next)
				}

				return out
			})
		},
		func(parts []sparse.Vector[[]Path]) sparse.Vector[[]Path] {
			return sparse.UnionAll(parts, concat[Path])
		},
	)
}
