// Package matvec implements one generalized sparse vector-matrix
// multiplication and the graph operations that fall out of it by choosing
// how matches are multiplied and how partial results are aggregated.
//
// What
//
//	Multiply(v, m, scalarMul, aggregate) intersects v's indices with m's
//	row indices, applies scalarMul to every match, and reduces the partial
//	results with aggregate. Each specialization below is one pair of
//	closures handed to Multiply:
//
//   - Successors: one-step successor set of the vertices in v.
//   - Product / ProductNonzero: semiring vector-matrix product; the Nonzero
//     variant short-circuits and drops explicit zero entries.
//   - SuccessorCounts: per-vertex count of in-edges from v.
//   - HasSuccessors: does any vertex of v have any successor at all.
//   - ExtendPath: grow one path per reached vertex (leftmost source wins).
//   - ExtendPaths: grow every path to every reached vertex, in source order.
//   - Predecessors / Transpose: per-vertex predecessor arcs; wrapping them
//     as rows yields the transposed matrix.
//   - ExtendForests: grow reachability trees rooted at each reached vertex.
//
// Why
//
//   - Rows whose index is absent from v never contribute, so cost follows
//     the stored arcs: O(len(v) + rows(m)) merge plus the touched rows.
//   - One audited multiplication frame instead of eight ad-hoc traversals.
//
// Conventions
//
//	Path and Forest values attached at an index describe how that index was
//	reached: a path stored at vertex x ends with x, a tree stored at x is
//	rooted at x. Seed vectors must honor the same shape (see the examples).
//	Where several sources hit the same vertex, concatenating unions keep
//	left-to-right source order; left-biased unions keep the smallest source.
//
// Errors
//
//   - ErrNegativeColumns if Transpose is given a negative column count.
//
// Everything here is pure: identical inputs give identical outputs, and no
// argument is ever mutated.
package matvec
