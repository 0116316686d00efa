// Package disjoint extracts pairwise vertex-disjoint paths from
// reachability forests by backtracking over a shared visited set.
//
// What
//
//	Paths(forest, order) walks the forest root by root. For each root it
//	tries to assemble one root-terminated path from unclaimed vertices,
//	descending first-child-first and falling back to siblings when a
//	subtree fails. Every vertex inspected while unvisited is claimed
//	immediately and permanently for the whole extraction, even when the
//	attempt that claimed it later fails.
//
// Why
//
//   - Fed with the final layer forests of a breadth-first walk, the result
//     is a maximal set of vertex-disjoint shortest paths, the augmenting
//     structure used by phase-based matching and flow algorithms.
//   - The permanent claim makes the search single-pass: each vertex is
//     inspected at most once, so extraction is linear in forest nodes.
//
// Guarantees and limits
//
//	Returned paths never share a vertex, and no further path could be added
//	under the claim-as-you-go rule. The set is maximal, not maximum: a
//	vertex burned by an earlier failed attempt stays unavailable, so a
//	different visit order could yield more paths. Roots are attempted in
//	forest order and failures are dropped silently.
//
// The visited set is sized by the caller-supplied vertex count, lives for
// exactly one Paths call, and is never shared; all forest vertices must lie
// in [0, order).
//
// Errors
//
//   - ErrNegativeOrder if the vertex count is below zero.
package disjoint
