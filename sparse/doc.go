// Package sparse implements immutable sparse vectors and matrices keyed by
// integer indices, plus the merge-based set algebra the rest of the module
// builds graph algorithms from.
//
// What
//
//   - Arc: one (index, value) entry of a sparse vector.
//   - Vector: an immutable arc sequence, strictly increasing by index.
//   - Matrix: an immutable sparse vector of row vectors (index = row).
//   - One merge engine drives every binary set operation:
//   - UnionWith / Union / UnionAll (indices from either side)
//   - IntersectWith / Intersect (indices present on both sides)
//   - Difference (left indices minus right indices)
//   - Map and Filter transform one vector without disturbing index order.
//
// Why
//
//   - Sparse adjacency rows keep graph algorithms linear in stored arcs,
//     not quadratic in the vertex count.
//   - Merging two sorted arc sequences visits each arc once, so every
//     binary set operation costs O(len(v) + len(w)).
//   - Immutability lets frontiers, layers, and path sets share structure
//     freely across algorithm steps.
//
// Determinism
//
//	Arcs are stored sorted by index and every operation emits arcs in
//	ascending index order, so results are fully reproducible.
//
// Complexity (n, m = arc counts of the operands)
//
//   - New / Full: O(n); FromMap: O(n log n) for the key sort.
//   - At: O(log n) binary search.
//   - Union / Intersect / Difference families: O(n + m).
//   - Map / Filter: O(n).
//
// Errors
//
//   - ErrNegativeIndex if a constructor receives an index below zero.
//   - ErrIndexOrder if constructor arcs are not strictly increasing.
//
// Vectors are value types: the zero value is the empty vector, constructors
// copy their inputs, and accessors return copies, so no operation can alter
// a vector another computation already holds.
package sparse
