// Package matvec provides the generalized sparse vector-matrix product and
// its graph-algorithm specializations.
//
// This file declares the path and forest value types threaded through the
// prolongation operations.
package matvec

// Path is an ordered vertex sequence that grows only at the tail. Stored in
// a sparse vector, the path at index x ends with x and records the route by
// which x was reached.
type Path []int

// Append returns a copy of p with v added at the tail; p is left untouched,
// so paths sharing a prefix never alias each other's growth.
// Complexity: O(len(p))
func (p Path) Append(v int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = v

	return out
}

// Tree is one node of a reachability forest: Root was reached, and each
// child tree describes one way of reaching the vertex the arc came from.
type Tree struct {
	// Root is the vertex this tree was reached at.
	Root int

	// Children are the trees the walk extended to reach Root, rooted one
	// step earlier. Empty for the vertices a walk started from.
	Children Forest
}

// Forest is an ordered sequence of trees. Stored in a sparse vector, every
// tree of the forest at index x has Root x.
type Forest []Tree

// keepLeft resolves a union collision by keeping the left value.
func keepLeft[V any](left, _ V) V { return left }

// concat joins two sequences in order without mutating either operand.
func concat[T any](left, right []T) []T {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}
	out := make([]T, 0, len(left)+len(right))
	out = append(out, left...)

	return append(out, right...)
}
