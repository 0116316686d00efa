// Package disjoint extracts maximal sets of vertex-disjoint paths from
// reachability forests.
package disjoint

import (
	"errors"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/sparsegraph/matvec"
)

// ErrNegativeOrder indicates a vertex count below zero.
var ErrNegativeOrder = errors.New("disjoint: negative vertex count")

// visitedSet tracks claimed vertices for one extraction. The zero-based
// bitset gives O(1) test and mark; copies share the underlying bits, so the
// recursion can pass it by value.
type visitedSet struct {
	bits bits.Bits
}

func newVisitedSet(order int) visitedSet {
	return visitedSet{bits: bits.New(order)}
}

func (s visitedSet) has(v int) bool { return s.bits.Bit(v) == 1 }

func (s visitedSet) mark(v int) { s.bits.SetBit(v, 1) }

// Paths walks forest root by root and returns the paths that could be
// assembled from vertices no earlier path or failed attempt had claimed,
// in root order, each terminating at its root. Roots that cannot complete
// a path are dropped silently.
//
// order is the vertex count bounding every Root in the forest; vertices
// outside [0, order) violate the contract and are not detected. The visited
// set it sizes lives only for this call.
// Complexity: O(order) for the visited set plus O(1) per forest node.
func Paths(forest matvec.Forest, order int) ([]matvec.Path, error) {
	if order < 0 {
		return nil, ErrNegativeOrder
	}
	seen := newVisitedSet(order)
	paths := make([]matvec.Path, 0, len(forest))
	for _, t := range forest {
		// Each root gets an independent attempt against the shared set.
		if p, ok := chop(seen, matvec.Forest{t}); ok {
			paths = append(paths, p)
		}
	}

	return paths, nil
}

// chop tries to assemble one path from f against seen, first tree first.
// A tree whose root is already claimed is skipped without consuming it; an
// unclaimed root is marked permanently, then a suffix is assembled from its
// children (the empty suffix for a leaf) and the root appended behind it.
// When the children cannot complete a path the claim stands and the search
// falls back to the remaining siblings.
func chop(seen visitedSet, f matvec.Forest) (matvec.Path, bool) {
	if len(f) == 0 {
		return nil, false
	}
	head, siblings := f[0], f[1:]
	if seen.has(head.Root) {
		return chop(seen, siblings)
	}
	seen.mark(head.Root)
	if len(head.Children) == 0 {
		return matvec.Path{head.Root}, true
	}
	if suffix, ok := chop(seen, head.Children); ok {
		return suffix.Append(head.Root), true
	}

	return chop(seen, siblings)
}
