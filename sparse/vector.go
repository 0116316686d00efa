// Package sparse provides immutable sparse vectors and matrices and the
// merge-based set algebra over them.
//
// This file declares Arc and Vector, their sentinel errors, constructors,
// and read accessors.
package sparse

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for sparse container construction.
var (
	// ErrNegativeIndex indicates a constructor received an index below zero.
	ErrNegativeIndex = errors.New("sparse: negative index")

	// ErrIndexOrder indicates constructor arcs were not strictly increasing by index.
	ErrIndexOrder = errors.New("sparse: indices not strictly increasing")
)

// Arc is a single stored entry of a sparse Vector: the value found at Index.
type Arc[V any] struct {
	// Index is the non-negative position of this entry.
	Index int

	// Value is the payload stored at Index.
	Value V
}

// Vector is an immutable sparse vector: a sequence of arcs strictly
// increasing by index. An index absent from the sequence stores nothing,
// which every operation in this module treats as the vacant state.
//
// The zero value is the empty vector and is ready to use.
type Vector[V any] struct {
	arcs []Arc[V] // sorted by Index, strictly increasing
}

// New builds a Vector from the given arcs. Indices must be non-negative and
// strictly increasing; otherwise New reports ErrNegativeIndex or
// ErrIndexOrder. The input is copied, so the caller may reuse its slice.
// Complexity: O(n)
func New[V any](arcs ...Arc[V]) (Vector[V], error) {
	if len(arcs) == 0 {
		return Vector[V]{}, nil
	}
	if arcs[0].Index < 0 {
		return Vector[V]{}, fmt.Errorf("%w: %d", ErrNegativeIndex, arcs[0].Index)
	}
	for i := 1; i < len(arcs); i++ {
		if arcs[i].Index <= arcs[i-1].Index {
			return Vector[V]{}, fmt.Errorf("%w: index %d after %d", ErrIndexOrder, arcs[i].Index, arcs[i-1].Index)
		}
	}
	out := make([]Arc[V], len(arcs))
	copy(out, arcs)

	return Vector[V]{arcs: out}, nil
}

// MustNew is New for arcs known to be valid; it panics on error.
// Use it for literals whose order is evident, never on untrusted input.
func MustNew[V any](arcs ...Arc[V]) Vector[V] {
	v, err := New(arcs...)
	if err != nil {
		panic(err)
	}

	return v
}

// FromMap builds a Vector from a map of index to value. Keys must be
// non-negative; otherwise FromMap reports ErrNegativeIndex.
// Complexity: O(n log n) for the key sort.
func FromMap[V any](entries map[int]V) (Vector[V], error) {
	if len(entries) == 0 {
		return Vector[V]{}, nil
	}
	indices := make([]int, 0, len(entries))
	for index := range entries {
		if index < 0 {
			return Vector[V]{}, fmt.Errorf("%w: %d", ErrNegativeIndex, index)
		}
		indices = append(indices, index)
	}
	sort.Ints(indices)
	arcs := make([]Arc[V], len(indices))
	for i, index := range indices {
		arcs[i] = Arc[V]{Index: index, Value: entries[index]}
	}

	return Vector[V]{arcs: arcs}, nil
}

// Full builds the dense vector over indices 0..n-1, storing value at each.
// Sizes n <= 0 yield the empty vector.
// Complexity: O(n)
func Full[V any](n int, value V) Vector[V] {
	if n <= 0 {
		return Vector[V]{}
	}
	arcs := make([]Arc[V], n)
	for i := range arcs {
		arcs[i] = Arc[V]{Index: i, Value: value}
	}

	return Vector[V]{arcs: arcs}
}

// fromSorted adopts arcs that are already strictly increasing by index.
// Callers own the invariant; the slice is not copied.
func fromSorted[V any](arcs []Arc[V]) Vector[V] {
	if len(arcs) == 0 {
		return Vector[V]{}
	}

	return Vector[V]{arcs: arcs}
}

// Len reports the number of stored arcs.
func (v Vector[V]) Len() int { return len(v.arcs) }

// IsEmpty reports whether the vector stores no arcs.
func (v Vector[V]) IsEmpty() bool { return len(v.arcs) == 0 }

// At returns the value stored at index and whether it is present.
// Complexity: O(log n)
func (v Vector[V]) At(index int) (V, bool) {
	i := sort.Search(len(v.arcs), func(k int) bool { return v.arcs[k].Index >= index })
	if i < len(v.arcs) && v.arcs[i].Index == index {
		return v.arcs[i].Value, true
	}
	var zero V

	return zero, false
}

// Arcs returns a copy of the stored arcs in ascending index order.
func (v Vector[V]) Arcs() []Arc[V] {
	if len(v.arcs) == 0 {
		return nil
	}
	out := make([]Arc[V], len(v.arcs))
	copy(out, v.arcs)

	return out
}

// Indices returns the stored indices in ascending order.
func (v Vector[V]) Indices() []int {
	if len(v.arcs) == 0 {
		return nil
	}
	out := make([]int, len(v.arcs))
	for i, a := range v.arcs {
		out[i] = a.Index
	}

	return out
}

// Values returns the stored values in ascending index order.
func (v Vector[V]) Values() []V {
	if len(v.arcs) == 0 {
		return nil
	}
	out := make([]V, len(v.arcs))
	for i, a := range v.arcs {
		out[i] = a.Value
	}

	return out
}

// String renders the vector as "[(i | v) (i | v) ...]", or "[]" when empty.
func (v Vector[V]) String() string {
	if len(v.arcs) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, a := range v.arcs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d | %v)", a.Index, a.Value)
	}
	b.WriteByte(']')

	return b.String()
}
