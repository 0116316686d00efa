// This file declares Matrix, the row-wise sparse matrix used as the graph
// representation throughout the module.
package sparse

import (
	"fmt"
	"strings"
)

// Matrix is an immutable sparse matrix stored row-wise: a sparse vector
// whose arcs carry the stored rows, indexed by row number. A row absent
// from the outer vector and a stored empty row both read as empty, but only
// stored rows contribute their index to Rows.
//
// As a graph, row index is the source vertex and the row's arcs are its
// outgoing edges. The zero value is the empty matrix.
type Matrix[V any] struct {
	rows Vector[Vector[V]]
}

// NewMatrix wraps a vector of rows as a Matrix. The outer vector already
// carries the ordering invariant, so there is nothing to validate.
func NewMatrix[V any](rows Vector[Vector[V]]) Matrix[V] {
	return Matrix[V]{rows: rows}
}

// MatrixFromMap builds a Matrix from nested maps: row index to column index
// to value. A nil inner map stores an explicit empty row. Negative row or
// column indices are reported via ErrNegativeIndex.
func MatrixFromMap[V any](entries map[int]map[int]V) (Matrix[V], error) {
	if len(entries) == 0 {
		return Matrix[V]{}, nil
	}
	rows := make(map[int]Vector[V], len(entries))
	for rowIndex, cols := range entries {
		row, err := FromMap(cols)
		if err != nil {
			return Matrix[V]{}, fmt.Errorf("row %d: %w", rowIndex, err)
		}
		rows[rowIndex] = row
	}
	outer, err := FromMap(rows)
	if err != nil {
		return Matrix[V]{}, err
	}

	return Matrix[V]{rows: outer}, nil
}

// Rows returns the stored rows as a sparse vector indexed by row number.
func (m Matrix[V]) Rows() Vector[Vector[V]] { return m.rows }

// Row returns the row stored at index and whether the matrix stores it.
// Complexity: O(log rows)
func (m Matrix[V]) Row(index int) (Vector[V], bool) { return m.rows.At(index) }

// At returns the value at (row, col) and whether it is stored.
// Complexity: O(log rows + log cols)
func (m Matrix[V]) At(row, col int) (V, bool) {
	r, ok := m.rows.At(row)
	if !ok {
		var zero V
		return zero, false
	}

	return r.At(col)
}

// Len reports the number of stored rows.
func (m Matrix[V]) Len() int { return m.rows.Len() }

// IsEmpty reports whether the matrix stores no rows.
func (m Matrix[V]) IsEmpty() bool { return m.rows.IsEmpty() }

// String renders one "row | [arcs]" line per stored row, or "[]" when empty.
func (m Matrix[V]) String() string {
	if m.rows.IsEmpty() {
		return "[]"
	}
	var b strings.Builder
	for i, row := range m.rows.arcs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d | %s", row.Index, row.Value.String())
	}

	return b.String()
}
