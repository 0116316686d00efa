package matvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegraph/matvec"
	"github.com/katalvlaran/sparsegraph/randmat"
	"github.com/katalvlaran/sparsegraph/sparse"
)

// TestPredecessors collects incoming arcs per vertex in ascending source
// order.
func TestPredecessors(t *testing.T) {
	m, err := sparse.MatrixFromMap(map[int]map[int]int{
		0: {2: 10},
		1: {2: 11, 3: 12},
		4: {2: 13},
	})
	require.NoError(t, err)

	preds := matvec.Predecessors(m)
	assert.Equal(t, []int{2, 3}, preds.Indices(), "only vertices with incoming arcs appear")

	at2, ok := preds.At(2)
	require.True(t, ok)
	assert.Equal(t, []sparse.Arc[int]{
		{Index: 0, Value: 10},
		{Index: 1, Value: 11},
		{Index: 4, Value: 13},
	}, at2, "sources ascend")

	at3, ok := preds.At(3)
	require.True(t, ok)
	assert.Equal(t, []sparse.Arc[int]{{Index: 1, Value: 12}}, at3)
}

// TestTranspose moves every (i, j) value to (j, i) and stores all cols rows
// explicitly, empty ones included.
func TestTranspose(t *testing.T) {
	m, err := sparse.MatrixFromMap(map[int]map[int]int{
		0: {1: 10, 2: 20},
		2: {0: 30},
	})
	require.NoError(t, err)

	tr, err := matvec.Transpose(m, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, tr.Rows().Indices(), "every column becomes a stored row")

	got, ok := tr.At(1, 0)
	require.True(t, ok)
	assert.Equal(t, 10, got)
	got, ok = tr.At(0, 2)
	require.True(t, ok)
	assert.Equal(t, 30, got)

	_, ok = tr.At(0, 0)
	assert.False(t, ok)
}

// TestTranspose_Errors rejects a negative column count.
func TestTranspose_Errors(t *testing.T) {
	_, err := matvec.Transpose(sparse.Matrix[int]{}, -1)
	assert.ErrorIs(t, err, matvec.ErrNegativeColumns)
}

// TestTranspose_Involution checks transpose twice equals the original up to
// empty-row padding, over seeded random square matrices.
func TestTranspose_Involution(t *testing.T) {
	const n = 20
	for seed := int64(1); seed <= 4; seed++ {
		m, err := randmat.Square(n, 0.25, randmat.IntRange(1, 9), randmat.WithSeed(seed))
		require.NoError(t, err)

		tr, err := matvec.Transpose(m, n)
		require.NoError(t, err)
		back, err := matvec.Transpose(tr, n)
		require.NoError(t, err)

		// randmat stores all n rows explicitly, so arcs compare exactly.
		for i := 0; i < n; i++ {
			want, _ := m.Row(i)
			got, ok := back.Row(i)
			require.True(t, ok)
			assert.Equal(t, want.Arcs(), got.Arcs(), "seed %d row %d", seed, i)
		}
	}
}

// TestTranspose_NonSquare covers a wide matrix where cols exceeds every
// stored row index.
func TestTranspose_NonSquare(t *testing.T) {
	// 2 rows, 5 columns.
	m, err := sparse.MatrixFromMap(map[int]map[int]int{
		0: {4: 1},
		1: {0: 2},
	})
	require.NoError(t, err)

	tr, err := matvec.Transpose(m, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, tr.Rows().Indices())

	row2, ok := tr.Row(2)
	require.True(t, ok)
	assert.True(t, row2.IsEmpty(), "columns with no arcs become empty rows")
}
