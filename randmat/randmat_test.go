package randmat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegraph/randmat"
)

// TestValidate_Errors covers the shared parameter checks of every generator.
func TestValidate_Errors(t *testing.T) {
	values := randmat.IntRange(0, 9)

	_, err := randmat.Vector(-1, 0.5, values, randmat.WithSeed(1))
	assert.ErrorIs(t, err, randmat.ErrBadSize)

	_, err = randmat.Vector(4, -0.1, values, randmat.WithSeed(1))
	assert.ErrorIs(t, err, randmat.ErrBadDensity)
	_, err = randmat.Vector(4, 1.1, values, randmat.WithSeed(1))
	assert.ErrorIs(t, err, randmat.ErrBadDensity)

	_, err = randmat.Vector(4, 0.5, (func(*rand.Rand) int)(nil), randmat.WithSeed(1))
	assert.ErrorIs(t, err, randmat.ErrNilValues)

	_, err = randmat.Vector(4, 0.5, values)
	assert.ErrorIs(t, err, randmat.ErrNeedRandSource, "density > 0 needs a source")

	_, err = randmat.Square(-2, 0.5, values, randmat.WithSeed(1))
	assert.ErrorIs(t, err, randmat.ErrBadSize)
}

// TestVector_DensityEdges covers the deterministic 0 and 1 densities.
func TestVector_DensityEdges(t *testing.T) {
	v, err := randmat.Vector(5, 0, randmat.IntRange(1, 1))
	require.NoError(t, err, "density zero draws nothing and needs no source")
	assert.True(t, v.IsEmpty())

	v, err = randmat.Vector(5, 1, randmat.IntRange(1, 1), randmat.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Indices(), "density one stores every index")
	assert.Equal(t, []int{1, 1, 1, 1, 1}, v.Values())
}

// TestVector_Deterministic pins seed-for-seed reproducibility.
func TestVector_Deterministic(t *testing.T) {
	first, err := randmat.Vector(50, 0.4, randmat.IntRange(0, 99), randmat.WithSeed(42))
	require.NoError(t, err)
	second, err := randmat.Vector(50, 0.4, randmat.IntRange(0, 99), randmat.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, first.Arcs(), second.Arcs())

	other, err := randmat.Vector(50, 0.4, randmat.IntRange(0, 99), randmat.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, first.Arcs(), other.Arcs(), "a different seed should diverge")
}

// TestSquare_AllRowsStored pins the full-vertex-set contract reach relies on.
func TestSquare_AllRowsStored(t *testing.T) {
	m, err := randmat.Square(8, 0.1, randmat.Const(true), randmat.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, m.Rows().Indices(), "every row is stored, empty ones included")
}

// TestShapes checks the admissible-cell contract of each matrix shape.
func TestShapes(t *testing.T) {
	const n = 12
	values := randmat.Const(1)

	diag, err := randmat.Diagonal(n, 1, values, randmat.WithSeed(1))
	require.NoError(t, err)
	for _, row := range diag.Rows().Arcs() {
		assert.Equal(t, []int{row.Index}, row.Value.Indices(), "diagonal admits only (i, i)")
	}

	tri, err := randmat.Triangular(n, 0.8, values, randmat.WithSeed(2))
	require.NoError(t, err)
	for _, row := range tri.Rows().Arcs() {
		for _, col := range row.Value.Indices() {
			assert.GreaterOrEqual(t, col, row.Index, "triangular admits j >= i only")
		}
	}

	strict, err := randmat.StrictTriangular(n, 0.8, values, randmat.WithSeed(3))
	require.NoError(t, err)
	for _, row := range strict.Rows().Arcs() {
		for _, col := range row.Value.Indices() {
			assert.Greater(t, col, row.Index, "strict triangular admits j > i only")
		}
	}
}

// TestZeroSize pins the n = 0 edge: empty structures, no error.
func TestZeroSize(t *testing.T) {
	v, err := randmat.Vector(0, 0.5, randmat.IntRange(0, 1), randmat.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())

	m, err := randmat.Square(0, 0.5, randmat.IntRange(0, 1), randmat.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}

// TestWithRand sequences two generations off one explicit stream.
func TestWithRand(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	first, err := randmat.Vector(20, 0.5, randmat.IntRange(0, 9), randmat.WithRand(rng))
	require.NoError(t, err)
	second, err := randmat.Vector(20, 0.5, randmat.IntRange(0, 9), randmat.WithRand(rng))
	require.NoError(t, err)
	assert.NotEqual(t, first.Arcs(), second.Arcs(), "one stream advances across calls")

	assert.Panics(t, func() { randmat.WithRand(nil) })
}

// TestRanges covers the value helpers' bounds and panics.
func TestRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	ints := randmat.IntRange(-3, 3)
	for i := 0; i < 100; i++ {
		got := ints(rng)
		assert.GreaterOrEqual(t, got, -3)
		assert.LessOrEqual(t, got, 3)
	}

	floats := randmat.FloatRange(0.5, 2.5)
	for i := 0; i < 100; i++ {
		got := floats(rng)
		assert.GreaterOrEqual(t, got, 0.5)
		assert.Less(t, got, 2.5)
	}

	assert.Panics(t, func() { randmat.IntRange(5, 4) })
	assert.Panics(t, func() { randmat.FloatRange(2.0, 1.0) })
	assert.Equal(t, 7.5, randmat.FloatRange(7.5, 7.5)(rng), "degenerate range is the constant")
}
