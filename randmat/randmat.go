// Package randmat builds seeded random sparse vectors and adjacency
// matrices for tests and benchmarks.
//
// This file implements the generators themselves.
package randmat

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sparsegraph/sparse"
)

// validate applies the shared parameter checks in a fixed order: size,
// density, values, then source. It returns the rng to draw from, nil only
// when density is zero and nothing will ever be drawn.
func validate[V any](op string, n int, density float64, values func(*rand.Rand) V, cfg config) (*rand.Rand, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", op, n, ErrBadSize)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%s: density=%g: %w", op, density, ErrBadDensity)
	}
	if values == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilValues)
	}
	if cfg.rng == nil && density > 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNeedRandSource)
	}

	return cfg.rng, nil
}

// Vector generates a sparse vector over indices 0..n-1: each index stores
// an arc with probability density, valued by one values draw. Trials run in
// ascending index order, so a fixed seed fixes the result.
func Vector[V any](n int, density float64, values func(*rand.Rand) V, opts ...Option) (sparse.Vector[V], error) {
	rng, err := validate("Vector", n, density, values, newConfig(opts...))
	if err != nil {
		return sparse.Vector[V]{}, err
	}
	arcs := make([]sparse.Arc[V], 0, n)
	for i := 0; i < n; i++ {
		if rng != nil && rng.Float64() < density {
			arcs = append(arcs, sparse.Arc[V]{Index: i, Value: values(rng)})
		}
	}

	return sparse.MustNew(arcs...), nil
}

// Square generates an adjacency matrix over vertices 0..n-1 where every
// ordered pair (i, j), self-loops included, holds an arc with probability
// density.
func Square[V any](n int, density float64, values func(*rand.Rand) V, opts ...Option) (sparse.Matrix[V], error) {
	return generate("Square", n, density, values, newConfig(opts...),
		func(i, n int) (int, int) { return 0, n })
}

// Diagonal generates a matrix whose only admissible cells are (i, i).
func Diagonal[V any](n int, density float64, values func(*rand.Rand) V, opts ...Option) (sparse.Matrix[V], error) {
	return generate("Diagonal", n, density, values, newConfig(opts...),
		func(i, _ int) (int, int) { return i, i + 1 })
}

// Triangular generates a matrix admitting cells on or above the main
// diagonal (j >= i): arcs never point to a smaller vertex.
func Triangular[V any](n int, density float64, values func(*rand.Rand) V, opts ...Option) (sparse.Matrix[V], error) {
	return generate("Triangular", n, density, values, newConfig(opts...),
		func(i, n int) (int, int) { return i, n })
}

// StrictTriangular generates a matrix admitting only cells strictly above
// the main diagonal (j > i): no self-loops, arcs only to larger vertices,
// so every generated graph is acyclic.
func StrictTriangular[V any](n int, density float64, values func(*rand.Rand) V, opts ...Option) (sparse.Matrix[V], error) {
	return generate("StrictTriangular", n, density, values, newConfig(opts...),
		func(i, n int) (int, int) { return i + 1, n })
}

// generate runs Bernoulli trials over the admissible cells of each row,
// with span(i, n) giving row i's half-open column range. Rows ascend, and
// columns ascend within a row, so outcomes are deterministic for a fixed
// seed. All n rows are stored explicitly, empty ones included, keeping the
// row index set equal to the full vertex set.
// Complexity: O(admissible cells); O(n^2) for Square.
func generate[V any](
	op string,
	n int,
	density float64,
	values func(*rand.Rand) V,
	cfg config,
	span func(i, n int) (lo, hi int),
) (sparse.Matrix[V], error) {
	rng, err := validate(op, n, density, values, cfg)
	if err != nil {
		return sparse.Matrix[V]{}, err
	}
	rows := make([]sparse.Arc[sparse.Vector[V]], n)
	for i := 0; i < n; i++ {
		lo, hi := span(i, n)
		var arcs []sparse.Arc[V]
		for j := lo; j < hi; j++ {
			if rng != nil && rng.Float64() < density {
				arcs = append(arcs, sparse.Arc[V]{Index: j, Value: values(rng)})
			}
		}
		rows[i] = sparse.Arc[sparse.Vector[V]]{Index: i, Value: sparse.MustNew(arcs...)}
	}

	return sparse.NewMatrix(sparse.MustNew(rows...)), nil
}
