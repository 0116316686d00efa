package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsegraph/sparse"
)

// benchVector builds a vector with n arcs at indices offset, offset+stride, ...
func benchVector(n, offset, stride int) sparse.Vector[int] {
	arcs := make([]sparse.Arc[int], n)
	for i := range arcs {
		arcs[i] = sparse.Arc[int]{Index: offset + i*stride, Value: i}
	}

	return sparse.MustNew(arcs...)
}

// BenchmarkUnion measures the merge walk on two interleaved vectors.
func BenchmarkUnion(b *testing.B) {
	const n = 10000
	v := benchVector(n, 0, 2)
	w := benchVector(n, 1, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sparse.Union(v, w)
	}
}

// BenchmarkIntersect measures the merge walk on two half-overlapping vectors.
func BenchmarkIntersect(b *testing.B) {
	const n = 10000
	v := benchVector(n, 0, 2)
	w := benchVector(n, 0, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sparse.Intersect(v, w)
	}
}

// BenchmarkAt measures the binary-search lookup.
func BenchmarkAt(b *testing.B) {
	const n = 10000
	v := benchVector(n, 0, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.At((i * 7) % (2 * n))
	}
}
