// Package randmat generates seeded random sparse vectors and matrices in
// the shapes graph tests and benchmarks need.
//
// What
//
//   - Vector(n, density, values): each index 0..n-1 holds an arc with
//     probability density, valued by the values function.
//   - Square / Diagonal / Triangular / StrictTriangular: adjacency matrices
//     over vertices 0..n-1 whose admissible cells (all, i==j, j>=i, j>i)
//     each hold an arc with probability density.
//   - IntRange / FloatRange: ready-made value functions drawing uniformly
//     from an inclusive range.
//
// Every matrix stores all n rows explicitly, empty ones included, so the
// row index set of a generated graph is always the full vertex set.
//
// Determinism
//
//	There is no global or time-based randomness: density above zero
//	requires an explicit source via WithSeed or WithRand, and trials run
//	in a fixed order (rows ascending, columns ascending within a row), so
//	a fixed seed reproduces the exact same structure every run.
//
// Errors
//
//   - ErrBadSize for a negative size.
//   - ErrBadDensity for a density outside [0, 1].
//   - ErrNilValues for a nil values function.
//   - ErrNeedRandSource when density > 0 and no source was supplied.
//
// Option constructors panic on meaningless input (WithRand(nil)); the
// generators themselves never panic, they return sentinel errors.
package randmat
