// Package sparsegraph is your in-memory playground for expressing graph
// algorithms as algebra over sparse vectors and matrices — from merge-based
// set operations to reachability layers and vertex-disjoint paths.
//
// 🚀 What is sparsegraph?
//
//	A small, generic, purely functional toolkit that brings together:
//		• Sparse primitives: immutable index/value vectors & row matrices
//		• Set algebra: union, intersection, difference via one merge engine
//		• Vector-matrix products: one Multiply frame, many interpretations
//		• Semirings: plug arithmetic, boolean or tropical number systems
//		• Reachability: BFS-style layering over one graph or a sequence
//		• Paths: shortest-path fronts and vertex-disjoint path extraction
//		• Random inputs: seeded sparse vector & matrix generators
//
// ✨ Why choose sparsegraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, deterministic results
//   - Pure Go – no cgo, generics end to end
//   - Composable – every algorithm is a handful of algebra calls
//
// Under the hood, everything is organized under six subpackages:
//
//	sparse/   — Arc, Vector, Matrix types & the merge-based set algebra
//	semiring/ — Semiring interface + arithmetic, boolean, min-plus instances
//	matvec/   — Multiply and its graph interpretations (paths, counts, trees)
//	reach/    — breadth-first layering & shortest reachable fronts
//	disjoint/ — vertex-disjoint path extraction from path forests
//	randmat/  — seeded random vectors & adjacency matrices for tests/benchmarks
//
// Quick ASCII example:
//
//	    0 ──▶ 1
//	    │     │
//	    ▼     ▼
//	    2 ──▶ 3
//
//	is the matrix {0:[1 2], 1:[3], 2:[3]}; multiplying the frontier {0}
//	by it yields {1 2}, and once more yields {3}.
//
// Dive into the package docs for full examples and the algebra behind each
// operation.
//
//	go get github.com/katalvlaran/sparsegraph
package sparsegraph
