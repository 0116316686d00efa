// Package reach layers sparse frontiers breadth-first across a sequence of
// graphs and extracts the nearest frontier hitting a target set.
package reach

import "github.com/katalvlaran/sparsegraph/sparse"

// Step advances a frontier one hop through a graph. The frontier's values
// carry whatever the walk accumulates (plain markers, paths, forests); the
// implementation decides how they grow. Steps must be pure: the walk calls
// them repeatedly and relies on identical inputs giving identical outputs.
type Step[F, W any] func(frontier sparse.Vector[F], g sparse.Matrix[W]) sparse.Vector[F]

// walk encapsulates the mutable state of one layering run.
type walk[F, W any] struct {
	step      Step[F, W]
	graphs    []sparse.Matrix[W]
	vertexSet sparse.Vector[struct{}] // union of the graphs' row index sets
	seen      sparse.Vector[struct{}] // every index placed in any layer so far
	frontier  sparse.Vector[F]
	done      bool
}

// newWalk seeds a run at start. An empty graph sequence or a nil step
// exhausts the walk immediately, leaving start as its only layer.
func newWalk[F, W any](step Step[F, W], start sparse.Vector[F], graphs []sparse.Matrix[W]) *walk[F, W] {
	w := &walk[F, W]{
		step:     step,
		graphs:   graphs,
		seen:     asSet(start),
		frontier: start,
		done:     step == nil || len(graphs) == 0,
	}
	if !w.done {
		sets := make([]sparse.Vector[struct{}], len(graphs))
		for i, g := range graphs {
			sets[i] = asSet(g.Rows())
		}
		w.vertexSet = sparse.UnionAll(sets, func(left, _ struct{}) struct{} { return left })
	}

	return w
}

// next computes the following layer; ok is false once the walk is exhausted.
func (w *walk[F, W]) next() (sparse.Vector[F], bool) {
	if w.done {
		return sparse.Vector[F]{}, false
	}

	// 1) Fold the step through every graph, left to right.
	candidate := w.frontier
	for _, g := range w.graphs {
		candidate = w.step(candidate, g)
	}

	// 2) Drop everything already reached, keep only known vertices.
	candidate = sparse.Intersect(sparse.Difference(candidate, w.seen), w.vertexSet)
	if candidate.IsEmpty() {
		w.done = true
		return sparse.Vector[F]{}, false
	}

	// 3) Record the layer in the history and move the frontier onto it.
	w.seen = sparse.Union(w.seen, asSet(candidate))
	w.frontier = candidate

	return candidate, true
}

// asSet projects a vector onto its bare index set.
func asSet[V any](v sparse.Vector[V]) sparse.Vector[struct{}] {
	return sparse.Map(v, func(int, V) struct{} { return struct{}{} })
}

// Layers runs a full breadth-first layering and returns one frontier per
// distance, starting with start itself at distance 0. The sequence ends
// just before the first empty frontier, so it always terminates, cycles or
// not: each layer consumes fresh vertices from the graphs' finite row set.
// Complexity: O(layers) step folds, each linear in the arcs it touches.
func Layers[F, W any](step Step[F, W], start sparse.Vector[F], graphs []sparse.Matrix[W]) []sparse.Vector[F] {
	w := newWalk(step, start, graphs)
	layers := []sparse.Vector[F]{start}
	for layer, ok := w.next(); ok; layer, ok = w.next() {
		layers = append(layers, layer)
	}

	return layers
}

// Shortest scans the layering in increasing distance order and returns the
// first layer's restriction to target's indices that is non-empty, carrying
// the frontier values of the hit vertices. Distance 0 counts: a start
// already intersecting target is returned restricted to it, even when
// graphs is empty. The empty vector means target was never reached. Layers
// past the first hit are never computed.
func Shortest[F, W, T any](
	step Step[F, W],
	start sparse.Vector[F],
	target sparse.Vector[T],
	graphs []sparse.Matrix[W],
) sparse.Vector[F] {
	w := newWalk(step, start, graphs)
	if hit := sparse.Intersect(start, target); !hit.IsEmpty() {
		return hit
	}
	for layer, ok := w.next(); ok; layer, ok = w.next() {
		if hit := sparse.Intersect(layer, target); !hit.IsEmpty() {
			return hit
		}
	}

	return sparse.Vector[F]{}
}
