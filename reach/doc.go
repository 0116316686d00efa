// Package reach implements breadth-first layering of sparse frontiers over
// a sequence of graphs, and shortest-reach target extraction on top of it.
//
// What
//
//   - Step: any frontier-advancing function, typically one of the matvec
//     prolongations (Successors, ExtendPath, ExtendForests, ...).
//   - Layers(step, start, graphs): the per-distance frontier sequence.
//     Layer 0 is start itself; each later layer folds step through every
//     graph left to right, drops vertices reached in any earlier layer,
//     and keeps only vertices the graphs know about.
//   - Shortest(step, start, target, graphs): the first layer restricted to
//     target that is non-empty, scanning outward from layer 0; the empty
//     vector when target is never reached.
//
// Why
//
//   - A vertex appears in exactly one layer, the one matching its distance
//     from start, which is the precondition the disjoint-path extractor
//     needs from its input forests.
//   - The graph sequence generalizes plain walks: alternating matrices
//     express layered bipartite rounds with one call.
//
// Termination
//
//	Every computed layer must claim at least one vertex never seen before,
//	drawn from the finite row set of the graphs, so any walk ends after at
//	most that many layers even on cyclic graphs.
//
// Edge cases
//
//   - Empty graphs sequence: the layering is exactly [start]; Shortest
//     still reports a hit when start already intersects target.
//   - Nil step: treated like an empty graph sequence.
//   - Empty start: the layering is [start] and Shortest finds nothing.
//
// Complexity (per layer)
//
//	One step fold across the graphs plus two merges against the seen set
//	and the vertex set, all linear in the arcs touched.
package reach
