// This file implements the merge engine and the set algebra built on it:
// union, intersection, and difference families plus Map and Filter.
package sparse

// mergeRules selects what merge emits for each index class: present only on
// the left, only on the right, or on both sides. The tail rules handle the
// suffix that remains once the other operand is exhausted. A nil rule drops
// those arcs.
type mergeRules[V, W, R any] struct {
	onLeft    func(out []Arc[R], left Arc[V]) []Arc[R]
	onRight   func(out []Arc[R], right Arc[W]) []Arc[R]
	onBoth    func(out []Arc[R], left Arc[V], right Arc[W]) []Arc[R]
	leftTail  func(out []Arc[R], rest []Arc[V]) []Arc[R]
	rightTail func(out []Arc[R], rest []Arc[W]) []Arc[R]
}

// merge walks two arc sequences in lockstep by index and applies rules.
// Both inputs are strictly increasing, so the output is too: each rule
// appends at most one arc per input arc, always at a larger index.
// Complexity: O(len(v) + len(w))
func merge[V, W, R any](v Vector[V], w Vector[W], rules mergeRules[V, W, R]) Vector[R] {
	// 1) Size the output once: a rule keeps at most the arcs it sees.
	capHint := 0
	if rules.onLeft != nil || rules.leftTail != nil {
		capHint += len(v.arcs)
	}
	if rules.onRight != nil || rules.rightTail != nil {
		capHint += len(w.arcs)
	}
	if capHint == 0 {
		capHint = min(len(v.arcs), len(w.arcs))
	}
	out := make([]Arc[R], 0, capHint)

	// 2) Lockstep walk while both sides still have arcs.
	i, j := 0, 0
	for i < len(v.arcs) && j < len(w.arcs) {
		left, right := v.arcs[i], w.arcs[j]
		switch {
		case left.Index < right.Index:
			if rules.onLeft != nil {
				out = rules.onLeft(out, left)
			}
			i++
		case left.Index > right.Index:
			if rules.onRight != nil {
				out = rules.onRight(out, right)
			}
			j++
		default:
			if rules.onBoth != nil {
				out = rules.onBoth(out, left, right)
			}
			i++
			j++
		}
	}

	// 3) Flush whichever tail survived.
	if i < len(v.arcs) && rules.leftTail != nil {
		out = rules.leftTail(out, v.arcs[i:])
	}
	if j < len(w.arcs) && rules.rightTail != nil {
		out = rules.rightTail(out, w.arcs[j:])
	}

	return fromSorted(out)
}

// keepArc appends one arc unchanged.
func keepArc[V any](out []Arc[V], a Arc[V]) []Arc[V] { return append(out, a) }

// keepTail appends a remaining suffix unchanged.
func keepTail[V any](out []Arc[V], rest []Arc[V]) []Arc[V] { return append(out, rest...) }

// UnionWith merges v and w, keeping arcs present on either side and
// resolving shared indices with combine(left, right).
// Complexity: O(len(v) + len(w))
func UnionWith[V any](v, w Vector[V], combine func(left, right V) V) Vector[V] {
	return merge(v, w, mergeRules[V, V, V]{
		onLeft:  keepArc[V],
		onRight: keepArc[V],
		onBoth: func(out []Arc[V], left, right Arc[V]) []Arc[V] {
			return append(out, Arc[V]{Index: left.Index, Value: combine(left.Value, right.Value)})
		},
		leftTail:  keepTail[V],
		rightTail: keepTail[V],
	})
}

// Union merges v and w, keeping arcs present on either side; at shared
// indices the left value wins.
func Union[V any](v, w Vector[V]) Vector[V] {
	return UnionWith(v, w, func(left, _ V) V { return left })
}

// UnionAll folds UnionWith(combine) over vs left to right, starting from the
// empty vector. An empty or nil vs yields the empty vector.
func UnionAll[V any](vs []Vector[V], combine func(left, right V) V) Vector[V] {
	var acc Vector[V]
	for _, v := range vs {
		acc = UnionWith(acc, v, combine)
	}

	return acc
}

// IntersectWith keeps only indices present on both sides, storing
// combine(index, left, right) at each.
// Complexity: O(len(v) + len(w))
func IntersectWith[V, W, R any](v Vector[V], w Vector[W], combine func(index int, left V, right W) R) Vector[R] {
	return merge(v, w, mergeRules[V, W, R]{
		onBoth: func(out []Arc[R], left Arc[V], right Arc[W]) []Arc[R] {
			return append(out, Arc[R]{Index: left.Index, Value: combine(left.Index, left.Value, right.Value)})
		},
	})
}

// Intersect keeps the left arcs whose indices are also present in w.
// Right-hand values are never inspected, so w may store anything.
func Intersect[V, W any](v Vector[V], w Vector[W]) Vector[V] {
	return merge(v, w, mergeRules[V, W, V]{
		onBoth: func(out []Arc[V], left Arc[V], _ Arc[W]) []Arc[V] {
			return append(out, left)
		},
	})
}

// Difference keeps the left arcs whose indices are absent from w.
// Right-hand values are never inspected, so w may store anything.
func Difference[V, W any](v Vector[V], w Vector[W]) Vector[V] {
	return merge(v, w, mergeRules[V, W, V]{
		onLeft:   keepArc[V],
		leftTail: keepTail[V],
	})
}

// Map rebuilds v with f applied to every stored arc; indices are unchanged.
// Complexity: O(len(v))
func Map[V, R any](v Vector[V], f func(index int, value V) R) Vector[R] {
	if len(v.arcs) == 0 {
		return Vector[R]{}
	}
	arcs := make([]Arc[R], len(v.arcs))
	for i, a := range v.arcs {
		arcs[i] = Arc[R]{Index: a.Index, Value: f(a.Index, a.Value)}
	}

	return fromSorted(arcs)
}

// Filter keeps the arcs for which keep returns true.
// Complexity: O(len(v))
func Filter[V any](v Vector[V], keep func(index int, value V) bool) Vector[V] {
	if len(v.arcs) == 0 {
		return Vector[V]{}
	}
	arcs := make([]Arc[V], 0, len(v.arcs))
	for _, a := range v.arcs {
		if keep(a.Index, a.Value) {
			arcs = append(arcs, a)
		}
	}

	return fromSorted(arcs)
}
