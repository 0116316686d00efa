package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsegraph/sparse"
)

// ExampleUnion demonstrates the left-biased union of two sparse vectors.
func ExampleUnion() {
	v := sparse.MustNew(
		sparse.Arc[string]{Index: 0, Value: "left"},
		sparse.Arc[string]{Index: 2, Value: "left"},
	)
	w := sparse.MustNew(
		sparse.Arc[string]{Index: 1, Value: "right"},
		sparse.Arc[string]{Index: 2, Value: "right"},
	)

	fmt.Println(sparse.Union(v, w))
	// Output:
	// [(0 | left) (1 | right) (2 | left)]
}

// ExampleDifference shows index subtraction across different value types.
func ExampleDifference() {
	v := sparse.MustNew(
		sparse.Arc[int]{Index: 1, Value: 10},
		sparse.Arc[int]{Index: 3, Value: 30},
		sparse.Arc[int]{Index: 5, Value: 50},
	)
	mask := sparse.MustNew(sparse.Arc[bool]{Index: 3, Value: true})

	fmt.Println(sparse.Difference(v, mask))
	// Output:
	// [(1 | 10) (5 | 50)]
}

// ExampleMatrixFromMap builds a small adjacency matrix and prints it row by row.
func ExampleMatrixFromMap() {
	m, err := sparse.MatrixFromMap(map[int]map[int]int{
		0: {1: 1, 2: 1},
		1: {2: 1},
		2: {1: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m)
	// Output:
	// 0 | [(1 | 1) (2 | 1)]
	// 1 | [(2 | 1)]
	// 2 | [(1 | 1)]
}
