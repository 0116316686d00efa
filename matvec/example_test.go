package matvec_test

import (
	"fmt"

	"github.com/katalvlaran/sparsegraph/matvec"
	"github.com/katalvlaran/sparsegraph/semiring"
	"github.com/katalvlaran/sparsegraph/sparse"
)

// ExampleSuccessors walks one step through a three-vertex graph.
func ExampleSuccessors() {
	m, _ := sparse.MatrixFromMap(map[int]map[int]bool{
		0: {1: true, 2: true},
		1: {2: true},
		2: {1: true},
	})
	start := sparse.MustNew(sparse.Arc[bool]{Index: 0, Value: true})

	fmt.Println(matvec.Successors(start, m))
	// Output:
	// [(1 | true) (2 | true)]
}

// ExampleProduct computes an integer vector-matrix product.
func ExampleProduct() {
	v := sparse.MustNew(
		sparse.Arc[int]{Index: 0, Value: 2},
		sparse.Arc[int]{Index: 1, Value: 3},
	)
	m, _ := sparse.MatrixFromMap(map[int]map[int]int{
		0: {1: 4, 2: 5},
		1: {2: 6},
	})

	fmt.Println(matvec.Product[int](semiring.Arithmetic[int]{}, v, m))
	// Output:
	// [(1 | 8) (2 | 28)]
}

// ExampleExtendPath grows one recorded route per reached vertex.
func ExampleExtendPath() {
	m, _ := sparse.MatrixFromMap(map[int]map[int]bool{
		0: {1: true},
		1: {2: true},
	})
	walk := sparse.MustNew(sparse.Arc[matvec.Path]{Index: 0, Value: matvec.Path{0}})

	walk = matvec.ExtendPath(walk, m)
	walk = matvec.ExtendPath(walk, m)
	fmt.Println(walk)
	// Output:
	// [(2 | [0 1 2])]
}

// ExampleTranspose flips a small rectangular matrix.
func ExampleTranspose() {
	m, _ := sparse.MatrixFromMap(map[int]map[int]int{
		0: {1: 10},
		1: {2: 20},
	})

	tr, _ := matvec.Transpose(m, 3)
	fmt.Println(tr)
	// Output:
	// 0 | []
	// 1 | [(0 | 10)]
	// 2 | [(1 | 20)]
}
