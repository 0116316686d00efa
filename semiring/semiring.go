// Package semiring defines the algebraic capability behind the generic
// vector-matrix products, with arithmetic, boolean, and tropical instances.
package semiring

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Semiring is the algebraic capability of a value type V: two identities and
// two operations. Add must be associative and commutative with identity
// Zero; Mul must be associative with identity One, distribute over Add, and
// absorb Zero (Mul(Zero, x) = Zero). Implementations are expected to be
// stateless values, cheap to copy and safe to share.
type Semiring[V any] interface {
	// Zero returns the additive identity.
	Zero() V

	// One returns the multiplicative identity.
	One() V

	// Add combines two values additively.
	Add(a, b V) V

	// Mul combines two values multiplicatively.
	Mul(a, b V) V
}

// Eq is an optional capability for recognizing particular values, used by
// optimized products solely to detect Zero and One operands. A Semiring
// without Eq degrades those optimizations to the plain code path.
type Eq[V any] interface {
	// Equal reports whether a and b are the same value.
	Equal(a, b V) bool
}

// Number constrains the numeric semiring instances to Go's integer and
// floating-point kinds.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic is the ordinary (+, *) semiring over a numeric type.
// Integer overflow wraps, as it does for the underlying type.
type Arithmetic[T Number] struct{}

// Zero returns 0.
func (Arithmetic[T]) Zero() T { var zero T; return zero }

// One returns 1.
func (Arithmetic[T]) One() T { return 1 }

// Add returns a + b.
func (Arithmetic[T]) Add(a, b T) T { return a + b }

// Mul returns a * b.
func (Arithmetic[T]) Mul(a, b T) T { return a * b }

// Equal reports a == b.
func (Arithmetic[T]) Equal(a, b T) bool { return a == b }

// Boolean is the (or, and) semiring over bool: Zero = false, One = true.
// Products over it answer pure reachability questions.
type Boolean struct{}

// Zero returns false.
func (Boolean) Zero() bool { return false }

// One returns true.
func (Boolean) One() bool { return true }

// Add returns a || b.
func (Boolean) Add(a, b bool) bool { return a || b }

// Mul returns a && b.
func (Boolean) Mul(a, b bool) bool { return a && b }

// Equal reports a == b.
func (Boolean) Equal(a, b bool) bool { return a == b }

// MinPlus is the tropical (min, +) semiring over a float type:
// Zero = +Inf, One = 0. Products over it compute shortest distances.
type MinPlus[T constraints.Float] struct{}

// Zero returns positive infinity.
func (MinPlus[T]) Zero() T { return T(math.Inf(1)) }

// One returns 0.
func (MinPlus[T]) One() T { var zero T; return zero }

// Add returns min(a, b).
func (MinPlus[T]) Add(a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Mul returns a + b.
func (MinPlus[T]) Mul(a, b T) T { return a + b }

// Equal reports a == b. Infinities compare equal to themselves, so Zero
// detection works.
func (MinPlus[T]) Equal(a, b T) bool { return a == b }
