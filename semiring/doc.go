// Package semiring declares the algebraic capability the product operations
// in matvec are generic over, plus ready-made numeric instances.
//
// What
//
//   - Semiring: additive identity (Zero), multiplicative identity (One),
//     addition, and multiplication over one value type.
//   - Eq: an optional equality capability, used only to recognize Zero and
//     One values for short-circuit optimizations.
//   - Instances: Arithmetic (+, *), Boolean (or, and), and MinPlus
//     (min, +) over floats, all implementing both Semiring and Eq.
//
// Laws
//
//	Add is associative and commutative with identity Zero; Mul is
//	associative with identity One and distributes over Add; Mul by Zero
//	yields Zero. Instances supplied here satisfy the laws exactly
//	(floating-point rounding aside); caller-supplied instances must too,
//	or the products built on them lose their meaning.
//
// Why
//
//   - One vector-matrix product parameterized by a Semiring covers plain
//     arithmetic, reachability (Boolean), and shortest distances (MinPlus)
//     without separate implementations.
//   - Eq stays separate so value types without a usable equality can still
//     form a Semiring; its absence costs performance, never correctness.
package semiring
