// Sentinel errors for the generator package. Callers branch with errors.Is;
// generators attach context via %w wrapping and never panic at runtime.
package randmat

import "errors"

// ErrBadSize indicates a negative vertex or length parameter.
var ErrBadSize = errors.New("randmat: invalid size")

// ErrBadDensity indicates a density outside the closed interval [0, 1].
var ErrBadDensity = errors.New("randmat: density out of range")

// ErrNilValues indicates a nil value-generator function.
var ErrNilValues = errors.New("randmat: values function is nil")

// ErrNeedRandSource indicates a stochastic generation (density > 0) was
// requested without a random source; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("randmat: rng is required")
