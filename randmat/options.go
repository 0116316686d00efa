// Functional options for the generator package. Option constructors
// validate and panic on meaningless inputs; generation itself only ever
// returns sentinel errors.
package randmat

import "math/rand"

// config carries the resolved generation knobs.
type config struct {
	// rng drives Bernoulli trials and value draws; nil means "no
	// randomness", acceptable only at density zero.
	rng *rand.Rand
}

// Option customizes generation by mutating the config before any trial.
type Option func(*config)

// WithSeed derives a fresh deterministic source from seed. Use it in tests
// and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit source, for callers sequencing several
// generations off one stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("randmat: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// newConfig starts from the deterministic default (no source) and applies
// options in order, last wins.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
