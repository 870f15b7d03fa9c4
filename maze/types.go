// Package maze — shared configuration and sentinel errors for the
// Binary Tree, Sidewinder, and Eller generators.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the maze generators.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to a generator.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrBadProbability indicates a probability outside [0, 1] was passed
	// to an option constructor.
	ErrBadProbability = errors.New("maze: probability must be within [0, 1]")
)

// Options configures all three maze generators.
//
// Rand                 – injected random source; takes precedence over Seed.
// Seed                 – used when Rand is nil; 0 maps to a fixed default.
// BranchProbability    – Sidewinder's close-run coin and Eller's chance of
// merging two adjacent sets horizontally. Must be in [0, 1]. Default 0.5.
// SouthLinkProbability – Eller's chance of carving an extra southward
// passage for a set member beyond the mandatory one. Must be in [0, 1].
// Default 0.5.
type Options struct {
	Rand                 *rand.Rand // takes precedence over Seed when non-nil
	Seed                 int64      // seed for a fresh deterministic stream
	BranchProbability    float64    // horizontal coin; see per-algorithm docs
	SouthLinkProbability float64    // Eller extra southward carve chance
}

// Option represents a functional option for configuring a generator.
type Option func(*Options)

// WithRand injects an explicit random source. The generator consumes it
// directly; do not share one *rand.Rand across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed selects a deterministic stream by seed. Seed 0 maps to a fixed
// default seed, so the zero value stays reproducible. Ignored when an
// explicit Rand is also supplied.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithBranchProbability tunes the horizontal coin: Sidewinder closes the
// current run with probability p per cell, and Eller merges two adjacent
// distinct sets with probability p.
// Must be within [0, 1]; out-of-range values panic with ErrBadProbability.
func WithBranchProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			// Panic to signal invalid configuration early, as option
			// constructors cannot return errors.
			panic(ErrBadProbability.Error())
		}
		o.BranchProbability = p
	}
}

// WithSouthLinkProbability tunes Eller's chance of carving additional
// southward passages per set beyond the mandatory one.
// Must be within [0, 1]; out-of-range values panic with ErrBadProbability.
func WithSouthLinkProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			panic(ErrBadProbability.Error())
		}
		o.SouthLinkProbability = p
	}
}

// DefaultOptions returns an Options struct with the documented defaults:
//   - Rand:                 nil (derive from Seed)
//   - Seed:                 0 (fixed default stream)
//   - BranchProbability:    0.5 (fair coin)
//   - SouthLinkProbability: 0.5
func DefaultOptions() Options {
	return Options{
		Rand:                 nil,
		Seed:                 0,
		BranchProbability:    0.5,
		SouthLinkProbability: 0.5,
	}
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// rng resolves the random source for one generator run: an injected Rand
// wins; otherwise a fresh deterministic stream is derived from Seed.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}
