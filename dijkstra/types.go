// Package dijkstra defines result types, configuration options, and
// sentinel errors for the maze shortest-path solver.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilRoot indicates that a nil root cell was passed to Solve.
	ErrNilRoot = errors.New("dijkstra: root cell is nil")

	// ErrNilTarget indicates that a nil target cell was passed to PathTo.
	ErrNilTarget = errors.New("dijkstra: target cell is nil")

	// ErrForeignCell indicates a cell that is not owned by the solved grid.
	ErrForeignCell = errors.New("dijkstra: cell does not belong to the grid")

	// ErrUnreachable indicates a path request to a cell with no recorded
	// distance. Recoverable: the caller may choose a different target.
	ErrUnreachable = errors.New("dijkstra: target cell is unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set negative,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Solve.
//
// MaxDistance – optional cap on distances to explore; cells farther than
// this from the root receive no entry. Must be ≥ 0. Default is
// math.MaxInt (explore everything reachable).
type Options struct {
	MaxDistance int // maximum distance to explore
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxDistance caps exploration: cells whose shortest distance would
// exceed max are left without an entry, as if unreachable.
// Must pass a non-negative value; negative values panic with
// ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early; option
			// constructors cannot return errors.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with the documented defaults:
//   - MaxDistance: math.MaxInt (no cap; explore all reachable cells).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt,
	}
}
