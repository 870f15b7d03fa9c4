// Package maze — Sidewinder carver.
package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Sidewinder carves a perfect maze row by row, top to bottom. Within a
// row it grows a "run" — the current horizontal corridor — and, per cell,
// flips a coin (BranchProbability) to decide whether to close the run:
//
//   - At the eastern boundary the run always closes.
//   - With no North neighbor (top row) the run never closes early, so the
//     whole top row becomes a single corridor.
//   - Closing a run links one uniformly random member northward, then
//     starts a fresh run; otherwise the cell links East and the run grows.
//
// Returns ErrNilGrid if g is nil. A 1×1 grid is left unchanged.
// Complexity: O(R×C) time, O(C) extra memory.
func Sidewinder(g *grid.Grid, opts ...Option) error {
	// 1) Build configuration and validate inputs.
	cfg := buildOptions(opts)
	if g == nil {
		return ErrNilGrid
	}
	rng := cfg.rng()

	// 2) Process rows top-to-bottom in the grid's fixed order.
	for row := range g.EachRow() {
		run := make([]*grid.Cell, 0, len(row))
		for _, cell := range row {
			run = append(run, cell)

			_, hasEast := g.Neighbor(cell, grid.East)
			_, hasNorth := g.Neighbor(cell, grid.North)

			// A run closes at the eastern boundary, or by coin flip when a
			// northward escape exists. Without a North neighbor the run must
			// keep extending East.
			closeOut := !hasEast || (hasNorth && rng.Float64() < cfg.BranchProbability)

			if !closeOut {
				// 2a) Extend the corridor eastward.
				if err := g.Link(cell, grid.East); err != nil {
					return fmt.Errorf("maze: sidewinder link %v East: %w", cell, err)
				}
				continue
			}

			// 2b) Close the run: one uniformly random member escapes North.
			//     In the top row no member has a North neighbor, so the run
			//     simply resets — the top corridor needs no escape.
			member := run[rng.Intn(len(run))]
			if _, ok := g.Neighbor(member, grid.North); ok {
				if err := g.Link(member, grid.North); err != nil {
					return fmt.Errorf("maze: sidewinder link %v North: %w", member, err)
				}
			}
			run = run[:0]
		}
	}

	return nil
}
