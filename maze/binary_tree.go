// Package maze — Binary Tree carver.
package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// BinaryTree carves a perfect maze by visiting every cell in row-major
// order and opening one passage toward North or East, chosen uniformly at
// random among the directions that actually have a neighbor.
//
// The single cell with neither a North nor an East neighbor (the top-right
// corner) is left untouched. The result is always a spanning tree, with a
// structural bias: one unbroken corridor along the top row and another
// along the east column.
//
// Returns ErrNilGrid if g is nil. A 1×1 grid is left unchanged.
// Complexity: O(R×C) time, O(1) extra memory.
func BinaryTree(g *grid.Grid, opts ...Option) error {
	// 1) Build configuration and validate inputs.
	cfg := buildOptions(opts)
	if g == nil {
		return ErrNilGrid
	}
	rng := cfg.rng()

	// 2) Visit cells in the fixed row-major order; randomness decides only
	//    the direction, never the traversal, so a seed pins the maze.
	candidates := make([]grid.Direction, 0, 2)
	for cell := range g.EachCell() {
		// 2a) Collect the present subset of {North, East}.
		candidates = candidates[:0]
		if _, ok := g.Neighbor(cell, grid.North); ok {
			candidates = append(candidates, grid.North)
		}
		if _, ok := g.Neighbor(cell, grid.East); ok {
			candidates = append(candidates, grid.East)
		}
		if len(candidates) == 0 {
			// Top-right corner: nothing to carve here.
			continue
		}

		// 2b) Open exactly one passage, chosen uniformly.
		d := candidates[rng.Intn(len(candidates))]
		if err := g.Link(cell, d); err != nil {
			// Unreachable for an owned cell with a verified neighbor;
			// surfaced rather than swallowed in case g was mutated concurrently.
			return fmt.Errorf("maze: binary tree link %v %v: %w", cell, d, err)
		}
	}

	return nil
}
