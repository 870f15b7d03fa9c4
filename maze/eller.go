// Package maze — Eller carver.
package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/spakin/disjoint"
)

// Eller carves a perfect maze one row at a time, maintaining a disjoint-set
// partition of the current row's cells: two cells share a set iff some
// already-carved path connects them.
//
// Per row (except the last):
//
//  1. For each adjacent horizontal pair in distinct sets, link East with
//     probability BranchProbability and merge the sets. Pairs already in
//     one set are never linked — that would close a cycle.
//  2. Every set carves at least one southward passage (one member chosen
//     uniformly at random); each remaining member carves South too with
//     probability SouthLinkProbability. Southern cells inherit the
//     parent's set, carrying connectivity into the next row.
//
// The last row links every adjacent pair still in distinct sets, forcing
// all remaining sets into one and guaranteeing a connected spanning tree;
// it carves nothing southward.
//
// Returns ErrNilGrid if g is nil. Width-1 rows have no horizontal pairs;
// their single set simply receives the mandatory southward link. A 1×1
// grid is left unchanged.
// Complexity: O(R×C×α(C)) time, O(C) extra memory.
func Eller(g *grid.Grid, opts ...Option) error {
	// 1) Build configuration and validate inputs.
	cfg := buildOptions(opts)
	if g == nil {
		return ErrNilGrid
	}
	rng := cfg.rng()

	cols := g.Cols()
	lastRow := g.Rows() - 1

	// sets[c] is the partition element of the current row's cell in
	// column c; next[c] collects elements carried into the row below.
	sets := make([]*disjoint.Element, cols)
	next := make([]*disjoint.Element, cols)

	rowIdx := 0
	for row := range g.EachRow() {
		// 2) Give every column not carried from above a fresh singleton set.
		for c := 0; c < cols; c++ {
			if sets[c] == nil {
				sets[c] = disjoint.NewElement()
			}
		}

		// 3) Horizontal phase: merge adjacent distinct sets. Random in the
		//    body of the maze; exhaustive in the last row so that exactly
		//    one set survives.
		for c := 0; c+1 < cols; c++ {
			if sets[c].Find() == sets[c+1].Find() {
				continue // already connected; linking would close a cycle
			}
			if rowIdx != lastRow && rng.Float64() >= cfg.BranchProbability {
				continue
			}
			if err := g.Link(row[c], grid.East); err != nil {
				return fmt.Errorf("maze: eller link %v East: %w", row[c], err)
			}
			disjoint.Union(sets[c], sets[c+1])
		}

		if rowIdx == lastRow {
			break // no southward passages leave the last row
		}

		// 4) Vertical phase: group columns by set, then carve South —
		//    one mandatory member per set plus probabilistic extras.
		//    Group in column order so set iteration stays deterministic.
		groups := make(map[*disjoint.Element][]int, cols)
		order := make([]*disjoint.Element, 0, cols)
		for c := 0; c < cols; c++ {
			root := sets[c].Find()
			if _, seen := groups[root]; !seen {
				order = append(order, root)
			}
			groups[root] = append(groups[root], c)
		}

		for c := 0; c < cols; c++ {
			next[c] = nil
		}
		for _, root := range order {
			members := groups[root]
			mandatory := members[rng.Intn(len(members))]
			for _, c := range members {
				if c != mandatory && rng.Float64() >= cfg.SouthLinkProbability {
					continue
				}
				if err := g.Link(row[c], grid.South); err != nil {
					return fmt.Errorf("maze: eller link %v South: %w", row[c], err)
				}
				// The southern cell joins the parent's set via its own
				// element, keeping one element per cell.
				next[c] = disjoint.NewElement()
				disjoint.Union(next[c], sets[c])
			}
		}

		// 5) Advance the partition window one row down.
		sets, next = next, sets
		rowIdx++
	}

	return nil
}
