// Package dijkstra — Distances: the immutable result of one Solve call,
// plus shortest-path recovery.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Distances maps each reached cell to its shortest distance from the root.
// Computed once by Solve and never mutated afterward; the caller owns it.
// Cells without an entry are unreachable from the root (or lie beyond the
// MaxDistance cap).
type Distances struct {
	grid *grid.Grid
	root *grid.Cell
	dist map[*grid.Cell]int
}

// Root returns the cell the distances were computed from. Its distance is
// always 0.
func (ds *Distances) Root() *grid.Cell { return ds.root }

// At returns the distance of c from the root, and whether c was reached.
// Complexity: O(1).
func (ds *Distances) At(c *grid.Cell) (int, bool) {
	d, ok := ds.dist[c]
	return d, ok
}

// Len returns the number of reached cells, the root included.
func (ds *Distances) Len() int { return len(ds.dist) }

// Max returns the reached cell farthest from the root and its distance.
// Ties break on row-major order, so the result is deterministic.
// Complexity: O(rows×cols).
func (ds *Distances) Max() (*grid.Cell, int) {
	farthest, best := ds.root, 0
	for c := range ds.grid.EachCell() {
		if d, ok := ds.dist[c]; ok && d > best {
			farthest, best = c, d
		}
	}
	return farthest, best
}

// PathTo recovers one shortest path from the root to target by walking
// backward: at each step it moves to a passage-linked neighbor whose
// distance is exactly one less, stopping at the root. The returned
// sequence starts at the root, ends at target, and has length
// distance(target)+1. In a perfect maze the path is unique.
//
// Returns ErrNilTarget for a nil target, ErrForeignCell for a cell of
// another grid, and ErrUnreachable when target has no recorded distance.
// Complexity: O(length of the path).
func (ds *Distances) PathTo(target *grid.Cell) ([]*grid.Cell, error) {
	// 1) Validate the target.
	if target == nil {
		return nil, ErrNilTarget
	}
	if !ds.grid.Owns(target) {
		return nil, fmt.Errorf("%w: target %v", ErrForeignCell, target)
	}
	d, ok := ds.dist[target]
	if !ok {
		return nil, fmt.Errorf("%w: target %v", ErrUnreachable, target)
	}

	// 2) Walk backward along strictly decreasing distances.
	path := make([]*grid.Cell, 0, d+1)
	path = append(path, target)
	cur := target
	for ds.dist[cur] > 0 {
		prev := ds.closerNeighbor(cur)
		if prev == nil {
			// Cannot happen for distances produced by Solve over an intact
			// grid; surfaces only if links were mutated after solving.
			return nil, fmt.Errorf("%w: no predecessor below %v (grid changed after solve?)",
				ErrUnreachable, cur)
		}
		path = append(path, prev)
		cur = prev
	}

	// 3) Reverse into root → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// closerNeighbor returns a passage-linked neighbor of c whose distance is
// exactly dist(c)−1, or nil if none exists. Directions are scanned in
// canonical N, E, S, W order for determinism.
func (ds *Distances) closerNeighbor(c *grid.Cell) *grid.Cell {
	want := ds.dist[c] - 1
	for _, d := range c.Links() {
		n, ok := ds.grid.Neighbor(c, d)
		if !ok {
			continue
		}
		if nd, reached := ds.dist[n]; reached && nd == want {
			return n
		}
	}
	return nil
}
