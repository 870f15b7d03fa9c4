// Package grid defines core types and sentinel errors for the lattice:
// Direction, Cell, and Grid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates rows or cols ≤ 0 at grid construction.
	ErrInvalidDimension = errors.New("grid: rows and cols must be positive")
	// ErrOutOfRange indicates cell coordinates outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("grid: cell coordinates out of range")
	// ErrNoSuchNeighbor indicates a link attempt toward a grid boundary.
	ErrNoSuchNeighbor = errors.New("grid: no neighbor in that direction")
	// ErrForeignCell indicates a *Cell that is not owned by this grid.
	ErrForeignCell = errors.New("grid: cell does not belong to this grid")
)

// Direction identifies one of the four orthogonal neighbor directions.
type Direction int

const (
	// North is toward row-1 (up).
	North Direction = iota
	// East is toward col+1 (right).
	East
	// South is toward row+1 (down).
	South
	// West is toward col-1 (left).
	West

	// numDirections is the size of per-cell link storage.
	numDirections
)

// directions lists all four directions in canonical N, E, S, W order.
// Traversals iterate this slice so neighbor order is stable.
var directions = [numDirections]Direction{North, East, South, West}

// Directions returns the four orthogonal directions in canonical
// N, E, S, W order. The returned array is a copy; callers may not
// perturb the canonical ordering.
func Directions() [4]Direction { return directions }

// Opposite returns the reverse direction: North↔South, East↔West.
func (d Direction) Opposite() Direction {
	return (d + 2) % numDirections
}

// Delta returns the (row, col) offset of a single step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default: // West
		return 0, -1
	}
}

// String implements fmt.Stringer for readable errors and test output.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Cell is a single grid position. Row and Col are fixed at construction;
// link flags are mutated only through Grid.Link and Grid.Unlink so that
// the symmetry invariant (A linked to B ⇒ B linked to A) always holds.
type Cell struct {
	// Row and Col are the cell's coordinates, both ≥ 0.
	Row, Col int

	// links holds one open/closed flag per direction, indexed by Direction.
	links [numDirections]bool
}

// Linked reports whether the passage from c in direction d is open.
// An absent neighbor (grid boundary) is never linked.
// Complexity: O(1).
func (c *Cell) Linked(d Direction) bool {
	if d < 0 || d >= numDirections {
		return false
	}
	return c.links[d]
}

// Links returns the open directions of c in canonical N, E, S, W order.
// The slice is freshly allocated; mutating it does not affect the cell.
// Complexity: O(1).
func (c *Cell) Links() []Direction {
	open := make([]Direction, 0, numDirections)
	for _, d := range directions {
		if c.links[d] {
			open = append(open, d)
		}
	}
	return open
}

// String implements fmt.Stringer as "(row,col)".
func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rectangular 4-connected lattice of cells. It owns its cells
// exclusively: neighbor identity is computed from coordinates, and link
// flags change only via Link/Unlink. A Grid is not safe for concurrent
// mutation; ownership passes builder → generator → solver sequentially.
type Grid struct {
	rows, cols int
	cells      []*Cell // row-major: cells[r*cols+c]
}
