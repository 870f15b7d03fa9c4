// Package grid — Grid construction, neighbor lookup, linking, iteration,
// and ASCII rendering.
package grid

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"
)

// defaultRNGSeed is the fixed seed used when callers pass a nil *rand.Rand.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// New constructs a rows×cols grid with all passages closed.
// Cells are allocated in row-major order; neighbor identity is derived
// from coordinates on demand, so no wiring pass is needed.
// Returns ErrInvalidDimension if rows ≤ 0 or cols ≤ 0.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	// 1) Validate parameters early (fail fast; no partial work).
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrInvalidDimension, rows, cols)
	}

	// 2) Allocate all cells in deterministic row-major order.
	cells := make([]*Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = &Cell{Row: r, Col: c}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total cell count, rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns the cell at (row, col), or ErrOutOfRange if the
// coordinates fall outside [0,rows)×[0,cols).
// Complexity: O(1).
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) not in [0,%d)×[0,%d)",
			ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// Owns reports whether c is one of this grid's cells (pointer identity,
// not mere coordinate equality).
// Complexity: O(1).
func (g *Grid) Owns(c *Cell) bool {
	if c == nil || !g.InBounds(c.Row, c.Col) {
		return false
	}
	return g.cells[c.Row*g.cols+c.Col] == c
}

// Neighbor returns c's neighbor in direction d, or (nil, false) when the
// step leaves the grid or c is not owned by g.
// Complexity: O(1).
func (g *Grid) Neighbor(c *Cell, d Direction) (*Cell, bool) {
	if !g.Owns(c) {
		return nil, false
	}
	dr, dc := d.Delta()
	nr, nc := c.Row+dr, c.Col+dc
	if !g.InBounds(nr, nc) {
		return nil, false
	}
	return g.cells[nr*g.cols+nc], true
}

// RandomCell returns a uniformly random cell drawn from rng.
// A nil rng falls back to a fixed-seed default stream, so repeated
// nil-rng calls yield the same cell; inject a seeded *rand.Rand for
// varied yet reproducible sequences.
// Complexity: O(1).
func (g *Grid) RandomCell(rng *rand.Rand) *Cell {
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}
	return g.cells[r.Intn(len(g.cells))]
}

// EachRow returns a lazy, finite, restartable sequence over rows, ordered
// top-to-bottom. Each yielded slice is freshly allocated and ordered
// left-to-right; callers may retain or reorder it freely.
// Complexity: O(rows×cols) over a full pass.
func (g *Grid) EachRow() iter.Seq[[]*Cell] {
	return func(yield func([]*Cell) bool) {
		for r := 0; r < g.rows; r++ {
			row := make([]*Cell, g.cols)
			copy(row, g.cells[r*g.cols:(r+1)*g.cols])
			if !yield(row) {
				return
			}
		}
	}
}

// EachCell returns a lazy, finite, restartable sequence over every cell
// in row-major order (top-to-bottom, left-to-right). Maze generators
// depend on this fixed traversal order for determinism.
// Complexity: O(rows×cols) over a full pass.
func (g *Grid) EachCell() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Link opens the passage from c in direction d and symmetrically opens
// the reverse direction on the neighbor, preserving the link invariant.
// Returns ErrForeignCell if c is not owned by g, or ErrNoSuchNeighbor if
// the step in d leaves the grid.
// Complexity: O(1).
func (g *Grid) Link(c *Cell, d Direction) error {
	return g.setLink(c, d, true)
}

// Unlink closes the passage from c in direction d and symmetrically
// closes the reverse direction on the neighbor.
// Returns the same errors as Link.
// Complexity: O(1).
func (g *Grid) Unlink(c *Cell, d Direction) error {
	return g.setLink(c, d, false)
}

// setLink sets both half-links of the passage (c, d) to the same state.
// Both sides change together or not at all, so symmetry cannot break.
func (g *Grid) setLink(c *Cell, d Direction, open bool) error {
	if !g.Owns(c) {
		return fmt.Errorf("%w: %v", ErrForeignCell, c)
	}
	n, ok := g.Neighbor(c, d)
	if !ok {
		return fmt.Errorf("%w: %v has no %v neighbor", ErrNoSuchNeighbor, c, d)
	}
	c.links[d] = open
	n.links[d.Opposite()] = open
	return nil
}

// LinkCount returns the number of open undirected passages in the grid.
// A perfect maze over R×C cells has exactly R×C−1 of them.
// Complexity: O(rows×cols).
func (g *Grid) LinkCount() int {
	// Count East and South half-links only; every undirected passage is
	// seen exactly once that way.
	total := 0
	for _, c := range g.cells {
		if c.links[East] {
			total++
		}
		if c.links[South] {
			total++
		}
	}
	return total
}

// String renders the grid as ASCII walls:
//
//	+---+---+
//	|       |
//	+   +---+
//	|   |   |
//	+---+---+
//
// Closed passages draw walls; open passages leave gaps. Useful for tests
// and terminal inspection; image export is out of scope for this package.
// Complexity: O(rows×cols).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("+---", g.cols) + "+\n")
	for r := 0; r < g.rows; r++ {
		top, bottom := "|", "+"
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r*g.cols+c]
			if cell.Linked(East) {
				top += "    "
			} else {
				top += "   |"
			}
			if cell.Linked(South) {
				bottom += "   +"
			} else {
				bottom += "---+"
			}
		}
		sb.WriteString(top + "\n" + bottom + "\n")
	}
	return sb.String()
}
