// Package grid_test contains unit tests for grid construction, neighbor
// wiring, symmetric linking, iteration order, and error reporting.
package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation: construction and coordinate errors.
// ------------------------------------------------------------------------

func TestNew_InvalidDimensions(t *testing.T) {
	// Any non-positive dimension must fail with ErrInvalidDimension.
	cases := []struct{ rows, cols int }{
		{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0},
	}
	for _, tc := range cases {
		g, err := grid.New(tc.rows, tc.cols)
		assert.Nil(t, g, "New(%d,%d) should not return a grid", tc.rows, tc.cols)
		assert.ErrorIs(t, err, grid.ErrInvalidDimension)
	}
}

func TestNew_CellCountAndCoordinates(t *testing.T) {
	// A 3×4 grid holds exactly 12 cells, each carrying its own coordinates.
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Size())

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			cell, err := g.CellAt(r, c)
			require.NoError(t, err)
			assert.Equal(t, r, cell.Row)
			assert.Equal(t, c, cell.Col)
		}
	}
}

func TestCellAt_OutOfRange(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		_, err := g.CellAt(rc[0], rc[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "CellAt(%d,%d)", rc[0], rc[1])
	}
}

// ------------------------------------------------------------------------
// 2. Neighbor wiring: the lattice rule and boundary behavior.
// ------------------------------------------------------------------------

func TestNeighbor_LatticeRule(t *testing.T) {
	// Cell (r,c) has a north neighbor (r-1,c) iff r>0, and so on for the
	// remaining directions. Verify every cell of a 3×3 grid.
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	for cell := range g.EachCell() {
		for _, d := range grid.Directions() {
			dr, dc := d.Delta()
			nr, nc := cell.Row+dr, cell.Col+dc
			n, ok := g.Neighbor(cell, d)
			if g.InBounds(nr, nc) {
				require.True(t, ok, "%v should have a %v neighbor", cell, d)
				assert.Equal(t, nr, n.Row)
				assert.Equal(t, nc, n.Col)
			} else {
				assert.False(t, ok, "%v should have no %v neighbor", cell, d)
			}
		}
	}
}

func TestNeighbor_SymmetricWiring(t *testing.T) {
	// If B is A's neighbor in direction d, then A is B's neighbor in the
	// opposite direction, for every cell and direction.
	g, err := grid.New(4, 5)
	require.NoError(t, err)

	for cell := range g.EachCell() {
		for _, d := range grid.Directions() {
			n, ok := g.Neighbor(cell, d)
			if !ok {
				continue
			}
			back, ok := g.Neighbor(n, d.Opposite())
			require.True(t, ok)
			assert.Same(t, cell, back)
		}
	}
}

func TestNeighbor_ForeignCell(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	// A cell with valid coordinates but foreign identity is rejected.
	impostor := &grid.Cell{Row: 0, Col: 0}
	_, ok := g.Neighbor(impostor, grid.East)
	assert.False(t, ok)
	assert.False(t, g.Owns(impostor))
}

// ------------------------------------------------------------------------
// 3. Linking: symmetry, idempotence, boundary errors.
// ------------------------------------------------------------------------

func TestNew_NoOpenLinks(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	assert.Zero(t, g.LinkCount())
	for cell := range g.EachCell() {
		assert.Empty(t, cell.Links(), "%v should start fully walled", cell)
	}
}

func TestLink_Symmetric(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	a, _ := g.CellAt(0, 0)
	b, _ := g.CellAt(0, 1)

	require.NoError(t, g.Link(a, grid.East))
	assert.True(t, a.Linked(grid.East))
	assert.True(t, b.Linked(grid.West), "reverse half-link must open too")
	assert.Equal(t, 1, g.LinkCount())

	// Unlink closes both halves again.
	require.NoError(t, g.Unlink(a, grid.East))
	assert.False(t, a.Linked(grid.East))
	assert.False(t, b.Linked(grid.West))
	assert.Zero(t, g.LinkCount())
}

func TestLink_BoundaryFails(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	corner, _ := g.CellAt(0, 0)

	// (0,0) has no north and no west neighbor.
	assert.ErrorIs(t, g.Link(corner, grid.North), grid.ErrNoSuchNeighbor)
	assert.ErrorIs(t, g.Link(corner, grid.West), grid.ErrNoSuchNeighbor)
	// A failed link leaves the grid untouched.
	assert.Zero(t, g.LinkCount())
}

func TestLink_ForeignCellFails(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	impostor := &grid.Cell{Row: 0, Col: 0}
	assert.ErrorIs(t, g.Link(impostor, grid.East), grid.ErrForeignCell)
}

// ------------------------------------------------------------------------
// 4. Iteration: fixed row-major order, laziness, restartability.
// ------------------------------------------------------------------------

func TestEachRow_OrderAndShape(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)

	r := 0
	for row := range g.EachRow() {
		require.Len(t, row, 4)
		for c, cell := range row {
			assert.Equal(t, r, cell.Row)
			assert.Equal(t, c, cell.Col)
		}
		r++
	}
	assert.Equal(t, 3, r, "EachRow must yield every row exactly once")
}

func TestEachCell_RowMajorOrder(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	var got [][2]int
	for cell := range g.EachCell() {
		got = append(got, [2]int{cell.Row, cell.Col})
	}
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	assert.Equal(t, want, got)
}

func TestEachCell_Restartable(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	// A partial first pass must not perturb a full second pass.
	for range g.EachCell() {
		break
	}
	count := 0
	for range g.EachCell() {
		count++
	}
	assert.Equal(t, 4, count)
}

// ------------------------------------------------------------------------
// 5. Random selection and rendering.
// ------------------------------------------------------------------------

func TestRandomCell_OwnedAndSeeded(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	// Same seed ⇒ same sequence of cells; every draw is owned by g.
	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		a := g.RandomCell(r1)
		b := g.RandomCell(r2)
		assert.Same(t, a, b)
		assert.True(t, g.Owns(a))
	}

	// Nil rng falls back to the deterministic default stream.
	assert.Same(t, g.RandomCell(nil), g.RandomCell(nil))
}

func TestString_WallsFollowLinks(t *testing.T) {
	// 1×2 grid: fully walled, then with the single passage opened.
	g, err := grid.New(1, 2)
	require.NoError(t, err)

	assert.Equal(t, "+---+---+\n|   |   |\n+---+---+\n", g.String())

	a, _ := g.CellAt(0, 0)
	require.NoError(t, g.Link(a, grid.East))
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", g.String())
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	assert.Equal(t, grid.South, grid.North.Opposite())
	assert.Equal(t, grid.North, grid.South.Opposite())
	assert.Equal(t, grid.West, grid.East.Opposite())
	assert.Equal(t, grid.East, grid.West.Opposite())

	dr, dc := grid.North.Delta()
	assert.Equal(t, [2]int{-1, 0}, [2]int{dr, dc})
	dr, dc = grid.East.Delta()
	assert.Equal(t, [2]int{0, 1}, [2]int{dr, dc})
}

// ------------------------------------------------------------------------
// 6. Spec scenario: the 1×1 grid.
// ------------------------------------------------------------------------

func TestOneByOne_NoNeighbors(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, g.Size())

	only, err := g.CellAt(0, 0)
	require.NoError(t, err)
	for _, d := range grid.Directions() {
		_, ok := g.Neighbor(only, d)
		assert.False(t, ok, "1×1 cell should have no %v neighbor", d)
		assert.ErrorIs(t, g.Link(only, d), grid.ErrNoSuchNeighbor)
	}
	assert.Zero(t, g.LinkCount())
}
