// Package grid models a rectangular maze as a 4-connected lattice of cells
// with independently opened passages ("links") between adjacent cells.
//
// What:
//
//   - Cell holds its (row, col) coordinates and one link flag per direction.
//   - Grid owns all cells in row-major order and wires the lattice by
//     coordinate arithmetic — no cyclic neighbor pointers are stored.
//   - Link/Unlink open and close passages symmetrically: if A is linked
//     east to B, then B is linked west to A, always.
//   - EachRow/EachCell expose lazy, restartable row-major iteration that
//     maze generators rely on for determinism-up-to-randomness.
//
// Why:
//
//   - Maze generation: carvers mutate link flags to grow a spanning tree.
//   - Pathfinding: solvers traverse open links only, never mere adjacency.
//   - Inspection: String() renders the maze as ASCII walls for debugging.
//
// Complexity:
//
//   - New:            O(R×C) time and memory.
//   - CellAt/Link:    O(1).
//   - EachRow/EachCell: O(R×C) total, lazy per element.
//   - String:         O(R×C).
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols ≤ 0 at construction.
//   - ErrOutOfRange:       cell coordinates outside [0,R)×[0,C).
//   - ErrNoSuchNeighbor:   link/unlink toward a grid boundary.
//   - ErrForeignCell:      a cell not owned by this grid.
//
// Determinism:
//
//	Iteration order is fixed: rows top-to-bottom, cells left-to-right.
//	RandomCell draws from an injected *rand.Rand; a nil generator falls
//	back to a fixed-seed default stream so zero-config use is reproducible.
package grid
