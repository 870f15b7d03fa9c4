// Package dijkstra computes shortest-path distances through a carved maze
// and recovers paths between cells.
//
// What:
//
//   - Solve walks the passage graph from a root cell, assigning each
//     reachable cell its distance (number of passages crossed). Only open
//     links are traversed — adjacency through a wall does not count.
//   - Distances holds the result: per-cell distances, the root, and the
//     farthest cell.
//   - PathTo recovers one shortest path by walking backward from a target
//     along strictly decreasing distances. In a perfect maze that path is
//     unique.
//
// Why:
//
//   - Solving a maze: root at one corner, PathTo the opposite corner.
//   - Difficulty analysis: Max finds the cell farthest from the entrance.
//   - Rendering collaborators can shade cells by distance.
//
// Implementation:
//
//	Every passage has uniform weight 1, so breadth-first expansion would
//	suffice; Solve nevertheless runs Dijkstra's generalized form with a
//	min-heap and lazy decrease-key, keeping the door open for weighted
//	passages later. Complexity stays O(V log V) with V = rows×cols, since
//	the lattice has at most 4 edges per cell. Memory: O(V).
//
// Errors:
//
//   - ErrNilGrid:     nil *grid.Grid passed to Solve.
//   - ErrNilRoot:     nil root cell passed to Solve.
//   - ErrNilTarget:   nil target cell passed to PathTo.
//   - ErrForeignCell: a cell not owned by the solved grid.
//   - ErrUnreachable: PathTo requested for a cell with no recorded
//     distance — recoverable; the caller may pick another target.
//
// Usage:
//
//	dist, err := dijkstra.Solve(g, root)
//	if err != nil { ... }
//	path, err := dist.PathTo(target)
//	if errors.Is(err, dijkstra.ErrUnreachable) { ... }
package dijkstra
