// Package dijkstra — Solve: single-source shortest distances over the
// passage graph of a maze.
//
// Notes on implementation choices:
//
//   - Passages have uniform weight 1, so first-assigned distances are
//     already minimal; the min-heap form is kept for extensibility toward
//     weighted passages.
//   - We use a “lazy” decrease-key strategy: pushing duplicates onto the
//     heap and ignoring stale entries when popped.
//   - We stop exploring once the minimum distance in the heap exceeds
//     MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Solve computes shortest distances from root to every reachable cell of
// g, traversing open passages only. The grid is read-only during the call.
//
// Returns:
//
//   - *Distances: per-cell distances from root; cells with no entry are
//     unreachable (or beyond MaxDistance).
//   - err: ErrNilGrid, ErrNilRoot, or ErrForeignCell on invalid input.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. root must be non-nil (ErrNilRoot).
//  3. root must be owned by g (ErrForeignCell).
//
// Complexity:
//
//   - Time:  O(V log V) with V = rows×cols (≤ 4 edges per cell).
//   - Space: O(V).
func Solve(g *grid.Grid, root *grid.Cell, opts ...Option) (*Distances, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order.
	if g == nil {
		return nil, ErrNilGrid
	}
	if root == nil {
		return nil, ErrNilRoot
	}
	if !g.Owns(root) {
		return nil, fmt.Errorf("%w: root %v", ErrForeignCell, root)
	}

	// 3) Prepare state: distance map, finalization set, and the min-heap
	//    seeded with the root at distance 0.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[*grid.Cell]int, g.Size()),
		visited: make(map[*grid.Cell]bool, g.Size()),
		pq:      make(cellPQ, 0, g.Size()),
	}
	r.dist[root] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{cell: root, dist: 0})

	// 4) Run the main loop.
	r.process()

	return &Distances{grid: g, root: root, dist: r.dist}, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g       *grid.Grid          // the input grid; read-only within Solve
	options Options             // configuration (MaxDistance)
	dist    map[*grid.Cell]int  // cell → current best distance from root
	visited map[*grid.Cell]bool // cell → distance finalized
	pq      cellPQ              // min-heap for lazy priority queue
}

// process repeatedly extracts the frontier cell with minimum distance and
// relaxes its open passages.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable cells processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*cellItem)
		u := item.cell

		// 2) Skip stale entries for already-finalized cells.
		if r.visited[u] {
			continue
		}

		// 3) Beyond the cap nothing closer remains in the heap; stop.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u, then relax its open passages.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve distances to every passage-linked neighbor of
// u. Only directions with an open link are considered — walls are not
// edges. Each passage costs exactly 1.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u *grid.Cell) {
	base := r.dist[u]
	for _, d := range u.Links() {
		v, ok := r.g.Neighbor(u, d)
		if !ok {
			// An open link always has a neighbor by the grid's symmetry
			// invariant; nothing sensible to do if the grid was corrupted
			// mid-solve, so skip rather than invent a distance.
			continue
		}

		newDist := base + 1
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly-better check; with uniform weights the first assignment
		// is already minimal, so equal distances never re-push.
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		// Lazy decrease-key: push a fresh entry, ignore stale ones later.
		heap.Push(&r.pq, &cellItem{cell: v, dist: newDist})
	}
}

// cellItem represents a cell and its tentative distance from the root,
// stored in the priority queue.
type cellItem struct {
	cell *grid.Cell // frontier cell
	dist int        // tentative distance from root
}

// cellPQ is a min-heap of *cellItem ordered by dist ascending. Stale
// duplicates from the lazy decrease-key strategy are filtered by the
// visited set when popped.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
