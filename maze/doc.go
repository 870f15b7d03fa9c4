// Package maze carves perfect mazes into a grid.Grid using one of three
// classic algorithms: Binary Tree, Sidewinder, and Eller's algorithm.
//
// What:
//
//   - BinaryTree: per cell, open one passage toward North or East at random.
//   - Sidewinder: grow horizontal "runs" per row, closing each run with a
//     random northward passage.
//   - Eller: per-row set partition (union-find) with random horizontal
//     merges and mandatory southward carries.
//
// Every generator mutates the grid in place and leaves a perfect maze:
// a spanning tree over the lattice with exactly rows×cols−1 open passages
// and every cell reachable from every other.
//
// Why:
//
//   - BinaryTree is the simplest possible carver; its bias (unbroken
//     corridors along the top row and east column) makes it a good
//     reference for testing the rest of the pipeline.
//   - Sidewinder keeps the top-row corridor but randomizes vertical
//     connectivity per run instead of per cell.
//   - Eller works one row at a time and produces the least biased texture
//     of the three.
//
// Complexity (R = rows, C = cols):
//
//   - BinaryTree: O(R×C) time, O(1) extra memory.
//   - Sidewinder: O(R×C) time, O(C) extra memory (the current run).
//   - Eller:      O(R×C×α(C)) time, O(C) extra memory (per-row partition).
//
// Options:
//
//   - WithSeed / WithRand: deterministic randomness; seed 0 maps to a
//     fixed default seed so the zero value is still reproducible.
//   - WithBranchProbability: the Sidewinder close-run coin and Eller's
//     horizontal-merge chance (default 0.5).
//   - WithSouthLinkProbability: Eller's chance of carving extra southward
//     passages beyond the mandatory one per set (default 0.5).
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was passed to a generator.
//
// Determinism:
//
//	Generators traverse the grid in the fixed row-major order of
//	grid.EachRow/EachCell, so a fixed seed yields an identical maze on
//	every run and platform.
package maze
