// Package mazegrid is an in-memory toolkit for generating rectangular
// mazes as graphs and computing shortest paths through them.
//
// 🚀 What is mazegrid?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: cells with 4-directional neighbor links (N/E/S/W)
//		• Maze carving: Binary Tree, Sidewinder, and Eller's algorithm
//		• Shortest paths: Dijkstra over the carved passage graph
//		• ASCII rendering for quick terminal inspection
//
// ✨ Why choose mazegrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every random choice flows through an injected *rand.Rand
//   - Pure algorithms – no I/O, no rendering beyond ASCII, no hidden state
//   - Extensible – functional options tune coin flips and carve probabilities
//
// Everything is organized under three subpackages:
//
//	grid/     — Cell, Grid, Direction: the 4-connected lattice and its links
//	maze/     — BinaryTree, Sidewinder, Eller: perfect-maze carvers
//	dijkstra/ — Solve & PathTo: distances and path recovery over passages
//
// Quick ASCII example (3×3 grid after Sidewinder):
//
//	+---+---+---+
//	|           |
//	+---+   +---+
//	|       |   |
//	+   +---+   +
//	|           |
//	+---+---+---+
//
// A carved maze is always a spanning tree over the lattice: exactly one
// path exists between any two cells, so Dijkstra's recovered path is unique.
package mazegrid
