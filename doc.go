// Package tessella is an in-memory engine for arbitrary planar tilings —
// square, hexagonal, triangular, and irregular alike — represented as a
// graph of cells.
//
// 🚀 What does tessella do?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Exact-identity primitives: Vertex, Edge, Link — no float equality
//		• Structure: an immutable cell/link graph with pluggable adjacency
//		• Mazes: biased growing-tree spanning trees (Default/Straight/Winding)
//		• Shortest paths: unweighted BFS over the open links + path walking
//		• Aggregation: merge cells and re-derive the union's outline by
//		  edge cancellation and loop stitching
//		• Rendering hooks: Outline/Wall/Passage classification and bridge
//		  detection for out-of-plane connections
//
// ✨ Why tessella?
//
//   - Tiling-agnostic — any comparable cell type with a Neighbors
//     capability (or a custom adjacency function) plugs in
//   - Deterministic — insertion-ordered sets and a caller-supplied
//     randomness source make every run replayable
//   - Immutable — transforming operations return new structures, so
//     independently-held values never interfere
//
// Everything is organized under per-concern subpackages:
//
//	geom/     — Vertex, Edge, Link, LinkSet identity primitives
//	tiling/   — Structure, connectivity, boundary classification, bridges
//	maze/     — biased growing-tree maze generation
//	path/     — BFS over links, distances, path reconstruction
//	combine/  — aggregate cells and boundary stitching
//	square/   — square tiling (plus a toroidal variant)
//	hex/      — pointy-top hexagonal tiling
//
// Quick example (a 2×2 square grid, one maze, one solve):
//
//	s, _ := square.New(2, 2)
//	m, _ := maze.Generate(s, maze.Rand(rand.New(rand.NewSource(1))), maze.Default)
//	res, _ := path.Find(m, square.Cell{X: 0, Y: 0})
//	route, _ := res.PathTo(square.Cell{X: 1, Y: 1})
package tessella
