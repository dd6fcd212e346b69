// Package maze generates perfect mazes (spanning trees) over a
// tiling.Structure using the growing-tree algorithm with a controllable
// corridor bias.
//
// What:
//
//   - Generate derives a new structure whose link set forms a spanning tree
//     of the effective-adjacency graph: |links| = |cells| − 1, every cell
//     reachable, no cycles.
//   - Bias selects which frontier cell is extended next: Default draws a
//     uniformly random index, Straight always extends the oldest entry
//     (long runs), Winding always extends the newest (depth-first, winding
//     corridors). The bias never affects which unvisited neighbor is taken.
//   - Source abstracts the randomness: wrap a *rand.Rand with Rand, or pass
//     a SourceFunc for fully deterministic, replayable generation.
//
// Why:
//
//   - The growing-tree family covers uniform, Prim-like and backtracker-like
//     mazes with one loop and one knob, and its termination is guaranteed:
//     every iteration either visits a new cell or retires a frontier entry.
//
// Errors:
//
//   - ErrNilStructure, ErrNilSource: missing inputs.
//   - ErrUnknownBias: bias value outside the declared constants.
//   - ErrDisjoint: the structure's adjacency graph is not connected, so no
//     spanning tree exists. Checked before any generation work.
package maze
