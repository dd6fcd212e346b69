// Package path computes unweighted shortest paths over a structure's open
// links — the relation for solving a generated maze, as opposed to the
// tiling's theoretical adjacency.
//
// Find runs a breadth-first search from an origin and returns a Result
// mapping every link-reachable cell to its hop count and predecessor;
// unreachable cells are absent. PathTo walks predecessors back to the
// origin and returns the cells in travel order.
//
// Errors:
//
//   - ErrNilStructure: nil structure.
//   - ErrOriginUnknown: the origin is not a member of the structure.
//   - ErrDestUnreached: PathTo/DistanceTo over a cell the search never
//     reached.
package path
