// Package combine merges sets of cells into aggregate cells whose combined
// polygonal outline is re-derived by edge cancellation.
//
// What:
//
//   - Aggregate wraps a non-empty set of base cells and satisfies the same
//     capability contract a bare cell does: it enumerates lifted adjacency
//     through its structure, exposes the union's Boundary, and a Center.
//   - Wrap lifts a structure so that every cell becomes a singleton
//     aggregate; CombineCells replaces a subset of base cells with one
//     merged aggregate, rewriting links that cross the subset's border and
//     dropping the now-interior ones; Combine does both in one call.
//   - Boundary stitching: every member contributes its clockwise boundary;
//     a segment whose exact reverse was also contributed is interior and
//     cancels; the survivors are reassembled into closed loops (several,
//     when the merged region has holes or is split).
//
// Why:
//
//   - A merged region's outline cannot be read off any single member, but
//     with exact vertex identity and consistent winding, interior segments
//     are precisely the ones appearing in both directions — cancellation
//     plus loop-following is the whole algorithm.
//
// Flattening invariant: aggregates always hold base cells, never other
// aggregates. Merging already-lifted cells unions their member sets at
// construction, so every algorithm may assume one level of nesting.
//
// Errors:
//
//   - ErrEmptyAggregate: an aggregate over no cells.
//   - ErrRecombined: a requested cell already belongs to a non-trivial
//     aggregate of the structure.
//   - ErrUnknownCell: a requested cell has no owning aggregate.
//   - ErrInvalidGeometry: stitching met a dangling, non-closable edge.
package combine
