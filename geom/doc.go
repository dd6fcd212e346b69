// Package geom provides the exact-identity primitives a planar tiling is
// built from: Vertex, Edge, Link, and LinkSet.
//
// What:
//
//   - Vertex is a comparable identity token with a derived floating-point
//     Point; equality is decided by the token, never by coordinates.
//   - Edge is a direction-sensitive pair of vertices (a boundary segment).
//   - Link is an unordered pair of two distinct values, used both as a
//     cell-adjacency relation and as a vertex-adjacency relation.
//   - LinkSet is an insertion-ordered, orientation-insensitive set of Links.
//
// Why:
//
//   - Comparing float64 positions for equality is a classic source of
//     almost-touching geometry bugs; tilings instead name their points with
//     integer/enum coordinates and derive positions from them.
//   - Boundary stitching and wall classification both rely on the exact
//     reverse of a shared segment appearing in the neighboring cell, which
//     only works when vertex identity is exact.
//
// Errors:
//
//   - ErrSameEndpoints: a Link (or a degenerate Edge's Link) was requested
//     over two equal values.
package geom
