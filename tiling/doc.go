// Package tiling provides Structure, an immutable graph over the cells of
// an arbitrary planar tiling.
//
// What:
//
//   - Structure owns a cell set and a link set (the "open passages"), plus
//     an effective-adjacency function describing which cells could ever be
//     connected. The two relations are deliberately distinct: adjacency is
//     the tiling's theoretical neighbor relation, links are the subset a
//     maze generator (or the caller) has actually opened.
//   - IsConnected checks the effective-adjacency graph is one component.
//   - Classify labels every boundary segment of every cell as Outline
//     (exterior of the whole structure), Wall (two unlinked cells), or
//     Passage (two linked cells): the only rendering-relevant decision a
//     renderer cannot make on its own.
//   - IsBridge flags links between cells that share no boundary segment
//     (wrap-around connections a renderer must draw out-of-plane).
//
// Why:
//
//   - Square, hexagonal, triangular and irregular tilings differ only in
//     their coordinate enumeration; every graph algorithm over them is the
//     same. Structure is generic over any comparable cell type exposing the
//     Neighbored capability (or a custom adjacency function).
//
// Concurrency:
//
//   - A Structure never mutates after construction; transforming operations
//     return new values. Concurrent readers need no locking.
//
// Errors:
//
//   - ErrNoCells: construction over an empty cell set.
//   - ErrNoAdjacency: no adjacency source (neither capability nor option).
//   - ErrUnknownCell: a link endpoint or query target is not a member.
//   - ErrNoBoundary: a cell lacks the Bounded capability where one is
//     required.
package tiling
