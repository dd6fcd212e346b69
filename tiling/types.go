// Package tiling types: capability contracts, boundary classification,
// sentinel errors, and functional options for Structure construction.
package tiling

import (
	"errors"

	"github.com/tessella/tessella/geom"
)

// Sentinel errors for structure operations.
var (
	// ErrNoCells indicates construction was attempted over an empty cell set.
	ErrNoCells = errors.New("tiling: structure requires at least one cell")

	// ErrNoAdjacency indicates the cells expose no Neighbored capability and
	// no WithAdjacency option was supplied.
	ErrNoAdjacency = errors.New("tiling: no adjacency source for cells")

	// ErrUnknownCell indicates a link endpoint or query target is not a
	// member of the structure.
	ErrUnknownCell = errors.New("tiling: cell is not part of the structure")

	// ErrNoBoundary indicates a cell lacks the Bounded capability where
	// classification or bridge detection requires one.
	ErrNoBoundary = errors.New("tiling: cell does not expose a boundary")
)

// Neighbored is the adjacency capability: a cell enumerates the cells that
// are theoretically adjacent to it, in a deterministic order. Results that
// fall outside a structure's cell set are filtered out by the structure.
//
// If A lists B, graph algorithms assume B can also reach A; strict symmetry
// is the tile author's responsibility.
type Neighbored[C any] interface {
	Neighbors() []C
}

// Bounded is the geometry capability: a cell exposes its boundary as a
// closed, consistently wound (clockwise) sequence of directed edges, plus a
// center point. Boundary returns an error so that aggregate cells, whose
// outline is derived, can satisfy the same interface; concrete tile types
// simply return a nil error.
type Bounded interface {
	Boundary() ([]geom.Edge, error)
	Center() geom.Point
}

// Kind classifies one boundary segment of one cell for rendering.
type Kind uint8

const (
	// Outline marks a segment bordering exactly one cell: the exterior of
	// the whole structure.
	Outline Kind = iota
	// Wall marks a segment between two cells with no link between them.
	Wall
	// Passage marks a segment between two linked cells.
	Passage
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case Outline:
		return "Outline"
	case Wall:
		return "Wall"
	case Passage:
		return "Passage"
	}
	return "Kind(?)"
}

// Segment is one classified boundary edge of a cell. Neighbor is the cell
// on the far side of the segment; it is the zero value when Kind is Outline.
type Segment[C comparable] struct {
	Edge     geom.Edge
	Kind     Kind
	Neighbor C
}

// Rebuild is the factory hook through which every derived structure is
// produced. Specialized grids (toroidal wrap, composite tilings) supply one
// so that transformed results keep their specialized wiring; the default
// rebuild copies the originating structure's options.
type Rebuild[C comparable] func(cells []C, links []geom.Link[C]) (*Structure[C], error)

// config collects resolved construction options.
type config[C comparable] struct {
	links     []geom.Link[C]
	adjacency func(C) []C
	bridge    func(a, b C) bool
	rebuild   Rebuild[C]
}

// Option configures a Structure at construction time.
type Option[C comparable] func(*config[C])

// WithLinks seeds the structure's link set. Endpoints must be members of
// the cell set; duplicates (in either orientation) collapse.
func WithLinks[C comparable](links ...geom.Link[C]) Option[C] {
	return func(c *config[C]) { c.links = append(c.links, links...) }
}

// WithAdjacency overrides the effective-adjacency relation. The function's
// results are still filtered to the structure's members. When absent, each
// cell's own Neighbored capability is used.
func WithAdjacency[C comparable](fn func(C) []C) Option[C] {
	return func(c *config[C]) {
		if fn != nil {
			c.adjacency = fn
		}
	}
}

// WithBridge overrides the bridge predicate: fn reports whether a link
// between two cells has no geometric adjacency and must be rendered
// out-of-plane. When absent, two cells count as geometrically adjacent when
// one's boundary contains the exact reverse of a segment of the other's.
func WithBridge[C comparable](fn func(a, b C) bool) Option[C] {
	return func(c *config[C]) {
		if fn != nil {
			c.bridge = fn
		}
	}
}

// WithRebuild installs the factory hook used by every transforming
// operation (maze generation, re-linking) to produce its result.
func WithRebuild[C comparable](fn Rebuild[C]) Option[C] {
	return func(c *config[C]) {
		if fn != nil {
			c.rebuild = fn
		}
	}
}
