package combine

import (
	"errors"
	"fmt"

	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/tiling"
)

// Sentinel errors for cell aggregation.
var (
	// ErrNilStructure indicates a nil structure was passed.
	ErrNilStructure = errors.New("combine: structure is nil")

	// ErrEmptyAggregate indicates an aggregate was requested over no cells.
	ErrEmptyAggregate = errors.New("combine: aggregate requires at least one cell")

	// ErrRecombined indicates a requested cell is already a non-trivial
	// member of an existing aggregate in the structure.
	ErrRecombined = errors.New("combine: cell already combined")

	// ErrUnknownCell indicates a requested cell has no owning aggregate in
	// the structure.
	ErrUnknownCell = errors.New("combine: cell is not part of the structure")

	// ErrInvalidGeometry indicates boundary stitching met a dangling edge
	// that no remaining edge continues.
	ErrInvalidGeometry = errors.New("combine: invalid cell geometry")
)

// Aggregate is an immutable merged cell: a non-empty set of base cells
// treated as one cell for graph and geometry purposes. Members are always
// base cells (the flattening invariant); the member order is the insertion
// order, kept for determinism.
//
// Aggregates participate in structures by pointer: within one structure
// each grouping exists as exactly one instance, so pointer identity is the
// cell identity. Set-valued equality is available through Equal and Is.
type Aggregate[C comparable] struct {
	order []C
	set   map[C]struct{}
}

// New builds an aggregate over cells, duplicates collapsed.
// Returns ErrEmptyAggregate when no cells remain.
func New[C comparable](cells ...C) (*Aggregate[C], error) {
	a := &Aggregate[C]{set: make(map[C]struct{}, len(cells))}
	for _, c := range cells {
		if _, dup := a.set[c]; dup {
			continue
		}
		a.set[c] = struct{}{}
		a.order = append(a.order, c)
	}
	if len(a.order) == 0 {
		return nil, ErrEmptyAggregate
	}
	return a, nil
}

// Cells returns the member cells in insertion order. The slice is a copy.
func (a *Aggregate[C]) Cells() []C {
	out := make([]C, len(a.order))
	copy(out, a.order)
	return out
}

// Size returns the number of member cells.
func (a *Aggregate[C]) Size() int { return len(a.order) }

// Contains reports whether c is a member.
func (a *Aggregate[C]) Contains(c C) bool {
	_, ok := a.set[c]
	return ok
}

// Is reports whether a wraps exactly the bare cell c — the sense in which
// a singleton aggregate and its underlying cell are interchangeable.
func (a *Aggregate[C]) Is(c C) bool {
	return len(a.order) == 1 && a.order[0] == c
}

// Equal reports set equality of the underlying cells.
func (a *Aggregate[C]) Equal(o *Aggregate[C]) bool {
	if o == nil || len(a.order) != len(o.order) {
		return false
	}
	for c := range a.set {
		if _, ok := o.set[c]; !ok {
			return false
		}
	}
	return true
}

// Center returns the arithmetic mean of the member centers — an
// approximation, not an area-weighted centroid. Members lacking the
// Bounded capability contribute nothing; with no bounded member the zero
// Point is returned.
func (a *Aggregate[C]) Center() geom.Point {
	pts := make([]geom.Point, 0, len(a.order))
	for _, c := range a.order {
		if b, ok := any(c).(tiling.Bounded); ok {
			pts = append(pts, b.Center())
		}
	}
	return geom.Mean(pts...)
}

// String renders the member cells, for error messages and debugging.
func (a *Aggregate[C]) String() string {
	return fmt.Sprintf("combined%v", a.order)
}
