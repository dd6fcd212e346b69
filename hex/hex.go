// Package hex provides a pointy-top hexagonal tiling over axial
// coordinates. Cells satisfy the same Neighbors/Boundary/Center capability
// contract as the square tiling.
//
// Corner identity: every hex corner is shared by three hexes, so corners
// are named canonically as the Top or Bottom vertex of exactly one hex.
// The remaining four corners of a cell are the Top/Bottom vertices of its
// neighbors, which is what lets shared segments cancel exactly.
package hex

import (
	"errors"
	"math"

	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/tiling"
)

// ErrEmptyGrid indicates an enumeration was requested with no rows or no
// columns.
var ErrEmptyGrid = errors.New("hex: grid must have at least one row and one column")

// sqrt3 is the horizontal unit of the pointy-top axial lattice.
var sqrt3 = math.Sqrt(3)

// Pos names which of a hex's two owned corners a vertex is.
type Pos uint8

const (
	// Top is the corner directly above the hex center.
	Top Pos = iota
	// Bottom is the corner directly below the hex center.
	Bottom
)

// Vertex is one canonical hex corner: the Top or Bottom corner of the hex
// at axial (Q, R).
type Vertex struct {
	Q, R int
	Pos  Pos
}

// Point derives the corner coordinate on the y-up, unit-circumradius
// lattice.
func (v Vertex) Point() geom.Point {
	c := center(v.Q, v.R)
	switch v.Pos {
	case Top:
		return geom.Point{X: c.X, Y: c.Y + 1}
	case Bottom:
		return geom.Point{X: c.X, Y: c.Y - 1}
	}
	panic("hex: invalid vertex position")
}

// center is the axial-to-plane mapping for a unit circumradius hex.
func center(q, r int) geom.Point {
	return geom.Point{
		X: sqrt3 * (float64(q) + float64(r)/2),
		Y: 1.5 * float64(r),
	}
}

// Cell is one hexagon at axial coordinates (Q, R).
type Cell struct {
	Q, R int
}

// Neighbors enumerates the six adjacent hexes, counterclockwise from east.
func (c Cell) Neighbors() []Cell {
	return []Cell{
		{c.Q + 1, c.R},
		{c.Q + 1, c.R - 1},
		{c.Q, c.R - 1},
		{c.Q - 1, c.R},
		{c.Q - 1, c.R + 1},
		{c.Q, c.R + 1},
	}
}

// Center returns the hex's center point.
func (c Cell) Center() geom.Point {
	return center(c.Q, c.R)
}

// Boundary returns the six edges clockwise from the top corner. The corner
// between Top and Bottom positions of neighboring hexes follows the
// canonical naming, so adjacent hexes traverse their shared segment in
// opposite directions.
func (c Cell) Boundary() ([]geom.Edge, error) {
	corners := [6]geom.Vertex{
		Vertex{Q: c.Q, R: c.R, Pos: Top},
		Vertex{Q: c.Q, R: c.R + 1, Pos: Bottom},
		Vertex{Q: c.Q + 1, R: c.R - 1, Pos: Top},
		Vertex{Q: c.Q, R: c.R, Pos: Bottom},
		Vertex{Q: c.Q, R: c.R - 1, Pos: Top},
		Vertex{Q: c.Q - 1, R: c.R + 1, Pos: Bottom},
	}
	edges := make([]geom.Edge, 6)
	for i := range corners {
		edges[i] = geom.Edge{Start: corners[i], End: corners[(i+1)%6]}
	}
	return edges, nil
}

// Parallelogram enumerates a w×h axial parallelogram of cells, row-major
// over R then Q. Returns ErrEmptyGrid when either dimension is below one.
func Parallelogram(w, h int) ([]Cell, error) {
	if w < 1 || h < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([]Cell, 0, w*h)
	for r := 0; r < h; r++ {
		for q := 0; q < w; q++ {
			cells = append(cells, Cell{Q: q, R: r})
		}
	}
	return cells, nil
}

// New builds a structure over a w×h parallelogram using the cells' own
// Neighbors capability.
func New(w, h int, opts ...tiling.Option[Cell]) (*tiling.Structure[Cell], error) {
	cells, err := Parallelogram(w, h)
	if err != nil {
		return nil, err
	}
	return tiling.New(cells, opts...)
}
