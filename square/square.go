// Package square provides the square tiling: the reference implementation
// of the capability contract the engine consumes. Cells and vertices are
// identified by integer coordinates; boundaries wind clockwise in screen
// coordinates (y grows downward).
package square

import (
	"errors"

	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/tiling"
)

// ErrEmptyGrid indicates a grid was requested with no rows or no columns.
var ErrEmptyGrid = errors.New("square: grid must have at least one row and one column")

// Vertex is a lattice corner. Its identity is the integer coordinate pair;
// the rendering Point is derived from it.
type Vertex struct {
	X, Y int
}

// Point derives the vertex's coordinate.
func (v Vertex) Point() geom.Point {
	return geom.Point{X: float64(v.X), Y: float64(v.Y)}
}

// Cell is one unit square, identified by the coordinates of its top-left
// corner.
type Cell struct {
	X, Y int
}

// Neighbors enumerates the four orthogonally adjacent cells (N, E, S, W).
// The structure filters out the ones beyond the grid's extent.
func (c Cell) Neighbors() []Cell {
	return []Cell{
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
	}
}

// Boundary returns the cell's four edges, clockwise from the top-left
// corner. Horizontally or vertically adjacent cells traverse their shared
// segment in opposite directions.
func (c Cell) Boundary() ([]geom.Edge, error) {
	nw := Vertex{c.X, c.Y}
	ne := Vertex{c.X + 1, c.Y}
	se := Vertex{c.X + 1, c.Y + 1}
	sw := Vertex{c.X, c.Y + 1}
	return []geom.Edge{
		{Start: nw, End: ne},
		{Start: ne, End: se},
		{Start: se, End: sw},
		{Start: sw, End: nw},
	}, nil
}

// Center returns the cell's midpoint.
func (c Cell) Center() geom.Point {
	return geom.Point{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Grid enumerates a w×h rectangle of cells in row-major order.
// Returns ErrEmptyGrid when either dimension is below one.
func Grid(w, h int) ([]Cell, error) {
	if w < 1 || h < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([]Cell, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells, nil
}

// New builds a structure over a w×h grid using the cells' own Neighbors
// capability.
func New(w, h int, opts ...tiling.Option[Cell]) (*tiling.Structure[Cell], error) {
	cells, err := Grid(w, h)
	if err != nil {
		return nil, err
	}
	return tiling.New(cells, opts...)
}

// Torus builds a w×h grid whose left/right and top/bottom edges wrap
// around. Wrap connections join cells that share no boundary segment, so
// they classify as bridges; the wiring survives every derived structure
// (mazes, re-links) because it travels with the options.
func Torus(w, h int, opts ...tiling.Option[Cell]) (*tiling.Structure[Cell], error) {
	cells, err := Grid(w, h)
	if err != nil {
		return nil, err
	}
	wrap := func(c Cell) []Cell {
		var out []Cell
		seen := map[Cell]struct{}{c: {}}
		for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			nb := Cell{X: mod(c.X+d[0], w), Y: mod(c.Y+d[1], h)}
			if _, dup := seen[nb]; dup {
				continue
			}
			seen[nb] = struct{}{}
			out = append(out, nb)
		}
		return out
	}
	// A wrap link spans more than one unit in some axis.
	bridge := func(a, b Cell) bool {
		dx, dy := a.X-b.X, a.Y-b.Y
		return dx < -1 || dx > 1 || dy < -1 || dy > 1
	}
	all := []tiling.Option[Cell]{
		tiling.WithAdjacency(wrap),
		tiling.WithBridge(bridge),
	}
	all = append(all, opts...)
	return tiling.New(cells, all...)
}

// mod is the non-negative remainder.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
