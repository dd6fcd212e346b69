package square_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/square"
)

// TestGrid_Enumeration verifies row-major order and size validation.
func TestGrid_Enumeration(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		err  error
		want []square.Cell
	}{
		{"ZeroWidth", 0, 3, square.ErrEmptyGrid, nil},
		{"ZeroHeight", 3, 0, square.ErrEmptyGrid, nil},
		{"TwoByTwo", 2, 2, nil, []square.Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := square.Grid(tc.w, tc.h)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Grid(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
			if tc.err == nil && !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Grid(%d,%d) = %v; want %v", tc.w, tc.h, got, tc.want)
			}
		})
	}
}

// TestCell_Geometry checks boundary windings cancel across neighbors, and
// the derived center/vertex points.
func TestCell_Geometry(t *testing.T) {
	a, b := square.Cell{X: 0, Y: 0}, square.Cell{X: 1, Y: 0}

	ba, err := a.Boundary()
	if err != nil {
		t.Fatalf("Boundary: %v", err)
	}
	bb, err := b.Boundary()
	if err != nil {
		t.Fatalf("Boundary: %v", err)
	}
	if len(ba) != 4 || len(bb) != 4 {
		t.Fatalf("boundaries have %d and %d edges; want 4 each", len(ba), len(bb))
	}
	for i, e := range ba {
		if e.End != ba[(i+1)%4].Start {
			t.Errorf("boundary edge %d does not chain", i)
		}
	}

	// The shared segment appears in exact opposite directions.
	reversed := make(map[geom.Edge]bool, 4)
	for _, e := range bb {
		reversed[e.Reverse()] = true
	}
	shares := 0
	for _, e := range ba {
		if reversed[e] {
			shares++
		}
	}
	if shares != 1 {
		t.Errorf("adjacent cells share %d reversed segments; want 1", shares)
	}

	if got := a.Center(); got != (geom.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("Center = %v; want (0.5,0.5)", got)
	}
	if got := (square.Vertex{X: 2, Y: 3}).Point(); got != (geom.Point{X: 2, Y: 3}) {
		t.Errorf("Vertex.Point = %v; want (2,3)", got)
	}
}

// TestCell_Neighbors verifies the four orthogonal neighbors in N/E/S/W
// order.
func TestCell_Neighbors(t *testing.T) {
	got := square.Cell{X: 2, Y: 2}.Neighbors()
	want := []square.Cell{{2, 1}, {3, 2}, {2, 3}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors = %v; want %v", got, want)
	}
}

// TestTorus_Wrap verifies wrap-around adjacency and self-exclusion on
// degenerate sizes.
func TestTorus_Wrap(t *testing.T) {
	s, err := square.Torus(3, 3)
	if err != nil {
		t.Fatalf("Torus: %v", err)
	}
	adj := s.Adjacent(square.Cell{X: 0, Y: 0})
	if len(adj) != 4 {
		t.Fatalf("torus corner has %d neighbors; want 4", len(adj))
	}
	wantSet := map[square.Cell]bool{{0, 2}: true, {1, 0}: true, {0, 1}: true, {2, 0}: true}
	for _, nb := range adj {
		if !wantSet[nb] {
			t.Errorf("unexpected torus neighbor %v", nb)
		}
	}

	// A 1×3 torus must not report a cell as its own neighbor, nor repeat
	// the vertically wrapped one.
	thin, err := square.Torus(1, 3)
	if err != nil {
		t.Fatalf("Torus: %v", err)
	}
	adj = thin.Adjacent(square.Cell{X: 0, Y: 0})
	want := []square.Cell{{0, 2}, {0, 1}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("thin torus adjacency = %v; want %v", adj, want)
	}
}
