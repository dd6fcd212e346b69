package geom_test

import (
	"errors"
	"testing"

	"github.com/tessella/tessella/geom"
)

// TestNewLink_Distinct verifies that links require two distinct elements.
func TestNewLink_Distinct(t *testing.T) {
	if _, err := geom.NewLink(7, 7); !errors.Is(err, geom.ErrSameEndpoints) {
		t.Errorf("NewLink(7,7) error = %v; want ErrSameEndpoints", err)
	}
	l, err := geom.NewLink("a", "b")
	if err != nil {
		t.Fatalf("NewLink(a,b) unexpected error: %v", err)
	}
	a, b := l.Ends()
	if a != "a" || b != "b" {
		t.Errorf("Ends() = (%v,%v); want (a,b)", a, b)
	}
}

// TestLink_OrderIndependence verifies Equal ignores element order.
func TestLink_OrderIndependence(t *testing.T) {
	ab, _ := geom.NewLink(1, 2)
	ba, _ := geom.NewLink(2, 1)
	ac, _ := geom.NewLink(1, 3)

	if !ab.Equal(ba) {
		t.Error("Link(1,2) should equal Link(2,1)")
	}
	if !ab.Equal(ab) {
		t.Error("Link(1,2) should equal itself")
	}
	if ab.Equal(ac) {
		t.Error("Link(1,2) should not equal Link(1,3)")
	}
}

// TestLink_ContainsOther exercises membership and the opposite-element
// lookup.
func TestLink_ContainsOther(t *testing.T) {
	l, _ := geom.NewLink("x", "y")
	if !l.Contains("x") || !l.Contains("y") || l.Contains("z") {
		t.Error("Contains misreports membership")
	}
	if o, ok := l.Other("x"); !ok || o != "y" {
		t.Errorf("Other(x) = (%v,%v); want (y,true)", o, ok)
	}
	if o, ok := l.Other("y"); !ok || o != "x" {
		t.Errorf("Other(y) = (%v,%v); want (x,true)", o, ok)
	}
	if _, ok := l.Other("z"); ok {
		t.Error("Other(z) should report false")
	}
}

// TestLinkSet_OrientationDedup verifies that a set collapses a link added
// in both orientations and keeps insertion order.
func TestLinkSet_OrientationDedup(t *testing.T) {
	ab, _ := geom.NewLink("a", "b")
	ba, _ := geom.NewLink("b", "a")
	bc, _ := geom.NewLink("b", "c")

	s := geom.NewLinkSet(ab, ba, bc, bc)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", s.Len())
	}
	if !s.Has(ab) || !s.Has(ba) || !s.Has(bc) {
		t.Error("Has should be orientation-insensitive")
	}
	got := s.Links()
	if !got[0].Equal(ab) || !got[1].Equal(bc) {
		t.Errorf("Links() = %v; want insertion order [ab bc]", got)
	}
}
