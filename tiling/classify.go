package tiling

import (
	"fmt"

	"github.com/tessella/tessella/geom"
)

// boundaryOf asserts the Bounded capability on c and returns its boundary.
func boundaryOf[C comparable](c C) ([]geom.Edge, error) {
	b, ok := any(c).(Bounded)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoBoundary, c)
	}
	edges, err := b.Boundary()
	if err != nil {
		return nil, fmt.Errorf("tiling: boundary of %v: %w", c, err)
	}
	return edges, nil
}

// Classify labels every boundary segment of every cell as Outline, Wall, or
// Passage, keyed by cell, segments in boundary order.
//
// A segment shared by two cells appears in both boundaries as exact
// reverses of each other (consistent winding), so the cell across a segment
// is found by looking its reverse up in a directed-edge index. Requires
// every cell to be Bounded.
//
// Complexity: O(Σ boundary lengths).
func (s *Structure[C]) Classify() (map[C][]Segment[C], error) {
	boundaries := make(map[C][]geom.Edge, len(s.order))
	owner := make(map[geom.Edge]C)
	for _, c := range s.order {
		edges, err := boundaryOf(c)
		if err != nil {
			return nil, err
		}
		boundaries[c] = edges
		for _, e := range edges {
			if _, taken := owner[e]; !taken {
				owner[e] = c
			}
		}
	}

	out := make(map[C][]Segment[C], len(s.order))
	for _, c := range s.order {
		edges := boundaries[c]
		segs := make([]Segment[C], 0, len(edges))
		for _, e := range edges {
			seg := Segment[C]{Edge: e, Kind: Outline}
			if nb, ok := owner[e.Reverse()]; ok && nb != c {
				seg.Neighbor = nb
				seg.Kind = Wall
				if s.HasLink(c, nb) {
					seg.Kind = Passage
				}
			}
			segs = append(segs, seg)
		}
		out[c] = segs
	}
	return out, nil
}

// Bridge reports whether a link between a and b would have no geometric
// adjacency (no shared boundary segment) and so must be rendered
// out-of-plane. A WithBridge predicate, when installed, decides instead;
// toroidal grids use this to flag their wrap-around connections.
func (s *Structure[C]) Bridge(a, b C) (bool, error) {
	if !s.Contains(a) {
		return false, fmt.Errorf("%w: %v", ErrUnknownCell, a)
	}
	if !s.Contains(b) {
		return false, fmt.Errorf("%w: %v", ErrUnknownCell, b)
	}
	if s.bridge != nil {
		return s.bridge(a, b), nil
	}
	ea, err := boundaryOf(a)
	if err != nil {
		return false, err
	}
	eb, err := boundaryOf(b)
	if err != nil {
		return false, err
	}
	shared := make(map[geom.Edge]struct{}, len(eb))
	for _, e := range eb {
		shared[e] = struct{}{}
	}
	for _, e := range ea {
		if _, ok := shared[e.Reverse()]; ok {
			return false, nil
		}
	}
	return true, nil
}

// IsBridge reports whether the given link connects two cells that share no
// boundary segment.
func (s *Structure[C]) IsBridge(l geom.Link[C]) (bool, error) {
	a, b := l.Ends()
	return s.Bridge(a, b)
}
