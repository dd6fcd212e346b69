package geom

import "errors"

// ErrSameEndpoints indicates a Link was requested over two equal values.
var ErrSameEndpoints = errors.New("geom: link endpoints must be distinct")

// Link is an unordered pair of two distinct values of a comparable type.
// Link(a, b) and Link(b, a) denote the same relation; use Equal (or a
// LinkSet) rather than == to compare links from independent sources.
type Link[T comparable] struct {
	a, b T
}

// NewLink builds the unordered pair {a, b}.
// Returns ErrSameEndpoints when a == b.
func NewLink[T comparable](a, b T) (Link[T], error) {
	if a == b {
		return Link[T]{}, ErrSameEndpoints
	}
	return Link[T]{a: a, b: b}, nil
}

// Ends returns both elements in construction order.
func (l Link[T]) Ends() (T, T) {
	return l.a, l.b
}

// Contains reports whether v is one of the link's elements.
func (l Link[T]) Contains(v T) bool {
	return l.a == v || l.b == v
}

// Other returns the element opposite v, and whether v belongs to the link
// at all.
func (l Link[T]) Other(v T) (T, bool) {
	switch v {
	case l.a:
		return l.b, true
	case l.b:
		return l.a, true
	}
	var zero T
	return zero, false
}

// Equal reports whether l and o connect the same two elements, in either
// order.
func (l Link[T]) Equal(o Link[T]) bool {
	return l == o || l == o.swapped()
}

// swapped returns the link with its elements in the opposite order.
func (l Link[T]) swapped() Link[T] {
	return Link[T]{a: l.b, b: l.a}
}

// LinkSet is an insertion-ordered set of links. Membership is
// orientation-insensitive: a set holding {a, b} also reports {b, a}.
// The zero value is not usable; construct with NewLinkSet.
type LinkSet[T comparable] struct {
	order []Link[T]
	index map[Link[T]]struct{}
}

// NewLinkSet builds a set containing the given links, duplicates collapsed.
func NewLinkSet[T comparable](links ...Link[T]) *LinkSet[T] {
	s := &LinkSet[T]{index: make(map[Link[T]]struct{}, len(links))}
	for _, l := range links {
		s.Add(l)
	}
	return s
}

// Add inserts l, reporting whether the set grew. A link already present in
// the opposite orientation counts as a duplicate.
func (s *LinkSet[T]) Add(l Link[T]) bool {
	if s.Has(l) {
		return false
	}
	s.index[l] = struct{}{}
	s.order = append(s.order, l)
	return true
}

// Has reports whether l (in either orientation) is in the set.
func (s *LinkSet[T]) Has(l Link[T]) bool {
	if _, ok := s.index[l]; ok {
		return true
	}
	_, ok := s.index[l.swapped()]
	return ok
}

// Len returns the number of links in the set.
func (s *LinkSet[T]) Len() int {
	return len(s.order)
}

// Links returns the set's links in insertion order. The slice is a copy.
func (s *LinkSet[T]) Links() []Link[T] {
	out := make([]Link[T], len(s.order))
	copy(out, s.order)
	return out
}
