package tiling

import (
	"fmt"

	"github.com/tessella/tessella/geom"
)

// Structure is an immutable graph over the cells of a planar tiling.
//
// Cells are kept in insertion order so that every operation over a
// Structure is deterministic; the link set is orientation-insensitive.
// Transforming operations never mutate a Structure; they derive a new one
// through the rebuild hook.
type Structure[C comparable] struct {
	order   []C
	members map[C]struct{}
	links   *geom.LinkSet[C]
	linked  map[C][]C // link-neighbors per cell, link insertion order

	adjacency func(C) []C       // nil → Neighbored capability
	bridge    func(a, b C) bool // nil → geometric default
	rebuild   Rebuild[C]        // nil → copy options
}

// New builds a Structure over cells. Duplicate cells collapse (first
// occurrence wins the ordering). Returns ErrNoCells for an empty set,
// ErrUnknownCell when a seeded link's endpoint is not a member, and
// ErrNoAdjacency when the cells expose no Neighbored capability and no
// WithAdjacency option was given.
//
// Complexity: O(|cells| + |links|).
func New[C comparable](cells []C, opts ...Option[C]) (*Structure[C], error) {
	var cfg config[C]
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Structure[C]{
		order:     make([]C, 0, len(cells)),
		members:   make(map[C]struct{}, len(cells)),
		adjacency: cfg.adjacency,
		bridge:    cfg.bridge,
		rebuild:   cfg.rebuild,
	}
	for _, c := range cells {
		if _, dup := s.members[c]; dup {
			continue
		}
		s.members[c] = struct{}{}
		s.order = append(s.order, c)
	}
	if len(s.order) == 0 {
		return nil, ErrNoCells
	}

	if s.adjacency == nil {
		if _, ok := any(s.order[0]).(Neighbored[C]); !ok {
			return nil, ErrNoAdjacency
		}
	}

	if err := s.setLinks(cfg.links); err != nil {
		return nil, err
	}
	return s, nil
}

// setLinks installs the link set and the per-cell link-neighbor index.
func (s *Structure[C]) setLinks(links []geom.Link[C]) error {
	s.links = geom.NewLinkSet[C]()
	s.linked = make(map[C][]C, len(s.order))
	for _, l := range links {
		a, b := l.Ends()
		if !s.Contains(a) {
			return fmt.Errorf("%w: link endpoint %v", ErrUnknownCell, a)
		}
		if !s.Contains(b) {
			return fmt.Errorf("%w: link endpoint %v", ErrUnknownCell, b)
		}
		if s.links.Add(l) {
			s.linked[a] = append(s.linked[a], b)
			s.linked[b] = append(s.linked[b], a)
		}
	}
	return nil
}

// Len returns the number of cells.
func (s *Structure[C]) Len() int { return len(s.order) }

// Cells returns the cells in insertion order. The slice is a copy.
func (s *Structure[C]) Cells() []C {
	out := make([]C, len(s.order))
	copy(out, s.order)
	return out
}

// Contains reports whether c is a member of the structure.
func (s *Structure[C]) Contains(c C) bool {
	_, ok := s.members[c]
	return ok
}

// Links returns the open links in insertion order.
func (s *Structure[C]) Links() []geom.Link[C] { return s.links.Links() }

// HasLink reports whether a link between a and b (in either orientation) is
// open.
func (s *Structure[C]) HasLink(a, b C) bool {
	l, err := geom.NewLink(a, b)
	if err != nil {
		return false
	}
	return s.links.Has(l)
}

// Linked returns the cells reachable from c through one open link, in link
// insertion order. Returns nil when c is not a member.
func (s *Structure[C]) Linked(c C) []C {
	nbs := s.linked[c]
	out := make([]C, len(nbs))
	copy(out, nbs)
	return out
}

// Adjacent returns c's effective adjacency: the custom adjacency function
// when one was supplied, otherwise c's own Neighbors capability, filtered
// in both cases to cells that are members of the structure. Returns nil
// when c is not a member.
func (s *Structure[C]) Adjacent(c C) []C {
	if !s.Contains(c) {
		return nil
	}
	var raw []C
	switch {
	case s.adjacency != nil:
		raw = s.adjacency(c)
	default:
		n, ok := any(c).(Neighbored[C])
		if !ok {
			return nil
		}
		raw = n.Neighbors()
	}
	out := make([]C, 0, len(raw))
	for _, nb := range raw {
		if s.Contains(nb) && nb != c {
			out = append(out, nb)
		}
	}
	return out
}

// IsConnected reports whether a breadth-first traversal over effective
// adjacency from the first cell reaches every cell.
//
// Complexity: O(V + E) over the adjacency graph.
func (s *Structure[C]) IsConnected() bool {
	seen := make(map[C]struct{}, len(s.order))
	queue := []C{s.order[0]}
	seen[s.order[0]] = struct{}{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range s.Adjacent(cur) {
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}
	return len(seen) == len(s.order)
}

// WithLinkSet derives a structure with the same cells and a new link set,
// produced through the rebuild hook so specialized grids keep their wiring.
func (s *Structure[C]) WithLinkSet(links []geom.Link[C]) (*Structure[C], error) {
	return s.Rebuild(s.Cells(), links)
}

// Rebuild produces a structure over (cells, links) through the installed
// factory hook; without one, the new structure inherits this structure's
// adjacency, bridge, and rebuild configuration.
func (s *Structure[C]) Rebuild(cells []C, links []geom.Link[C]) (*Structure[C], error) {
	if s.rebuild != nil {
		return s.rebuild(cells, links)
	}
	next := &Structure[C]{
		order:     make([]C, 0, len(cells)),
		members:   make(map[C]struct{}, len(cells)),
		adjacency: s.adjacency,
		bridge:    s.bridge,
	}
	for _, c := range cells {
		if _, dup := next.members[c]; dup {
			continue
		}
		next.members[c] = struct{}{}
		next.order = append(next.order, c)
	}
	if len(next.order) == 0 {
		return nil, ErrNoCells
	}
	if err := next.setLinks(links); err != nil {
		return nil, err
	}
	return next, nil
}
