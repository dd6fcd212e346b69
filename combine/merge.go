package combine

import (
	"fmt"

	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/tiling"
)

// Wrap lifts a structure so that every cell becomes a singleton aggregate.
// Links and effective adjacency carry over through the owner mapping; extra
// options (a toroidal bridge predicate, a rebuild hook) may be passed
// through to the lifted structure.
//
// Lifting makes the bare-vs-combined distinction explicit in the type:
// all further combination happens on lifted structures.
func Wrap[C comparable](s *tiling.Structure[C], opts ...tiling.Option[*Aggregate[C]]) (*tiling.Structure[*Aggregate[C]], error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	cells := s.Cells()
	owners := make(map[C]*Aggregate[C], len(cells))
	lifted := make([]*Aggregate[C], len(cells))
	for i, c := range cells {
		a, err := New(c)
		if err != nil {
			return nil, err
		}
		lifted[i] = a
		owners[c] = a
	}

	links := make([]geom.Link[*Aggregate[C]], 0, len(s.Links()))
	for _, l := range s.Links() {
		a, b := l.Ends()
		nl, err := geom.NewLink(owners[a], owners[b])
		if err != nil {
			return nil, err
		}
		links = append(links, nl)
	}

	// Lifted adjacency: the owners of each member's base adjacency.
	adjacency := func(x *Aggregate[C]) []*Aggregate[C] {
		var out []*Aggregate[C]
		seen := make(map[*Aggregate[C]]struct{})
		for _, m := range x.Cells() {
			for _, nb := range s.Adjacent(m) {
				o := owners[nb]
				if o == nil || o == x {
					continue
				}
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}
				out = append(out, o)
			}
		}
		return out
	}

	all := []tiling.Option[*Aggregate[C]]{
		tiling.WithLinks(links...),
		tiling.WithAdjacency(adjacency),
	}
	all = append(all, opts...)
	return tiling.New(lifted, all...)
}

// CombineCells replaces the requested base cells of a lifted structure with
// one merged aggregate. Links with exactly one endpoint inside the subset
// are rewritten to the merged aggregate (duplicates collapse), links with
// both endpoints inside are dropped as interior, and links outside are kept
// untouched.
//
// Returns ErrUnknownCell when a requested cell has no owner in s, and
// ErrRecombined when its owner is already a non-trivial aggregate.
func CombineCells[C comparable](s *tiling.Structure[*Aggregate[C]], cells []C, opts ...tiling.Option[*Aggregate[C]]) (*tiling.Structure[*Aggregate[C]], error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	if len(cells) == 0 {
		return nil, ErrEmptyAggregate
	}

	owners := make(map[C]*Aggregate[C])
	for _, a := range s.Cells() {
		for _, m := range a.Cells() {
			owners[m] = a
		}
	}

	targets := make(map[*Aggregate[C]]struct{}, len(cells))
	targetOrder := make([]*Aggregate[C], 0, len(cells))
	for _, c := range cells {
		o, ok := owners[c]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownCell, c)
		}
		if o.Size() > 1 {
			return nil, fmt.Errorf("%w: %v in %v", ErrRecombined, c, o)
		}
		if _, dup := targets[o]; dup {
			continue
		}
		targets[o] = struct{}{}
		targetOrder = append(targetOrder, o)
	}
	merged, err := New(cells...)
	if err != nil {
		return nil, err
	}
	lift := func(x *Aggregate[C]) *Aggregate[C] {
		if _, hit := targets[x]; hit {
			return merged
		}
		return x
	}

	// Cell set: merged replaces the first target, other targets drop out.
	old := s.Cells()
	next := make([]*Aggregate[C], 0, len(old))
	placed := false
	for _, a := range old {
		if _, hit := targets[a]; hit {
			if !placed {
				next = append(next, merged)
				placed = true
			}
			continue
		}
		next = append(next, a)
	}

	// Link set: endpoints mapped through lift; interior links vanish.
	links := make([]geom.Link[*Aggregate[C]], 0, len(s.Links()))
	for _, l := range s.Links() {
		a, b := l.Ends()
		la, lb := lift(a), lift(b)
		if la == lb {
			continue
		}
		nl, lerr := geom.NewLink(la, lb)
		if lerr != nil {
			return nil, lerr
		}
		links = append(links, nl)
	}

	// Adjacency of the combined structure, derived from s's lifted relation.
	adjacency := func(x *Aggregate[C]) []*Aggregate[C] {
		sources := []*Aggregate[C]{x}
		if x == merged {
			sources = targetOrder
		}
		var out []*Aggregate[C]
		seen := make(map[*Aggregate[C]]struct{})
		for _, src := range sources {
			for _, nb := range s.Adjacent(src) {
				o := lift(nb)
				if o == x {
					continue
				}
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}
				out = append(out, o)
			}
		}
		return out
	}

	all := []tiling.Option[*Aggregate[C]]{
		tiling.WithLinks(links...),
		tiling.WithAdjacency(adjacency),
	}
	all = append(all, opts...)
	return tiling.New(next, all...)
}

// Combine lifts a bare structure and combines the requested cells in one
// call. It is the usual entry point for a first combination.
func Combine[C comparable](s *tiling.Structure[C], cells []C, opts ...tiling.Option[*Aggregate[C]]) (*tiling.Structure[*Aggregate[C]], error) {
	w, err := Wrap(s)
	if err != nil {
		return nil, err
	}
	return CombineCells(w, cells, opts...)
}
