package maze

import (
	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/tiling"
)

// Generate derives a structure with the same cells and a freshly computed
// link set forming a spanning tree of s's effective-adjacency graph.
//
// Growing tree: the frontier starts with the structure's first cell (the
// fixed, insertion-ordered seed). Each step picks a frontier index per the
// bias, gathers that cell's unvisited adjacency; an exhausted cell retires
// from the frontier, otherwise one unvisited neighbor is taken uniformly at
// random (the bias never affects this inner choice; a sole remaining
// neighbor is taken without consulting the source), linked, marked visited,
// and appended to the frontier. The loop ends when the frontier empties,
// having visited every cell exactly once.
//
// Returns ErrDisjoint when s is not fully connected; the check runs before
// any generation work, so a two-cluster input never mazes one cluster
// silently. The result is produced through s's rebuild hook.
//
// Complexity: O(V·d) time with d the adjacency degree, O(V) memory.
func Generate[C comparable](s *tiling.Structure[C], src Source, bias Bias) (*tiling.Structure[C], error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	if src == nil {
		return nil, ErrNilSource
	}
	switch bias {
	case Default, Straight, Winding:
	default:
		return nil, ErrUnknownBias
	}
	if !s.IsConnected() {
		return nil, ErrDisjoint
	}

	cells := s.Cells()
	visited := make(map[C]struct{}, len(cells))
	visited[cells[0]] = struct{}{}
	frontier := []C{cells[0]}
	links := make([]geom.Link[C], 0, len(cells)-1)

	for len(frontier) > 0 {
		var at int
		switch bias {
		case Straight:
			at = 0
		case Winding:
			at = len(frontier) - 1
		default:
			at = src.Intn(0, len(frontier))
		}
		cur := frontier[at]

		var open []C
		for _, nb := range s.Adjacent(cur) {
			if _, seen := visited[nb]; !seen {
				open = append(open, nb)
			}
		}
		if len(open) == 0 {
			frontier = append(frontier[:at], frontier[at+1:]...)
			continue
		}

		next := open[0]
		if len(open) > 1 {
			next = open[src.Intn(0, len(open))]
		}
		l, err := geom.NewLink(cur, next)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
		visited[next] = struct{}{}
		frontier = append(frontier, next)
	}

	return s.WithLinkSet(links)
}
