package path

import (
	"errors"
	"fmt"

	"github.com/tessella/tessella/tiling"
)

// Sentinel errors for shortest-path queries.
var (
	// ErrNilStructure indicates a nil structure was passed.
	ErrNilStructure = errors.New("path: structure is nil")

	// ErrOriginUnknown indicates the origin cell is not a member of the
	// structure.
	ErrOriginUnknown = errors.New("path: origin is not part of the structure")

	// ErrDestUnreached indicates the requested destination was not reached
	// by the search.
	ErrDestUnreached = errors.New("path: destination not reached")
)

// CellWithDistance records how one cell was reached: its hop count from the
// origin and its predecessor on a shortest path. Distance == 0 identifies
// the origin itself (whose Parent is itself).
type CellWithDistance[C comparable] struct {
	Distance int
	Parent   C
}

// Result maps every cell the search reached to its distance record.
type Result[C comparable] struct {
	// Origin is the cell the search started from.
	Origin C
	// Order lists the reached cells in visit sequence.
	Order []C
	// Cells maps each reached cell to its hop count and predecessor.
	Cells map[C]CellWithDistance[C]
}

// Find runs a breadth-first search from origin over the structure's open
// links. Cells not reachable through links are absent from the result.
//
// Complexity: O(V + L) time and memory over the link graph.
func Find[C comparable](s *tiling.Structure[C], origin C) (*Result[C], error) {
	if s == nil {
		return nil, ErrNilStructure
	}
	if !s.Contains(origin) {
		return nil, fmt.Errorf("%w: %v", ErrOriginUnknown, origin)
	}

	res := &Result[C]{
		Origin: origin,
		Order:  make([]C, 0, s.Len()),
		Cells:  make(map[C]CellWithDistance[C], s.Len()),
	}
	res.Cells[origin] = CellWithDistance[C]{Distance: 0, Parent: origin}
	queue := []C{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)
		depth := res.Cells[cur].Distance
		for _, nb := range s.Linked(cur) {
			if _, seen := res.Cells[nb]; seen {
				continue
			}
			res.Cells[nb] = CellWithDistance[C]{Distance: depth + 1, Parent: cur}
			queue = append(queue, nb)
		}
	}
	return res, nil
}

// DistanceTo returns dest's hop count from the origin, or ErrDestUnreached
// when the search never reached it.
func (r *Result[C]) DistanceTo(dest C) (int, error) {
	rec, ok := r.Cells[dest]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrDestUnreached, dest)
	}
	return rec.Distance, nil
}

// PathTo reconstructs the cells from the origin to dest in travel order,
// inclusive of both ends, by walking predecessors back to the Distance==0
// origin. Returns ErrDestUnreached when dest is absent from the result.
func (r *Result[C]) PathTo(dest C) ([]C, error) {
	rec, ok := r.Cells[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrDestUnreached, dest)
	}
	path := make([]C, 0, rec.Distance+1)
	for cur := dest; ; {
		path = append(path, cur)
		rec = r.Cells[cur]
		if rec.Distance == 0 {
			break
		}
		cur = rec.Parent
	}
	// reverse to origin → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
