package combine

import (
	"fmt"

	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/tiling"
)

// Boundary derives the exterior outline of the merged region.
//
// Every member contributes its clockwise boundary edges. A directed edge
// whose exact reverse was also contributed marks a segment interior to the
// union: both copies cancel. The survivors are reassembled into closed
// loops by repeatedly following, from the current edge's end vertex, a
// not-yet-consumed edge starting there, until the loop closes; fresh loops
// start from the earliest unconsumed edge until none remain, so a merged
// region with holes — or a split one — yields several loops, concatenated
// in discovery order.
//
// A singleton aggregate returns its member's boundary unchanged. Returns
// ErrInvalidGeometry when a partial loop has no continuation (dangling
// edge), and tiling.ErrNoBoundary when a member lacks the capability.
//
// Complexity: O(Σ boundary lengths).
func (a *Aggregate[C]) Boundary() ([]geom.Edge, error) {
	remaining, err := a.uncancelled()
	if err != nil {
		return nil, err
	}

	// Index survivors by start vertex for loop-following.
	byStart := make(map[geom.Vertex][]int, len(remaining))
	for i, e := range remaining {
		byStart[e.Start] = append(byStart[e.Start], i)
	}
	used := make([]bool, len(remaining))
	take := func(v geom.Vertex) (geom.Edge, bool) {
		for _, i := range byStart[v] {
			if !used[i] {
				used[i] = true
				return remaining[i], true
			}
		}
		return geom.Edge{}, false
	}

	out := make([]geom.Edge, 0, len(remaining))
	for first := 0; first < len(remaining); first++ {
		if used[first] {
			continue
		}
		used[first] = true
		cur := remaining[first]
		loopStart := cur.Start
		for {
			out = append(out, cur)
			if cur.End == loopStart {
				break
			}
			next, ok := take(cur.End)
			if !ok {
				return nil, fmt.Errorf("%w: dangling edge ending at %v", ErrInvalidGeometry, cur.End)
			}
			cur = next
		}
	}
	return out, nil
}

// uncancelled collects every member's boundary edges and removes each pair
// of exact-reverse duplicates, preserving contribution order.
func (a *Aggregate[C]) uncancelled() ([]geom.Edge, error) {
	var order []geom.Edge
	count := make(map[geom.Edge]int)
	for _, m := range a.order {
		b, ok := any(m).(tiling.Bounded)
		if !ok {
			return nil, fmt.Errorf("%w: %v", tiling.ErrNoBoundary, m)
		}
		edges, err := b.Boundary()
		if err != nil {
			return nil, fmt.Errorf("combine: boundary of %v: %w", m, err)
		}
		for _, e := range edges {
			if r := e.Reverse(); count[r] > 0 {
				count[r]-- // interior segment: cancel with its reverse
				continue
			}
			count[e]++
			order = append(order, e)
		}
	}
	// Drop entries cancelled after they were recorded.
	remaining := order[:0]
	for _, e := range order {
		if count[e] > 0 {
			count[e]--
			remaining = append(remaining, e)
		}
	}
	return remaining, nil
}
