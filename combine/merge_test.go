package combine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessella/tessella/combine"
	"github.com/tessella/tessella/geom"
	"github.com/tessella/tessella/maze"
	"github.com/tessella/tessella/path"
	"github.com/tessella/tessella/square"
	"github.com/tessella/tessella/tiling"
)

// fullGrid builds a w×h square structure with every adjacency opened.
func fullGrid(t *testing.T, w, h int) *tiling.Structure[square.Cell] {
	t.Helper()
	cells, err := square.Grid(w, h)
	require.NoError(t, err)
	var links []geom.Link[square.Cell]
	for _, c := range cells {
		for _, nb := range []square.Cell{{X: c.X + 1, Y: c.Y}, {X: c.X, Y: c.Y + 1}} {
			if nb.X < w && nb.Y < h {
				l, lerr := geom.NewLink(c, nb)
				require.NoError(t, lerr)
				links = append(links, l)
			}
		}
	}
	s, err := tiling.New(cells, tiling.WithLinks(links...))
	require.NoError(t, err)
	return s
}

// findBySize returns the first aggregate with the given member count.
func findBySize(t *testing.T, s *tiling.Structure[*combine.Aggregate[square.Cell]], n int) *combine.Aggregate[square.Cell] {
	t.Helper()
	for _, a := range s.Cells() {
		if a.Size() == n {
			return a
		}
	}
	t.Fatalf("no aggregate of size %d", n)
	return nil
}

// TestWrap_Lifts verifies every cell becomes a singleton and links carry
// over.
func TestWrap_Lifts(t *testing.T) {
	s := fullGrid(t, 2, 2)
	w, err := combine.Wrap(s)
	require.NoError(t, err)

	require.Equal(t, s.Len(), w.Len())
	for i, a := range w.Cells() {
		assert.True(t, a.Is(s.Cells()[i]), "cell %d should lift to its singleton", i)
	}
	assert.Len(t, w.Links(), len(s.Links()))
	assert.True(t, w.IsConnected(), "lifted adjacency must mirror the base")
}

// TestCombine_Membership pins the membership property: the merged
// aggregate contains exactly the requested cells.
func TestCombine_Membership(t *testing.T) {
	s := fullGrid(t, 2, 2)
	a, b, c := square.Cell{X: 0, Y: 0}, square.Cell{X: 1, Y: 0}, square.Cell{X: 0, Y: 1}
	d := square.Cell{X: 1, Y: 1}

	merged, err := combine.Combine(s, []square.Cell{a, b, c})
	require.NoError(t, err)
	require.Equal(t, 2, merged.Len(), "three cells collapse into one aggregate beside d")

	agg := findBySize(t, merged, 3)
	for _, cell := range []square.Cell{a, b, c} {
		assert.True(t, agg.Contains(cell))
	}
	assert.False(t, agg.Contains(d))
}

// TestCombineCells_Recombination verifies a cell absorbed into a
// non-trivial aggregate cannot be combined again.
func TestCombineCells_Recombination(t *testing.T) {
	s := fullGrid(t, 2, 2)
	a, b := square.Cell{X: 0, Y: 0}, square.Cell{X: 1, Y: 0}
	d := square.Cell{X: 1, Y: 1}

	merged, err := combine.Combine(s, []square.Cell{a, b})
	require.NoError(t, err)

	_, err = combine.CombineCells(merged, []square.Cell{a, d})
	assert.ErrorIs(t, err, combine.ErrRecombined)

	_, err = combine.CombineCells(merged, []square.Cell{{X: 9, Y: 9}})
	assert.ErrorIs(t, err, combine.ErrUnknownCell)

	_, err = combine.CombineCells(merged, nil)
	assert.ErrorIs(t, err, combine.ErrEmptyAggregate)

	// Untouched singletons may still combine.
	again, err := combine.CombineCells(merged, []square.Cell{d, square.Cell{X: 0, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, again.Len())
}

// TestCombine_LinkRewiring verifies border links are rewritten to the
// merged aggregate, interior links drop, and duplicates collapse.
func TestCombine_LinkRewiring(t *testing.T) {
	// 2×2 fully linked: a-b, a-c, b-d, c-d.
	s := fullGrid(t, 2, 2)
	a, b := square.Cell{X: 0, Y: 0}, square.Cell{X: 1, Y: 0}
	c, d := square.Cell{X: 0, Y: 1}, square.Cell{X: 1, Y: 1}

	merged, err := combine.Combine(s, []square.Cell{a, b})
	require.NoError(t, err)

	ab := findBySize(t, merged, 2)
	var aggC, aggD *combine.Aggregate[square.Cell]
	for _, x := range merged.Cells() {
		switch {
		case x.Is(c):
			aggC = x
		case x.Is(d):
			aggD = x
		}
	}
	require.NotNil(t, aggC)
	require.NotNil(t, aggD)

	// a-b dropped as interior; a-c and b-d rewired; c-d untouched.
	assert.Len(t, merged.Links(), 3)
	assert.True(t, merged.HasLink(ab, aggC))
	assert.True(t, merged.HasLink(ab, aggD))
	assert.True(t, merged.HasLink(aggC, aggD))
}

// TestCombine_AdjacencyAndMaze runs the full pipeline over a combined
// structure: adjacency lifts correctly, a maze spans the aggregates, and a
// path solves it.
func TestCombine_AdjacencyAndMaze(t *testing.T) {
	base, err := square.New(3, 3)
	require.NoError(t, err)

	merged, err := combine.Combine(base, []square.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 7, merged.Len())
	require.True(t, merged.IsConnected())

	m, err := maze.Generate(merged, maze.Rand(rand.New(rand.NewSource(11))), maze.Winding)
	require.NoError(t, err)
	require.Len(t, m.Links(), 6)

	origin := findBySize(t, m, 3)
	res, err := path.Find(m, origin)
	require.NoError(t, err)
	assert.Len(t, res.Cells, 7, "a spanning tree reaches every aggregate")

	var corner *combine.Aggregate[square.Cell]
	for _, x := range m.Cells() {
		if x.Is(square.Cell{X: 2, Y: 2}) {
			corner = x
		}
	}
	require.NotNil(t, corner)
	route, err := res.PathTo(corner)
	require.NoError(t, err)
	assert.Equal(t, origin, route[0])
	assert.Equal(t, corner, route[len(route)-1])
}

// TestCombine_BoundaryOfMerged: the merged aggregate's stitched outline is
// usable by classification on the combined structure.
func TestCombine_BoundaryOfMerged(t *testing.T) {
	s := fullGrid(t, 2, 1)
	a, b := square.Cell{X: 0, Y: 0}, square.Cell{X: 1, Y: 0}

	merged, err := combine.Combine(s, []square.Cell{a, b})
	require.NoError(t, err)
	require.Equal(t, 1, merged.Len())

	segs, err := merged.Classify()
	require.NoError(t, err)
	only := findBySize(t, merged, 2)
	require.Len(t, segs[only], 6)
	for _, seg := range segs[only] {
		assert.Equal(t, tiling.Outline, seg.Kind, "a lone aggregate is all outline")
	}
}
