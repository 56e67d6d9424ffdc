package digraph_test

import (
	"testing"

	"github.com/katalvlaran/lvlclust/core"
	"github.com/katalvlaran/lvlclust/digraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit covers capacity validation and the cap-0 head discipline.
func TestInit(t *testing.T) {
	dg, err := digraph.Init(100, 1000)
	require.NoError(t, err)
	require.True(t, dg.IsInitialized())
	assert.Equal(t, 100, dg.Vertices)
	assert.Len(t, dg.TailPtr, 101)
	assert.Len(t, dg.Head, 1000)

	dg0, err := digraph.Init(100, 0)
	require.NoError(t, err)
	require.True(t, dg0.IsInitialized())
	assert.Nil(t, dg0.Head)

	_, err = digraph.Init(-1, 10)
	assert.ErrorIs(t, err, core.TooLargeDigraph)
	_, err = digraph.Init(10, -1)
	assert.ErrorIs(t, err, core.TooLargeDigraph)
}

// TestEmpty verifies every row of an Empty digraph is well-defined and empty.
func TestEmpty(t *testing.T) {
	dg, err := digraph.Empty(100, 1000)
	require.NoError(t, err)
	require.True(t, dg.IsInitialized())
	for i, tp := range dg.TailPtr {
		assert.Zero(t, tp, "TailPtr[%d]", i)
	}
	assert.True(t, dg.IsEmptyGraph())
	assert.Zero(t, dg.ArcCount())
}

// TestResizeArcs verifies prefix preservation, growth, shrink, and release.
func TestResizeArcs(t *testing.T) {
	dg, err := digraph.FromString("##./.#./#..")
	require.NoError(t, err)
	require.Equal(t, 4, dg.ArcCount())

	// same capacity is a no-op
	require.NoError(t, dg.ResizeArcs(4))
	assert.Len(t, dg.Head, 4)

	// growth preserves the prefix
	require.NoError(t, dg.ResizeArcs(100))
	assert.Len(t, dg.Head, 100)
	assert.Equal(t, "##./.#./#..", dg.String())

	// shrink back down
	require.NoError(t, dg.ResizeArcs(4))
	assert.Equal(t, "##./.#./#..", dg.String())

	// out-of-range capacity leaves the digraph untouched
	err = dg.ResizeArcs(-1)
	assert.ErrorIs(t, err, core.TooLargeDigraph)
	assert.Len(t, dg.Head, 4)

	// zero capacity releases the head array
	empty, err := digraph.Empty(5, 10)
	require.NoError(t, err)
	require.NoError(t, empty.ResizeArcs(0))
	assert.Nil(t, empty.Head)
	assert.True(t, empty.IsInitialized())
}

// TestFree verifies Free leaves the null digraph in every starting state.
func TestFree(t *testing.T) {
	var nilDg *digraph.Digraph
	nilDg.Free() // must not panic

	dg, err := digraph.Init(123, 1234)
	require.NoError(t, err)
	dg.Free()
	assert.Equal(t, digraph.Digraph{}, *dg)
	assert.False(t, dg.IsInitialized())

	dg0, err := digraph.Init(123, 0)
	require.NoError(t, err)
	dg0.Free()
	assert.Equal(t, digraph.Digraph{}, *dg0)
}

// TestIsInitialized sweeps the structural predicate's failure modes.
func TestIsInitialized(t *testing.T) {
	var nilDg *digraph.Digraph
	assert.False(t, nilDg.IsInitialized())
	assert.False(t, (&digraph.Digraph{}).IsInitialized())

	dg := &digraph.Digraph{
		Vertices: 10,
		TailPtr:  make([]core.ArcIndex, 11),
		Head:     make([]core.PointIndex, 100),
	}
	assert.True(t, dg.IsInitialized())

	// zero capacity must mean nil head
	dg.Head = nil
	assert.True(t, dg.IsInitialized())
	dg.Head = make([]core.PointIndex, 0)
	assert.False(t, dg.IsInitialized())
	dg.Head = make([]core.PointIndex, 100)

	// tail pointer array must match the vertex count
	dg.TailPtr = nil
	assert.False(t, dg.IsInitialized())
	dg.TailPtr = make([]core.ArcIndex, 10)
	assert.False(t, dg.IsInitialized())
	dg.TailPtr = make([]core.ArcIndex, 11)
	assert.True(t, dg.IsInitialized())
}

// TestIsSound verifies the row invariants on top of initialization.
func TestIsSound(t *testing.T) {
	dg, err := digraph.FromString("#../##./...")
	require.NoError(t, err)
	assert.True(t, dg.IsSound())

	// nonmonotonic offsets
	broken := &digraph.Digraph{
		Vertices: 2,
		TailPtr:  []core.ArcIndex{0, 2, 1},
		Head:     []core.PointIndex{0, 1},
	}
	assert.True(t, broken.IsInitialized())
	assert.False(t, broken.IsSound())

	// head out of vertex range
	wild := &digraph.Digraph{
		Vertices: 2,
		TailPtr:  []core.ArcIndex{0, 1, 1},
		Head:     []core.PointIndex{7},
	}
	assert.False(t, wild.IsSound())

	// arc count past capacity
	over := &digraph.Digraph{
		Vertices: 2,
		TailPtr:  []core.ArcIndex{0, 2, 3},
		Head:     []core.PointIndex{0, 1},
	}
	assert.False(t, over.IsSound())
}

// TestIsBalanced verifies the fixed-row-width predicate.
func TestIsBalanced(t *testing.T) {
	dg, err := digraph.FromString("##./#.#/.##")
	require.NoError(t, err)
	assert.True(t, dg.IsBalanced(2))
	assert.False(t, dg.IsBalanced(1))

	ragged, err := digraph.FromString("##./#../.##")
	require.NoError(t, err)
	assert.False(t, ragged.IsBalanced(2))
}

// TestEqualAndIdentical contrasts set equality with slot identity.
func TestEqualAndIdentical(t *testing.T) {
	a, err := digraph.FromString("##./.../.#.")
	require.NoError(t, err)
	b, err := digraph.FromString("##./.../.#.")
	require.NoError(t, err)
	assert.True(t, digraph.Equal(a, b))
	assert.True(t, digraph.Identical(a, b))

	// same sets, different head order within a row
	c := &digraph.Digraph{
		Vertices: 3,
		TailPtr:  []core.ArcIndex{0, 2, 2, 3},
		Head:     []core.PointIndex{1, 0, 1},
	}
	assert.True(t, digraph.Equal(a, c))
	assert.False(t, digraph.Identical(a, c))

	d, err := digraph.FromString("#../.../.#.")
	require.NoError(t, err)
	assert.False(t, digraph.Equal(a, d))

	// spare capacity breaks identity but not equality
	e, err := digraph.FromString("##./.../.#.")
	require.NoError(t, err)
	require.NoError(t, e.ResizeArcs(50))
	assert.True(t, digraph.Equal(a, e))
	assert.False(t, digraph.Identical(a, e))
}

// TestFromString_RoundTrip verifies the fixture codec both ways.
func TestFromString_RoundTrip(t *testing.T) {
	const grid = "#.##./...../##.../....#/.#..."
	dg, err := digraph.FromString(grid)
	require.NoError(t, err)
	assert.Equal(t, 5, dg.Vertices)
	assert.Equal(t, 7, dg.ArcCount())
	assert.Equal(t, grid, dg.String())

	_, err = digraph.FromString("##/#")
	assert.ErrorIs(t, err, core.InvalidInput)
	_, err = digraph.FromString("#x/..")
	assert.ErrorIs(t, err, core.InvalidInput)
}

// TestRowAccessors verifies Row and OutDegree over a mixed digraph.
func TestRowAccessors(t *testing.T) {
	dg, err := digraph.FromString(".##../#.#../##.../....#/...#.")
	require.NoError(t, err)
	assert.Equal(t, []core.PointIndex{1, 2}, dg.Row(0))
	assert.Equal(t, []core.PointIndex{4}, dg.Row(3))
	assert.Equal(t, 2, dg.OutDegree(2))
	assert.Equal(t, 1, dg.OutDegree(4))
}
