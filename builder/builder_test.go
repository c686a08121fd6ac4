package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/builder"
	"github.com/lvlath/planarity/core"
)

func TestBuildGraphReturnsDistinctRunIDs(t *testing.T) {
	_, id1, err := builder.BuildGraph(4, nil, builder.Complete())
	require.NoError(t, err)
	_, id2, err := builder.BuildGraph(4, nil, builder.Complete())
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.NotEmpty(t, id1)
}

func TestShapes(t *testing.T) {
	cases := []struct {
		name string
		n    int
		m    int
		cons builder.Constructor
	}{
		{"Complete", 5, 10, builder.Complete()},
		{"Cycle", 5, 5, builder.Cycle()},
		{"Path", 5, 4, builder.Path()},
		{"Star", 5, 4, builder.Star()},
		{"Wheel", 5, 8, builder.Wheel()},
		{"CompleteBipartite", 5, 6, builder.CompleteBipartite(2)},
		{"Grid", 6, 7, builder.Grid(2, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _, err := builder.BuildGraph(tc.n, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.n, g.N())
			assert.Equal(t, tc.m, g.M())
		})
	}
}

func TestShapeRejectsTooFewVertices(t *testing.T) {
	_, _, err := builder.BuildGraph(1, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGridRejectsSizeMismatch(t *testing.T) {
	_, _, err := builder.BuildGraph(5, nil, builder.Grid(2, 3))
	assert.ErrorIs(t, err, builder.ErrSizeMismatch)
}

func TestPlatonicSolids(t *testing.T) {
	cases := []struct {
		name  builder.PlatonicName
		n, m  int
	}{
		{builder.Tetrahedron, 4, 6},
		{builder.Cube, 8, 12},
		{builder.Octahedron, 6, 12},
	}
	for _, tc := range cases {
		g, _, err := builder.BuildGraph(tc.n, nil, builder.PlatonicSolid(tc.name))
		require.NoError(t, err)
		assert.Equal(t, tc.n, g.N())
		assert.Equal(t, tc.m, g.M())

		res, err := g.Embed(core.FlagPlanar)
		require.NoError(t, err)
		assert.Equal(t, core.Embedded, res, "platonic solid %v must be planar", tc.name)
	}
}

func TestPlatonicSolidRejectsSizeMismatch(t *testing.T) {
	_, _, err := builder.BuildGraph(5, nil, builder.PlatonicSolid(builder.Tetrahedron))
	assert.ErrorIs(t, err, builder.ErrSizeMismatch)
}

func TestRandomSparseRequiresRand(t *testing.T) {
	_, _, err := builder.BuildGraph(4, nil, builder.RandomSparse(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparseRejectsInvalidProbability(t *testing.T) {
	_, _, err := builder.BuildGraph(4, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomMaximalPlanarIsPlanarAndMaximal(t *testing.T) {
	g, _, err := builder.BuildGraph(8, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomMaximalPlanar())
	require.NoError(t, err)
	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	// A stacked triangulation on n vertices has exactly 3n-6 edges, the
	// maximum a simple planar graph on n vertices can have.
	assert.Equal(t, 3*g.N()-6, g.M())
}

func TestRandomMaximalPlanarPlusEdgeIsNeverPlanar(t *testing.T) {
	g, _, err := builder.BuildGraph(8, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomMaximalPlanarPlusEdge())
	require.NoError(t, err)
	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
}
