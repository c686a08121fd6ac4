package drawplanar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/drawplanar"
)

func TestDrawAssignsOneColumnPerVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(4, 0))
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}} {
		_, err := g.AddEdge(e[0], 0, e[1], 0)
		require.NoError(t, err)
	}

	res, err := g.Embed(core.FlagPlanar | core.FlagDrawPlanar)
	require.NoError(t, err)
	require.Equal(t, core.Embedded, res)

	layout, err := drawplanar.Draw(g)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for v := 0; v < g.N(); v++ {
		col, ok := layout.X[v]
		require.True(t, ok, "vertex %d missing a column", v)
		assert.False(t, seen[col], "column %d reused", col)
		seen[col] = true
	}
	assert.Len(t, layout.Edges, g.M())
}

func TestDrawRootIsAtDepthZero(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(3, 0))
	for _, e := range [][2]int{{0, 1}, {1, 2}} {
		_, err := g.AddEdge(e[0], 0, e[1], 0)
		require.NoError(t, err)
	}
	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	require.Equal(t, core.Embedded, res)

	layout, err := drawplanar.Draw(g)
	require.NoError(t, err)

	minDepth := layout.Y[0]
	for v := 1; v < g.N(); v++ {
		if layout.Y[v] < minDepth {
			minDepth = layout.Y[v]
		}
	}
	assert.Equal(t, 0, minDepth)
}
