package xsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/internal/xsearch"
)

func TestListEdgesRoundTripsThroughRebuild(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(4, 0))
	want := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
	for _, e := range want {
		_, err := g.AddEdge(e[0], 0, e[1], 0)
		require.NoError(t, err)
	}

	edges := xsearch.ListEdges(g)
	assert.Len(t, edges, len(want))

	rebuilt, err := xsearch.Rebuild(g.N(), edges)
	require.NoError(t, err)
	assert.Equal(t, g.N(), rebuilt.N())
	assert.Equal(t, g.M(), rebuilt.M())
	for _, e := range want {
		assert.True(t, rebuilt.IsNeighbor(e[0], e[1]))
	}
}

func TestSearchReturnsEmbeddedWhenTargetAbsent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(4, 0))
	for v := 0; v < 3; v++ {
		_, err := g.AddEdge(v, 0, v+1, 0)
		require.NoError(t, err)
	}

	res, witness, err := xsearch.Search(g.N(), xsearch.ListEdges(g), core.FlagOuterplanar, core.K4DegreeProfile())
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.Nil(t, witness)
}

func TestSearchReturnsNonEmbeddableWithWitness(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(4, 0))
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			_, err := g.AddEdge(u, 0, v, 0)
			require.NoError(t, err)
		}
	}

	res, witness, err := xsearch.Search(g.N(), xsearch.ListEdges(g), core.FlagOuterplanar, core.K4DegreeProfile())
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
	require.NotNil(t, witness)
	assert.NoError(t, witness.TestObstructionIntegrity(core.K4DegreeProfile()))
}
