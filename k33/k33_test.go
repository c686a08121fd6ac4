package k33_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/k33"
)

func buildK33(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(6, 0))
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			_, err := g.AddEdge(u, 0, v, 0)
			require.NoError(t, err)
		}
	}
	return g
}

func TestSearchFindsK33(t *testing.T) {
	g := buildK33(t)
	res, witness, err := k33.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
	require.NotNil(t, witness)
	assert.NoError(t, witness.TestObstructionIntegrity(core.K33DegreeProfile()))
}

func TestSearchExcludesK5(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(5, 0))
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			_, err := g.AddEdge(u, 0, v, 0)
			require.NoError(t, err)
		}
	}
	// K5 contains no K3,3 subdivision (only 5 vertices; K3,3 needs 6), so the
	// search must retire whatever K5 minor it isolates and end up Embedded.
	res, witness, err := k33.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.Nil(t, witness)
}

func TestSearchCycleHasNoK33(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(6, 0))
	for v := 0; v < 6; v++ {
		_, err := g.AddEdge(v, 0, (v+1)%6, 0)
		require.NoError(t, err)
	}
	res, witness, err := k33.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.Nil(t, witness)
}
