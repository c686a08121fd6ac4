package k4_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/k4"
)

func TestSearchFindsK4(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(4, 0))
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			_, err := g.AddEdge(u, 0, v, 0)
			require.NoError(t, err)
		}
	}
	res, witness, err := k4.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
	require.NotNil(t, witness)
	assert.NoError(t, witness.TestObstructionIntegrity(core.K4DegreeProfile()))
}

func TestSearchPathHasNoK4(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(4, 0))
	for v := 0; v < 3; v++ {
		_, err := g.AddEdge(v, 0, v+1, 0)
		require.NoError(t, err)
	}
	res, witness, err := k4.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.Nil(t, witness)
}
