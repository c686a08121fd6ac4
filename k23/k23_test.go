package k23_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/k23"
)

func buildK23(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(5, 0))
	for u := 0; u < 2; u++ {
		for v := 2; v < 5; v++ {
			_, err := g.AddEdge(u, 0, v, 0)
			require.NoError(t, err)
		}
	}
	return g
}

func TestSearchFindsK23(t *testing.T) {
	g := buildK23(t)
	res, witness, err := k23.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
	require.NotNil(t, witness)
	assert.NoError(t, witness.TestObstructionIntegrity(core.K23DegreeProfile()))
}

func TestSearchTreeHasNoK23(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(5, 0))
	edges := [][2]int{{0, 1}, {1, 2}, {1, 3}, {3, 4}}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], 0, e[1], 0)
		require.NoError(t, err)
	}
	res, witness, err := k23.Search(g)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.Nil(t, witness)
}
