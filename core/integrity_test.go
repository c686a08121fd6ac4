package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
)

func buildComplete(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := newGraph(t, n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			addEdges(t, g, [][2]int{{u, v}})
		}
	}
	return g
}

func buildCompleteBipartite(t *testing.T, n1, n2 int) *core.Graph {
	t.Helper()
	g := newGraph(t, n1+n2)
	for u := 0; u < n1; u++ {
		for v := n1; v < n1+n2; v++ {
			addEdges(t, g, [][2]int{{u, v}})
		}
	}
	return g
}

func TestTestEmbedResultIntegrityOnCycle(t *testing.T) {
	g := newGraph(t, 5)
	for v := 0; v < 5; v++ {
		addEdges(t, g, [][2]int{{v, (v + 1) % 5}})
	}
	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	require.Equal(t, core.Embedded, res)
	assert.NoError(t, g.TestEmbedResultIntegrity())
}

func TestTestObstructionIntegrityDegreeProfiles(t *testing.T) {
	k5 := buildComplete(t, 5)
	res, err := k5.Embed(core.FlagPlanar)
	require.NoError(t, err)
	require.Equal(t, core.NonEmbeddable, res)
	assert.NoError(t, k5.TestObstructionIntegrity(core.K5DegreeProfile()))
	assert.Error(t, k5.TestObstructionIntegrity(core.K33DegreeProfile()))

	k33 := buildCompleteBipartite(t, 3, 3)
	res, err = k33.Embed(core.FlagPlanar)
	require.NoError(t, err)
	require.Equal(t, core.NonEmbeddable, res)
	assert.NoError(t, k33.TestObstructionIntegrity(core.K33DegreeProfile()))
	assert.Error(t, k33.TestObstructionIntegrity(core.K5DegreeProfile()))

	k4 := buildComplete(t, 4)
	res, err = k4.Embed(core.FlagOuterplanar)
	require.NoError(t, err)
	require.Equal(t, core.NonEmbeddable, res)
	assert.NoError(t, k4.TestObstructionIntegrity(core.K4DegreeProfile()))

	k23 := buildCompleteBipartite(t, 2, 3)
	res, err = k23.Embed(core.FlagOuterplanar)
	require.NoError(t, err)
	require.Equal(t, core.NonEmbeddable, res)
	assert.NoError(t, k23.TestObstructionIntegrity(core.K23DegreeProfile()))
}

func TestDegreeProfileHelpersAreStable(t *testing.T) {
	assert.Equal(t, map[int]int{4: 5}, core.K5DegreeProfile())
	assert.Equal(t, map[int]int{3: 6}, core.K33DegreeProfile())
	assert.Equal(t, map[int]int{3: 4}, core.K4DegreeProfile())
	assert.Equal(t, map[int]int{3: 2, 2: 3}, core.K23DegreeProfile())
}
