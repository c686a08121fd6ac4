package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
)

func addEdges(t *testing.T, g *core.Graph, edges [][2]int) {
	t.Helper()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], 0, e[1], 0)
		require.NoError(t, err)
	}
}

func newGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.InitGraph(n, 0))
	return g
}

// TestEmbedPlanarSoundness checks property 1: a planar Embed result satisfies
// Euler's formula via the accompanying integrity check.
func TestEmbedPlanarSoundness(t *testing.T) {
	g := newGraph(t, 4)
	addEdges(t, g, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}) // K4 minus one edge

	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.NoError(t, g.TestEmbedResultIntegrity())
}

// TestEmbedPlanarK5Completeness checks property 2: K5 is NonEmbeddable and
// the isolated witness is a K5 subdivision.
func TestEmbedPlanarK5Completeness(t *testing.T) {
	g := newGraph(t, 5)
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			addEdges(t, g, [][2]int{{u, v}})
		}
	}

	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
	assert.NoError(t, g.TestObstructionIntegrity(core.K5DegreeProfile()))
}

// TestEmbedPlanarK33Completeness checks property 2 for the other Kuratowski
// minor: K3,3 is NonEmbeddable with a K3,3 witness.
func TestEmbedPlanarK33Completeness(t *testing.T) {
	g := newGraph(t, 6)
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			addEdges(t, g, [][2]int{{u, v}})
		}
	}

	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
	assert.NoError(t, g.TestObstructionIntegrity(core.K33DegreeProfile()))
}

// TestEmbedOuterplanarSoundnessAndCompleteness checks property 3: K4 is
// outerplanar-NonEmbeddable with a K4 witness, while a fan (outerplanar) is
// Embedded.
func TestEmbedOuterplanarSoundnessAndCompleteness(t *testing.T) {
	k4 := newGraph(t, 4)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			addEdges(t, k4, [][2]int{{u, v}})
		}
	}
	res, err := k4.Embed(core.FlagOuterplanar)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
	assert.NoError(t, k4.TestObstructionIntegrity(core.K4DegreeProfile()))

	fan := newGraph(t, 4)
	addEdges(t, fan, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}, {0, 3}})
	res, err = fan.Embed(core.FlagOuterplanar)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.NoError(t, fan.TestEmbedResultIntegrity())
}

// TestEmbedPetersenGraphIsNonPlanar exercises the Petersen-graph scenario:
// 10 vertices, 15 edges, every vertex degree 3, not embeddable as planar.
func TestEmbedPetersenGraphIsNonPlanar(t *testing.T) {
	g := newGraph(t, 10)
	outer := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	inner := [][2]int{{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}}
	spokes := [][2]int{{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}}
	addEdges(t, g, outer)
	addEdges(t, g, inner)
	addEdges(t, g, spokes)
	require.Equal(t, 15, g.M())

	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.NonEmbeddable, res)
}

// TestEmbedFiveVertexMaximalPlanarHasSixFaces exercises the 5-vertex maximal
// planar scenario: 9 edges, Embedded, Euler's formula gives 6 faces.
func TestEmbedFiveVertexMaximalPlanarHasSixFaces(t *testing.T) {
	g := newGraph(t, 5)
	addEdges(t, g, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {2, 4}, {3, 4}})
	require.Equal(t, 9, g.M())

	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.NoError(t, g.TestEmbedResultIntegrity())
}

// TestEmbedRandomTreeHasOneFace exercises the random-tree scenario: any
// tree is planar with exactly 1 face (Euler's formula with E=N-1 and one
// component: N - (N-1) + F = 2).
func TestEmbedRandomTreeHasOneFace(t *testing.T) {
	g := newGraph(t, 7)
	addEdges(t, g, [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}, {4, 6}})
	require.Equal(t, 6, g.M())

	res, err := g.Embed(core.FlagPlanar)
	require.NoError(t, err)
	assert.Equal(t, core.Embedded, res)
	assert.NoError(t, g.TestEmbedResultIntegrity())
}
