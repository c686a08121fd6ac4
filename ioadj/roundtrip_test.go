package ioadj_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/ioadj"
)

func buildK4() *core.Graph {
	g := core.NewGraph()
	_ = g.InitGraph(4, 0)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			g.AddEdge(u, 0, v, 0)
		}
	}
	return g
}

func TestAdjListRoundTrip(t *testing.T) {
	g := buildK4()

	var sb strings.Builder
	require.NoError(t, ioadj.WriteAdjList(g, &sb))

	got, err := ioadj.ReadAdjList(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, g.N(), got.N())
	assert.Equal(t, g.M(), got.M())

	for v := 0; v < g.N(); v++ {
		assert.Equal(t, degree(g, v), degree(got, v), "vertex %d degree", v)
	}
}

func TestAdjListOneBasedInput(t *testing.T) {
	input := "N=3\n1: 2 3 0\n2: 1 0\n3: 1 0\n"
	g, err := ioadj.ReadAdjList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.True(t, g.IsNeighbor(0, 1))
	assert.True(t, g.IsNeighbor(0, 2))
	assert.False(t, g.IsNeighbor(1, 2))
}

func TestAdjListRejectsSelfLoop(t *testing.T) {
	input := "N=2\n0: 0 -1\n1: -1\n"
	_, err := ioadj.ReadAdjList(strings.NewReader(input))
	require.Error(t, err)
}

func TestAdjMatrixRoundTrip(t *testing.T) {
	g := buildK4()

	var sb strings.Builder
	require.NoError(t, ioadj.WriteAdjMatrix(g, &sb))

	got, err := ioadj.ReadAdjMatrix(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, g.N(), got.N())
	assert.Equal(t, g.M(), got.M())
}

func TestLEDARoundTrip(t *testing.T) {
	input := "LEDA.GRAPH\nstring\nint\n3\n" +
		"|{a}|\n|{b}|\n|{c}|\n" +
		"3\n" +
		"1 2\n2 3\n1 3\n"

	g, err := ioadj.ReadLEDA(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 3, g.M())
}

func degree(g *core.Graph, v int) int {
	n := 0
	for e := g.FirstArc(v); g.IsArc(e); e = g.NextArc(e) {
		n++
	}
	return n
}
