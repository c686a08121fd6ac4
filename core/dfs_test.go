package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
)

func adjacencyMatrix(g *core.Graph) [][]bool {
	n := g.N()
	m := make([][]bool, n)
	for u := 0; u < n; u++ {
		m[u] = make([]bool, n)
		for v := 0; v < n; v++ {
			if u != v {
				m[u][v] = g.IsNeighbor(u, v)
			}
		}
	}
	return m
}

// TestSortVerticesIsAnInvolution checks property 5: sorting by DFI twice
// restores the post-DFS vertex order and adjacency, since the second sort
// undoes the permutation the first one applied. The snapshot is taken after
// CreateDFSTree, which moves forward arcs out of the adjacency lists.
func TestSortVerticesIsAnInvolution(t *testing.T) {
	g := newGraph(t, 6)
	addEdges(t, g, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 2}, {1, 4}})
	require.NoError(t, g.CreateDFSTree())

	before := adjacencyMatrix(g)

	require.NoError(t, g.SortVertices())
	require.NoError(t, g.SortVertices())

	assert.Equal(t, before, adjacencyMatrix(g))
}
