package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath/planarity/core"
)

// snapshot captures enough of a graph's adjacency shape to detect any
// change a hide/restore or identify/restore round trip should have undone:
// N, M, and the full degree + pairwise-adjacency relation.
type snapshot struct {
	n, m  int
	deg   []int
	neigh map[[2]int]bool
}

func takeSnapshot(g *core.Graph) snapshot {
	s := snapshot{n: g.N(), m: g.M(), neigh: make(map[[2]int]bool)}
	for v := 0; v < g.N(); v++ {
		s.deg = append(s.deg, g.VertexDegree(v))
	}
	for u := 0; u < g.N(); u++ {
		for v := u + 1; v < g.N(); v++ {
			if g.IsNeighbor(u, v) {
				s.neigh[[2]int{u, v}] = true
			}
		}
	}
	return s
}

// arcBetween finds the arc in u's adjacency list pointing at v.
func arcBetween(g *core.Graph, u, v int) int {
	for e := g.FirstArc(u); g.IsArc(e); e = g.NextArc(e) {
		if g.Neighbor(e) == v {
			return e
		}
	}
	return core.NIL
}

// TestHideRestoreEdgeRoundTrip checks property 6 for the simplest
// restoration primitive: HideEdge/RestoreEdge must leave the graph pointwise
// equal to its pre-hide state.
func TestHideRestoreEdgeRoundTrip(t *testing.T) {
	g := buildComplete(t, 4)
	before := takeSnapshot(g)

	e := arcBetween(g, 0, 2)
	require.True(t, g.IsArc(e))

	g.HideEdge(e)
	assert.False(t, g.IsNeighbor(0, 2))
	assert.Equal(t, before.deg[0]-1, g.VertexDegree(0))

	g.RestoreEdge(e)
	assert.Equal(t, before, takeSnapshot(g))
}

// TestContractEdgeRestoreVertexRoundTrip checks property 6 for
// ContractEdge/RestoreVertex on a path, where contracting the middle edge
// merges two degree-2 vertices into one.
func TestContractEdgeRestoreVertexRoundTrip(t *testing.T) {
	g := newGraph(t, 4)
	addEdges(t, g, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	before := takeSnapshot(g)

	e := arcBetween(g, 1, 2)
	require.True(t, g.IsArc(e))
	require.NoError(t, g.ContractEdge(e))

	require.NoError(t, g.RestoreVertex())
	assert.Equal(t, before, takeSnapshot(g))
}

// TestIdentifyVerticesRestoreVertexRoundTrip checks property 6 directly on
// IdentifyVertices (two non-adjacent vertices merged, rather than via
// ContractEdge's adjacent-pair shortcut).
func TestIdentifyVerticesRestoreVertexRoundTrip(t *testing.T) {
	g := newGraph(t, 4)
	addEdges(t, g, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}) // a 4-cycle; 0 and 3 are non-adjacent
	before := takeSnapshot(g)

	require.NoError(t, g.IdentifyVertices(0, 3, core.NIL))
	require.NoError(t, g.RestoreVertex())
	assert.Equal(t, before, takeSnapshot(g))
}

// TestHideVertexRestoreVertexRoundTrip checks property 6 for HideVertex,
// which detaches every arc of v and pushes a degenerate restoration
// segment RestoreVertex can reverse.
func TestHideVertexRestoreVertexRoundTrip(t *testing.T) {
	g := buildComplete(t, 5)
	before := takeSnapshot(g)

	g.HideVertex(2)
	assert.Equal(t, 0, g.VertexDegree(2))

	require.NoError(t, g.RestoreVertex())
	assert.Equal(t, before, takeSnapshot(g))
}

// TestNestedHideRestoreReverseOrder checks that a sequence of hides restored
// in exact reverse order (the only order RestoreEdge/RestoreVertex support)
// reproduces the original graph, per property 6's "matching restore calls
// in reverse order" requirement.
func TestNestedHideRestoreReverseOrder(t *testing.T) {
	g := buildComplete(t, 4)
	before := takeSnapshot(g)

	e1 := arcBetween(g, 0, 1)
	e2 := arcBetween(g, 2, 3)
	g.HideEdge(e1)
	g.HideEdge(e2)

	g.RestoreEdge(e2)
	g.RestoreEdge(e1)

	assert.Equal(t, before, takeSnapshot(g))
}
