// Package xsearch is the shared retry engine behind the k23, k33, and k4
// subgraph-homeomorphism search packages. Each of those packages asks one
// question ("does G contain a subdivision of H?") by repeatedly running the
// core embedder against a shrinking copy of G's edge set and inspecting
// whatever obstruction the embedder isolates, grounded on the observation
// that graphOuterplanarObstruction.c and graphIsolator.c already classify
// every blockage into an exact minor with a known degree profile
// (core.K23DegreeProfile, core.K33DegreeProfile, ...).
//
// The original engine's graphK23Search.c/graphK33Search.c/graphK4Search.c
// instead overload the embedder's function table (a merge-blocker counter
// for K3,3, a path-reduction pass for K4) so a single DFS pass can tell a
// wanted minor from an unwanted one without restarting. That requires
// reaching into isolator/embedder scratch state that core deliberately keeps
// unexported (see core/access.go's doc comment). xsearch trades that
// single-pass fidelity for a version built entirely on core's public API: it
// removes the edges of every unwanted obstruction it isolates and reembeds,
// which still terminates in at most len(edges) rounds (each round retires at
// least one edge) and still returns a verified subgraph-of-the-input witness
// whenever it reports NonEmbeddable. See DESIGN.md for the trade-off this
// makes against the original's linear single-pass guarantee.
package xsearch

import (
	"fmt"

	"github.com/lvlath/planarity/core"
)

// Edge is an undirected edge identified by its two endpoints, U < V.
type Edge struct {
	U, V int
}

// ListEdges returns every edge currently present in g, each reported once
// with U < V regardless of which endpoint stores the forward arc.
func ListEdges(g *core.Graph) []Edge {
	var edges []Edge
	for v := g.FirstVertex(); v <= g.LastVertex(); v++ {
		for e := g.FirstArc(v); g.IsArc(e); e = g.NextArc(e) {
			if w := g.Neighbor(e); w > v && w <= g.LastVertex() {
				edges = append(edges, Edge{U: v, V: w})
			}
		}
	}
	return edges
}

// Rebuild constructs a fresh n-vertex graph containing exactly edges.
func Rebuild(n int, edges []Edge) (*core.Graph, error) {
	g := core.NewGraph()
	if err := g.InitGraph(n, 0); err != nil {
		return nil, err
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.U, 0, e.V, 0); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Search looks for a subdivision of the minor whose degree profile is
// target, among the edges in allEdges over n vertices, by repeatedly
// embedding under flags and excluding whatever unwanted obstruction is
// isolated along the way. It returns core.NonEmbeddable and the witness
// graph (pruned down to just the homeomorph, per core's isolator contract)
// when one is found, or core.Embedded with a nil witness when the search
// exhausts every edge without finding one.
func Search(n int, allEdges []Edge, flags core.EmbedFlags, target map[int]int) (core.Result, *core.Graph, error) {
	excluded := make(map[Edge]bool)

	maxAttempts := len(allEdges) + 1
	for attempt := 0; attempt < maxAttempts; attempt++ {
		remaining := make([]Edge, 0, len(allEdges))
		for _, e := range allEdges {
			if !excluded[e] {
				remaining = append(remaining, e)
			}
		}

		g, err := Rebuild(n, remaining)
		if err != nil {
			return core.Embedded, nil, err
		}

		result, err := g.Embed(flags)
		if err != nil {
			return core.Embedded, nil, err
		}
		if result == core.Embedded {
			return core.Embedded, nil, nil
		}

		if g.TestObstructionIntegrity(target) == nil {
			return core.NonEmbeddable, g, nil
		}

		retired := 0
		for _, e := range ListEdges(g) {
			if !excluded[e] {
				excluded[e] = true
				retired++
			}
		}
		if retired == 0 {
			return core.Embedded, nil, fmt.Errorf("xsearch: obstruction retired no edges: %w", core.ErrInternal)
		}
	}

	return core.Embedded, nil, nil
}
