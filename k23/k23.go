// Package k23 answers one question about a graph: does it contain a
// subdivision of K2,3? It is one of three sibling search features layered
// on the same planarity engine (see spec.md 4.6 and the sibling k33, k4
// packages), grounded on graphK23Search.c/graphK23Search_Extensions.c.
package k23

import (
	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/internal/xsearch"
)

// Search reports whether g contains a K2,3 homeomorph. A core.NonEmbeddable
// result comes with the witness subgraph (vertices/edges of the subdivision
// found, pruned to exactly the homeomorph per the isolator's contract); a
// core.Embedded result means no such subdivision exists anywhere in g.
func Search(g *core.Graph) (core.Result, *core.Graph, error) {
	return xsearch.Search(g.N(), xsearch.ListEdges(g), core.FlagOuterplanar, core.K23DegreeProfile())
}
