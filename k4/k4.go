// Package k4 answers one question about a graph: does it contain a
// subdivision of K4? It is one of three sibling search features layered on
// the same planarity engine (see spec.md 4.6 and the sibling k23, k33
// packages), grounded on graphK4Search.c/graphK4Search_Extensions.c.
package k4

import (
	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/internal/xsearch"
)

// Search reports whether g contains a K4 homeomorph. A core.NonEmbeddable
// result comes with the witness subgraph (pruned to exactly the homeomorph);
// a core.Embedded result means no such subdivision exists anywhere in g.
func Search(g *core.Graph) (core.Result, *core.Graph, error) {
	return xsearch.Search(g.N(), xsearch.ListEdges(g), core.FlagOuterplanar, core.K4DegreeProfile())
}
