// Package k33 answers one question about a graph: does it contain a
// subdivision of K3,3? It is one of three sibling search features layered
// on the same planarity engine (see spec.md 4.6 and the sibling k23, k4
// packages), grounded on graphK33Search.c/graphK33Search_Extensions.c. Full
// planarity testing (core.FlagPlanar) is used as the underlying embed, since
// a K3,3 obstruction (unlike K2,3/K4) is only ever isolated under that flag;
// a K5 found along the way is treated the same way k23/k4 treat an
// unwanted-minor blockage: its edges are excluded and the search continues.
package k33

import (
	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/internal/xsearch"
)

// Search reports whether g contains a K3,3 homeomorph. A core.NonEmbeddable
// result comes with the witness subgraph (pruned to exactly the homeomorph);
// a core.Embedded result means no such subdivision exists anywhere in g.
func Search(g *core.Graph) (core.Result, *core.Graph, error) {
	return xsearch.Search(g.N(), xsearch.ListEdges(g), core.FlagPlanar, core.K33DegreeProfile())
}
