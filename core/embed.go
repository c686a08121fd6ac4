package core

// This file is the embedder's public driver (spec.md 4.1/4.4): Embed runs
// one reverse-DFI pass, calling Walkup for every forward arc into a vertex
// and Walkdown for every pertinent DFS child, then hands off to
// postprocessing to orient the embedding and merge any bicomps that never
// needed to merge during the main loop (separable or disconnected input).

// Embed tests the graph for planarity (or outerplanarity, if FlagOuterplanar
// is set) and either builds a combinatorial embedding in place or isolates a
// witness obstruction. The Result return is the algorithmic verdict; a
// non-nil error reports a structural failure instead (see doc.go).
func (g *Graph) Embed(embedFlags EmbedFlags) (Result, error) {
	g.embedFlags = embedFlags

	if err := g.fn.embeddingInitialize(g); err != nil {
		return Embedded, err
	}

	retVal := Embedded
	v := g.lastVertex()
	var err error

	for ; v >= g.firstVertex(); v-- {
		retVal = Embedded

		e := g.vi[v].forwardArcList
		for g.isArc(e) {
			g.fn.walkUp(g, v, e)

			e = g.nextArc(e)
			if e == g.vi[v].forwardArcList {
				e = NIL
			}
		}
		g.vi[v].pertinentRootsList = NIL

		c := g.vi[v].sortedDFSChildList
		for g.isVertex(c) {
			if g.isVertex(g.vi[c].pertinentRootsList) {
				retVal, err = g.fn.walkDown(g, v, g.rootFromChild(c))
				if err != nil {
					return Embedded, err
				}
				if retVal != Embedded {
					break
				}
			}
			c = g.sortedDFSChildLists.getNext(g.vi[v].sortedDFSChildList, c)
		}

		if retVal != Embedded {
			break
		}
	}

	return g.fn.embedPostprocess(g, v, retVal)
}

// embeddingInitializeCore runs PreprocessForEmbedding (DFI assignment, edge
// typing, sorted child/forward-arc lists, vertex sort, lowpoints, singleton
// bicomp seeding) and then the pertinence/future-pertinence initialization
// step that PreprocessForEmbedding leaves to this file: visitedInfo reset to
// N (a DFI no vertex will ever reach, so every visitedInfo comparison starts
// false) and futurePertinentChild seeded at the head of the sorted child
// list.
func embeddingInitializeCore(g *Graph) error {
	if err := g.PreprocessForEmbedding(); err != nil {
		return err
	}

	for v := g.lastVertex(); v >= g.firstVertex(); v-- {
		g.vi[v].visitedInfo = g.n
		g.vi[v].futurePertinentChild = g.vi[v].sortedDFSChildList
	}
	return nil
}

// embedPostprocessCore orients every vertex in the embedding consistently
// and merges any bicomps that were never joined during the main loop
// (arising from separable or disconnected input), but only when the edge
// embedding loop reported Embedded; a NonEmbeddable result is passed
// straight through since an obstruction has already been isolated.
func embedPostprocessCore(g *Graph, _ int, edgeEmbeddingResult Result) (Result, error) {
	if edgeEmbeddingResult != Embedded {
		return edgeEmbeddingResult, nil
	}

	if err := g.orientVerticesInEmbedding(); err != nil {
		return Embedded, err
	}
	if err := g.joinBicomps(); err != nil {
		return Embedded, err
	}
	return Embedded, nil
}

// orientVerticesInEmbedding imposes a single consistent clockwise/
// counterclockwise orientation on every vertex within each bicomp still in
// use as a virtual-vertex root.
func (g *Graph) orientVerticesInEmbedding() error {
	g.stack.clear()

	for r := g.n; r < 2*g.n; r++ {
		if g.virtualVertexInUse(r) {
			if err := g.orientVerticesInBicomp(r, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// orientVerticesInBicomp propagates the bicomp root's orientation to every
// vertex merged into it: a vertex is inverted if the product of the
// inverted flags along tree-child arcs from the root to it is odd. When
// preserveSigns is true the inverted flags are left untouched, letting a
// second call restore the bicomp to its pre-call state.
func (g *Graph) orientVerticesInBicomp(bicompRoot int, preserveSigns bool) error {
	stackBottom := g.stack.size()
	g.stack.push2(bicompRoot, 0)

	for g.stack.size() > stackBottom {
		w, inverted := g.stack.pop2()

		if inverted != 0 {
			invertVertex(g, w)
		}

		for e := g.firstArc(w); g.isArc(e); e = g.nextArc(e) {
			if g.e[e].etype == typeTreeChild {
				childInverted := 0
				if (inverted != 0) != g.e[e].inverted {
					childInverted = 1
				}
				g.stack.push2(g.e[e].neighbor, childInverted)

				if !preserveSigns {
					g.e[e].inverted = false
				}
			}
		}
	}
	return nil
}

// joinBicomps merges every virtual vertex still in use into its primary
// counterpart, collapsing the singleton/merged bicomps that the main loop
// built into one connected embedding.
func (g *Graph) joinBicomps() error {
	for r := g.n; r < 2*g.n; r++ {
		if g.virtualVertexInUse(r) {
			g.fn.mergeVertex(g, g.primaryFromRoot(r), 0, r)
		}
	}
	return nil
}
