package core

// This file is the DFS preprocessor (spec.md 4.2): one iterative DFS that
// assigns DFS indices and parents, types every arc relative to the DFS
// tree, splices back-edge twins into forward-arc lists sorted by descendant
// DFI, and appends each discovered child to its parent's sorted DFS-child
// list. CreateDFSTree alone leaves the graph in input-vertex order; callers
// that also need lowpoints and singleton-bicomp seeding should call
// PreprocessForEmbedding, which additionally sorts vertices by DFI.

// CreateDFSTree assigns a DFI and parent to every vertex, reachable from
// gp_CreateDFSTree and the DFS phase of _EmbeddingInitialize in the
// original engine. It is idempotent: a second call is a no-op success.
func (g *Graph) CreateDFSTree() error {
	if g.dfsNumbered {
		return nil
	}
	if g.stack.size() != 0 {
		g.stack.clear()
	}

	for v := range g.v[:g.n] {
		g.v[v].visited = false
	}

	dfi := 0
	for v := 0; v < g.n; v++ {
		if g.isVertex(g.vi[v].parent) {
			continue
		}

		g.stack.push2(NIL, NIL)
		for g.stack.nonEmpty() {
			uparent, e := g.stack.pop2()

			var u int
			if !g.isVertex(uparent) {
				u = v
			} else {
				u = g.e[e].neighbor
			}

			if g.v[u].visited {
				continue
			}

			g.v[u].visited = true
			g.v[u].index = dfi
			g.vi[u].parent = uparent
			g.vi[u].leastAncestor = dfi
			dfi++

			if g.isArc(e) {
				g.e[e].etype = typeTreeChild
				g.e[twinArc(e)].etype = typeTreeParent

				g.vi[uparent].sortedDFSChildList = g.sortedDFSChildLists.append(g.vi[uparent].sortedDFSChildList, g.v[u].index)

				r := g.rootFromChild(g.v[u].index)
				g.setFirstArc(r, e)
				g.setLastArc(r, e)
			}

			arc := g.firstArc(u)
			for g.isArc(arc) {
				next := g.nextArc(arc)
				neighbor := g.e[arc].neighbor
				if !g.v[neighbor].visited {
					g.stack.push2(u, arc)
				} else if g.e[arc].etype != typeTreeParent {
					g.e[arc].etype = typeBack
					eTwin := twinArc(arc)
					g.e[eTwin].etype = typeForward

					g.spliceOutOfAdjacency(eTwin, neighbor)
					g.appendForwardArc(neighbor, eTwin)

					if g.v[neighbor].index < g.vi[u].leastAncestor {
						g.vi[u].leastAncestor = g.v[neighbor].index
					}
				}
				arc = next
			}
		}
	}

	g.dfsNumbered = true
	return nil
}

// spliceOutOfAdjacency removes arc e from owner's regular adjacency list,
// the first step in moving a forward arc into its forward-arc list.
func (g *Graph) spliceOutOfAdjacency(e, owner int) {
	ePrev := g.prevArc(e)
	eNext := g.nextArc(e)

	if g.isArc(ePrev) {
		g.setNextArc(ePrev, eNext)
	} else {
		g.setFirstArc(owner, eNext)
	}
	if g.isArc(eNext) {
		g.setPrevArc(eNext, ePrev)
	} else {
		g.setLastArc(owner, ePrev)
	}
}

// appendForwardArc splices e onto the end of owner's circular forward-arc
// list, which ends up sorted by descendant DFI because edges are visited
// in adjacency-list order during a DFS already ordered by DFI.
func (g *Graph) appendForwardArc(owner, e int) {
	if f := g.vi[owner].forwardArcList; g.isArc(f) {
		ePrev := g.prevArc(f)
		g.setPrevArc(e, ePrev)
		g.setNextArc(e, f)
		g.setPrevArc(f, e)
		g.setNextArc(ePrev, e)
	} else {
		g.vi[owner].forwardArcList = e
		g.setPrevArc(e, e)
		g.setNextArc(e, e)
	}
}

// SortVertices reorders the primary vertices so that they appear in
// ascending DFI order, relabeling every neighbor/parent field and the
// vertex's own index field to hold its prior position. The operation is an
// involution: calling it twice restores the original order.
func (g *Graph) SortVertices() error {
	if !g.dfsNumbered {
		if err := g.CreateDFSTree(); err != nil {
			return err
		}
	}

	bound := g.edgeInUseIndexBound()
	for e := 0; e < bound; e += 2 {
		if g.e[e].neighbor == NIL {
			continue
		}
		g.e[e].neighbor = g.v[g.e[e].neighbor].index
		g.e[e+1].neighbor = g.v[g.e[e+1].neighbor].index
	}

	for v := 0; v < g.n; v++ {
		if g.isVertex(g.vi[v].parent) {
			g.vi[v].parent = g.v[g.vi[v].parent].index
		}
	}

	for v := range g.v[:g.n] {
		g.v[v].visited = false
	}

	for v := 0; v < g.n; v++ {
		srcPos := v
		for !g.v[v].visited {
			dstPos := g.v[v].index
			g.v[dstPos], g.v[v] = g.v[v], g.v[dstPos]
			g.vi[dstPos], g.vi[v] = g.vi[v], g.vi[dstPos]
			g.v[dstPos].visited = true
			g.v[dstPos].index = srcPos
			srcPos = dstPos
		}
	}

	g.sortedByDFI = !g.sortedByDFI
	return nil
}

// computeLowpointsAndSeedBicomps assumes vertices are sorted by DFI. For
// each primary vertex it takes the min of leastAncestor and its DFS
// children's lowpoints (children always have a greater DFI, so a single
// descending pass suffices instead of a post-order tree walk), then embeds
// every tree edge as a singleton biconnected component with its external
// face short-circuited to itself.
func (g *Graph) computeLowpointsAndSeedBicomps() {
	for v := g.n - 1; v >= 0; v-- {
		least := g.vi[v].leastAncestor
		child := g.vi[v].sortedDFSChildList
		for g.isVertex(child) {
			if cl := g.vi[child].lowpoint; cl < least {
				least = cl
			}
			child = g.sortedDFSChildLists.getNext(g.vi[v].sortedDFSChildList, child)
		}
		g.vi[v].lowpoint = least

		if !g.isVertex(g.vi[v].parent) {
			g.setFirstArc(v, NIL)
			g.setLastArc(v, NIL)
			continue
		}

		r := g.rootFromChild(v)
		e := g.firstArc(r)
		g.setPrevArc(e, NIL)
		g.setNextArc(e, NIL)

		eTwin := twinArc(e)
		g.e[eTwin].neighbor = r

		g.setFirstArc(v, eTwin)
		g.setLastArc(v, eTwin)
		g.setPrevArc(eTwin, NIL)
		g.setNextArc(eTwin, NIL)

		g.v[r].extFace[0] = v
		g.v[r].extFace[1] = v
		g.v[v].extFace[0] = r
		g.v[v].extFace[1] = r
	}
}

// PreprocessForEmbedding runs CreateDFSTree, sorts vertices by DFI, and
// computes lowpoints and the singleton-bicomp seeding that the embedder
// needs; it is the DFS-preprocessor half of embeddingInitializeCore (the
// other half, pertinence/future-pertinence initialization, lives in
// embed.go since it belongs to external-face/pertinence bookkeeping, not
// DFS structure).
func (g *Graph) PreprocessForEmbedding() error {
	if err := g.CreateDFSTree(); err != nil {
		return err
	}
	if !g.sortedByDFI {
		if err := g.SortVertices(); err != nil {
			return err
		}
	}
	g.computeLowpointsAndSeedBicomps()
	return nil
}
