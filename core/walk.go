package core

// This file is the embedding loop's second half (spec.md 4.4): Walkdown,
// MergeBicomps, MergeVertex, InvertVertex, and EmbedBackEdgeToDescendant.
// Together with Walkup (extface.go) these merge biconnected components
// along the external face and embed back edges one DFS step at a time.

// embedBackEdgeCore splices the fwdArc (currently in the parent copy's
// forward-arc list) into rootVertex's adjacency list on rootSide, and the
// corresponding back arc into w's list on wPrevLink, then links the two
// endpoints together on the external face.
func embedBackEdgeCore(g *Graph, rootSide, rootVertex, w, wPrevLink int) {
	fwdArc := g.vi[w].pertinentEdge
	backArc := twinArc(fwdArc)

	parentCopy := g.primaryFromRoot(rootVertex)

	if g.vi[parentCopy].forwardArcList == fwdArc {
		next := g.nextArc(fwdArc)
		if next == fwdArc {
			g.vi[parentCopy].forwardArcList = NIL
		} else {
			g.vi[parentCopy].forwardArcList = next
		}
	}
	g.setNextArc(g.prevArc(fwdArc), g.nextArc(fwdArc))
	g.setPrevArc(g.nextArc(fwdArc), g.prevArc(fwdArc))

	g.setAdjacentArc(fwdArc, 1^rootSide, NIL)
	g.setAdjacentArc(fwdArc, rootSide, g.vertexArc(rootVertex, rootSide))
	g.setAdjacentArc(g.vertexArc(rootVertex, rootSide), 1^rootSide, fwdArc)
	g.setVertexArc(rootVertex, rootSide, fwdArc)

	g.setAdjacentArc(backArc, 1^wPrevLink, NIL)
	g.setAdjacentArc(backArc, wPrevLink, g.vertexArc(w, wPrevLink))
	g.setAdjacentArc(g.vertexArc(w, wPrevLink), 1^wPrevLink, backArc)
	g.setVertexArc(w, wPrevLink, backArc)

	g.e[backArc].neighbor = rootVertex

	g.setExtFaceVertex(rootVertex, rootSide, w)
	g.setExtFaceVertex(w, wPrevLink, rootVertex)
}

// invertVertex flips w's orientation: adjacency-list next/prev links are
// swapped throughout, the first/last arc indicators are swapped, and the
// two external-face slots are swapped.
func invertVertex(g *Graph, w int) {
	e := g.firstArc(w)
	for g.isArc(e) {
		next := g.nextArc(e)
		g.setNextArc(e, g.prevArc(e))
		g.setPrevArc(e, next)
		e = next
	}

	first, last := g.firstArc(w), g.lastArc(w)
	g.setFirstArc(w, last)
	g.setLastArc(w, first)

	g.v[w].extFace[0], g.v[w].extFace[1] = g.v[w].extFace[1], g.v[w].extFace[0]
}

// mergeVertexCore redirects every arc currently pointing into r so it
// points into w instead, then splices r's adjacency list into w's at the
// wPrevLink/1^wPrevLink boundary, and clears r for reuse.
func mergeVertexCore(g *Graph, w, wPrevLink, r int) {
	for e := g.firstArc(r); g.isArc(e); e = g.nextArc(e) {
		g.e[twinArc(e)].neighbor = w
	}

	eW := g.vertexArc(w, wPrevLink)
	eR := g.vertexArc(r, 1^wPrevLink)
	eExt := g.vertexArc(r, wPrevLink)

	if g.isArc(eW) {
		g.setAdjacentArc(eW, 1^wPrevLink, eR)
		g.setAdjacentArc(eR, wPrevLink, eW)

		g.setVertexArc(w, wPrevLink, eExt)
		g.setAdjacentArc(eExt, 1^wPrevLink, NIL)
	} else {
		g.setVertexArc(w, 1^wPrevLink, eR)
		g.setAdjacentArc(eR, wPrevLink, NIL)

		g.setVertexArc(w, wPrevLink, eExt)
		g.setAdjacentArc(eExt, 1^wPrevLink, NIL)
	}

	g.initVertexRecStorage(r)
}

// mergeBicompsCore drains the work stack, merging every (Z, ZPrevLink) /
// (R, Rout) pair pushed by Walkdown's descent into R into the bicomp
// rooted at Z, flipping R's orientation when the entry and exit directions
// oppose (deferring propagation of that flip via the inverted flag on R's
// single tree-child arc), then physically merging R's arcs into Z.
func mergeBicompsCore(g *Graph, _, _, _, _ int) (Result, error) {
	for g.stack.nonEmpty() {
		r, rOut := g.stack.pop2()
		z, zPrevLink := g.stack.pop2()

		extVertex := g.extFaceVertex(r, 1^rOut)
		g.setExtFaceVertex(z, zPrevLink, extVertex)

		if g.extFaceVertex(extVertex, 0) == g.extFaceVertex(extVertex, 1) {
			g.setExtFaceVertex(extVertex, rOut, z)
		} else if g.extFaceVertex(extVertex, 0) == r {
			g.setExtFaceVertex(extVertex, 0, z)
		} else {
			g.setExtFaceVertex(extVertex, 1, z)
		}

		if zPrevLink == rOut {
			rOut = 1 ^ zPrevLink

			if g.firstArc(r) != g.lastArc(r) {
				invertVertex(g, r)
			}

			for e := g.firstArc(r); g.isArc(e); e = g.nextArc(e) {
				if g.e[e].etype == typeTreeChild {
					g.e[e].inverted = !g.e[e].inverted
					break
				}
			}
		}

		g.vi[z].pertinentRootsList = g.pertinentRoots.delete(g.vi[z].pertinentRootsList, g.childFromRoot(r))

		if g.childFromRoot(r) == g.vi[z].futurePertinentChild {
			g.vi[z].futurePertinentChild = g.sortedDFSChildLists.getNext(g.vi[z].sortedDFSChildList, g.vi[z].futurePertinentChild)
		}

		g.fn.mergeVertex(g, z, zPrevLink, r)
	}
	return Embedded, nil
}

// advanceFwdArcList advances v's forward-arc list head past arcs that have
// been left unembedded for child's subtree, positioning it at the least
// unembedded descendant endpoint so the next Walkdown (for nextChild, if
// any) starts in the right place.
func (g *Graph) advanceFwdArcList(v, child, nextChild int) {
	e := g.vi[v].forwardArcList
	for g.isArc(e) {
		if g.e[e].neighbor < child {
			g.vi[v].forwardArcList = e
			return
		}
		if g.isVertex(nextChild) && nextChild < g.e[e].neighbor {
			g.vi[v].forwardArcList = e
			return
		}
		e = g.nextArc(e)
		if e == g.vi[v].forwardArcList {
			return
		}
	}
}

// handleInactiveVertexCore steps from *w to the next external-face vertex,
// the default (no short-circuiting of the skipped vertex) inactive-vertex
// handler.
func handleInactiveVertexCore(g *Graph, _ int, w, wPrevLink *int) error {
	x := g.extFaceVertex(*w, 1^*wPrevLink)
	*wPrevLink = g.extFaceSideLeadingTo(x, *w)
	if *wPrevLink == NIL {
		*wPrevLink = 0
	}
	*w = x
	return nil
}

// handleBlockedBicompCore is invoked when both external-face paths from a
// pertinent bicomp root are blocked by stopping vertices (or, at the end of
// Walkdown, when not all forward arcs into a DFS child's subtree could be
// embedded). The core behavior isolates a Kuratowski (or outerplanar)
// obstruction and reports NonEmbeddable; extensions overload this to try
// clearing the blockage instead.
func handleBlockedBicompCore(g *Graph, v, rootVertex, r int) (Result, error) {
	if r != rootVertex {
		g.stack.push2(r, 0)
	}

	if g.embedFlags&FlagOuterplanar != 0 {
		if err := isolateOuterplanarObstruction(g, v, rootVertex); err != nil {
			return Embedded, err
		}
		return NonEmbeddable, nil
	}

	if err := isolateKuratowskiSubgraph(g, v, rootVertex); err != nil {
		return Embedded, err
	}
	return NonEmbeddable, nil
}

// walkDownCore performs the two-sided external-face traversal from
// rootVertex, merging pertinent child bicomps and embedding back edges as
// it meets descendants adjacent to v, per spec.md 4.4.
func walkDownCore(g *Graph, v, rootVertex int) (Result, error) {
	rootEdgeChild := g.childFromRoot(rootVertex)

	g.stack.clear()

	for rootSide := 0; rootSide < 2; rootSide++ {
		w := g.extFaceVertex(rootVertex, rootSide)
		wPrevLink := 0
		if g.extFaceVertex(w, 1) == rootVertex {
			wPrevLink = 1
		}

		for w != rootVertex {
			if g.isArc(g.vi[w].pertinentEdge) {
				if g.stack.nonEmpty() {
					res, err := g.fn.mergeBicomps(g, v, rootVertex, w, wPrevLink)
					if err != nil || res != Embedded {
						return res, err
					}
				}
				g.fn.embedBackEdge(g, rootSide, rootVertex, w, wPrevLink)
				g.vi[w].pertinentEdge = NIL
			}

			if g.isVertex(g.vi[w].pertinentRootsList) {
				g.stack.push2(w, wPrevLink)
				r := g.rootFromChild(g.vi[w].pertinentRootsList)

				x := g.extFaceVertex(r, 0)
				xPrevLink := 0
				if g.extFaceVertex(x, 1) == r {
					xPrevLink = 1
				}
				y := g.extFaceVertex(r, 1)
				yPrevLink := 1
				if g.extFaceVertex(y, 0) == r {
					yPrevLink = 0
				}

				g.advanceFutureVertexActivity(x, v)
				g.advanceFutureVertexActivity(y, v)

				switch {
				case g.isPertinent(x) && !g.isFuturePertinent(x, v):
					w, wPrevLink = x, xPrevLink
					g.stack.push2(r, 0)
				case g.isPertinent(y) && !g.isFuturePertinent(y, v):
					w, wPrevLink = y, yPrevLink
					g.stack.push2(r, 1)
				case g.isPertinent(x):
					w, wPrevLink = x, xPrevLink
					g.stack.push2(r, 0)
				case g.isPertinent(y):
					w, wPrevLink = y, yPrevLink
					g.stack.push2(r, 1)
				default:
					res, err := g.fn.handleBlockedBicomp(g, v, rootVertex, r)
					if err != nil || res != Embedded {
						return res, err
					}
					w, wPrevLink = g.stack.pop2()
				}
			} else {
				g.advanceFutureVertexActivity(w, v)
				if g.isFuturePertinent(w, v) || g.embedFlags&FlagOuterplanar != 0 {
					if g.extFaceVertex(rootVertex, 1^rootSide) == w {
						x := w
						w = g.extFaceVertex(w, wPrevLink)
						if g.extFaceVertex(w, 0) == x {
							wPrevLink = 1
						} else {
							wPrevLink = 0
						}
					}
					g.setExtFaceVertex(rootVertex, rootSide, w)
					g.setExtFaceVertex(w, wPrevLink, rootVertex)
					break
				}

				if err := g.fn.handleInactiveVertex(g, rootVertex, &w, &wPrevLink); err != nil {
					return Embedded, err
				}
			}
		}
	}

	if e := g.vi[v].forwardArcList; g.isArc(e) && rootEdgeChild < g.e[e].neighbor {
		nextChild := g.sortedDFSChildLists.getNext(g.vi[v].sortedDFSChildList, rootEdgeChild)

		if !g.isVertex(nextChild) || nextChild > g.e[e].neighbor {
			res, err := g.fn.handleBlockedBicomp(g, v, rootVertex, rootVertex)
			if err != nil {
				return Embedded, err
			}
			if res == Embedded {
				g.advanceFwdArcList(v, rootEdgeChild, nextChild)
			}
			return res, nil
		}
	}

	return Embedded, nil
}
