package core

// This file is the external-face short-circuit structure and vertex
// activity classification (spec.md 4.3): a two-link structure on every
// vertex that lets Walkdown traverse a bicomp's external face in time
// proportional to the embedded path length, skipping interior-inactive
// runs, plus the pertinent/future-pertinent/inactive classification that
// drives Walkdown's per-vertex decisions, plus Walkup itself (the parallel
// zig/zag traversal that establishes pertinence for a step).

// extFaceVertex returns the external-face neighbor of v on the given side.
func (g *Graph) extFaceVertex(v, side int) int { return g.v[v].extFace[side] }

func (g *Graph) setExtFaceVertex(v, side, to int) { g.v[v].extFace[side] = to }

// extFaceSideLeadingTo returns the side (0 or 1) of v's external-face links
// that points at from, used to determine which side a face walk entered v
// by. Returns NIL if neither side matches (should not happen on a live face).
func (g *Graph) extFaceSideLeadingTo(v, from int) int {
	if g.v[v].extFace[0] == from {
		return 0
	}
	if g.v[v].extFace[1] == from {
		return 1
	}
	return NIL
}

// setExtFaceBothSides short-circuits v's external face so both sides point
// at to; used when a bicomp degenerates to a two-vertex face.
func (g *Graph) setExtFaceBothSides(v, to int) {
	g.v[v].extFace[0] = to
	g.v[v].extFace[1] = to
}

// advanceFutureVertexActivity lazily advances w's futurePertinentChild
// cursor past DFS children that are no longer relevant to future pertinence
// as of step v: children whose lowpoint is already >= v, or which have
// already been merged into w's bicomp (no longer a separated DFS child).
func (g *Graph) advanceFutureVertexActivity(w, v int) {
	for {
		child := g.vi[w].futurePertinentChild
		if !g.isVertex(child) {
			return
		}
		if g.vi[child].lowpoint >= v || !g.virtualVertexInUse(g.rootFromChild(child)) {
			g.vi[w].futurePertinentChild = g.sortedDFSChildLists.getNext(g.vi[w].sortedDFSChildList, child)
			continue
		}
		return
	}
}

// isPertinent reports whether w has a pending back edge to v (a forward arc
// walked up to it) or a non-empty list of pertinent bicomp roots.
func (g *Graph) isPertinent(w int) bool {
	return g.isArc(g.vi[w].pertinentEdge) || g.isVertex(g.vi[w].pertinentRootsList)
}

// isFuturePertinent reports whether w still has a back edge attachment
// possibility above step v: either w's own leastAncestor reaches above v,
// or some still-separated DFS child of w has lowpoint < v.
func (g *Graph) isFuturePertinent(w, v int) bool {
	if g.vi[w].leastAncestor < v {
		return true
	}
	g.advanceFutureVertexActivity(w, v)
	child := g.vi[w].futurePertinentChild
	return g.isVertex(child) && g.vi[child].lowpoint < v
}

// isInactive reports whether w is neither pertinent nor future pertinent at
// step v.
func (g *Graph) isInactive(w, v int) bool {
	return !g.isPertinent(w) && !g.isFuturePertinent(w, v)
}

// walkUpCore establishes pertinence for step v along the forward arc e to
// descendant W: W is marked directly pertinent, then two external-face
// traversals (zig, zag) run in lockstep up alternating sides of each bicomp
// until they reach v, recording the pertinent bicomp roots of every cut
// vertex along the way, and pruning as soon as a vertex already visited in
// this step is encountered.
func walkUpCore(g *Graph, v, e int) {
	w := g.e[e].neighbor
	g.vi[w].pertinentEdge = e

	zig, zag := w, w
	zigPrevLink, zagPrevLink := 1, 0

	for zig != v {
		var nextZig, nextZag, r int
		r = NIL

		if nextZig = g.v[zig].extFace[1^zigPrevLink]; g.isVirtualVertex(nextZig) {
			if g.vi0(zig).visitedInfo == v {
				break
			}
			r = nextZig
			if g.v[r].extFace[0] == zig {
				nextZag = g.v[r].extFace[1]
			} else {
				nextZag = g.v[r].extFace[0]
			}
			if g.vi0(nextZag).visitedInfo == v {
				break
			}
		} else if nextZag = g.v[zag].extFace[1^zagPrevLink]; g.isVirtualVertex(nextZag) {
			if g.vi0(zag).visitedInfo == v {
				break
			}
			r = nextZag
			if g.v[r].extFace[0] == zag {
				nextZig = g.v[r].extFace[1]
			} else {
				nextZig = g.v[r].extFace[0]
			}
			if g.vi0(nextZig).visitedInfo == v {
				break
			}
		} else {
			if g.vi0(zig).visitedInfo == v || g.vi0(zag).visitedInfo == v {
				break
			}
		}

		g.vi0(zig).visitedInfo = v
		g.vi0(zag).visitedInfo = v

		if !g.isVertex(r) {
			if g.v[nextZig].extFace[0] == zig {
				zigPrevLink = 0
			} else {
				zigPrevLink = 1
			}
			zig = nextZig

			if g.v[nextZag].extFace[0] == zag {
				zagPrevLink = 0
			} else {
				zagPrevLink = 1
			}
			zag = nextZag
		} else {
			primary := g.primaryFromRoot(r)
			zig, zag = primary, primary
			zigPrevLink, zagPrevLink = 1, 0

			if g.vi[g.childFromRoot(r)].lowpoint < v {
				g.vi[primary].pertinentRootsList = g.pertinentRoots.append(g.vi[primary].pertinentRootsList, g.childFromRoot(r))
			} else {
				g.vi[primary].pertinentRootsList = g.pertinentRoots.prepend(g.vi[primary].pertinentRootsList, g.childFromRoot(r))
			}
		}
	}
}

// vi0 is a convenience accessor used where the vertexInfo pointer reads more
// clearly than repeated slice indexing (e.g. visitedInfo checks in Walkup).
func (g *Graph) vi0(v int) *vertexInfo { return &g.vi[v] }
