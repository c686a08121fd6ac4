package core

// This file is the arc/vertex arena: attach/detach arcs, add/delete/hide/
// restore edges, hide/restore vertices, contract an edge, and identify two
// vertices. Every mutation keeps the adjacency lists doubly linked and the
// twin-arc invariant (e, e^1) intact; restoration unwinds exactly what a
// stack-recorded hide/contract/identify did, in the reverse order.

// InitGraph allocates the vertex, vertex-info and arc storage for an n
// vertex graph with the given arc capacity (counted in arcs, so at most
// arcCapacity/2 edges; 0 selects room for 3n+1 edges), and resets every field to
// its zero/NIL value. It is an error to call InitGraph twice on the same
// Graph; construct a new Graph with NewGraph instead.
func (g *Graph) InitGraph(n, arcCapacity int) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.n != 0 {
		return ErrAlreadyInitialized
	}
	if n < 0 {
		return ErrTooFewVertices
	}
	if arcCapacity <= 0 {
		arcCapacity = 2 * (3*n + 1)
	}
	if arcCapacity&1 != 0 {
		arcCapacity++
	}

	g.n = n
	g.arcCapacity = arcCapacity
	g.m = 0

	g.v = make([]vertexRec, 2*n)
	g.vi = make([]vertexInfo, n)
	g.e = make([]arc, 2*arcCapacity)

	stackSize := 2 * arcCapacity
	if minSize := 6 * n; stackSize < minSize {
		stackSize = minSize
	}
	g.stack = newIntStack(stackSize)
	g.edgeHoles = newIntStack(arcCapacity / 2)

	g.sortedDFSChildLists = newListColl(n)
	g.pertinentRoots = newListColl(n)

	for v := 0; v < 2*n; v++ {
		g.initVertexRecStorage(v)
	}
	for v := 0; v < n; v++ {
		g.initVertexInfoStorage(v)
	}
	for e := 0; e < 2*arcCapacity; e++ {
		g.initEdgeRecStorage(e)
	}

	g.sortedByDFI = false
	return nil
}

func (g *Graph) initVertexRecStorage(v int) {
	g.v[v] = vertexRec{link: [2]int{NIL, NIL}, extFace: [2]int{NIL, NIL}, index: NIL}
}

func (g *Graph) initVertexInfoStorage(v int) {
	g.vi[v] = vertexInfo{
		parent:               NIL,
		leastAncestor:        NIL,
		lowpoint:             NIL,
		visitedInfo:          NIL,
		pertinentEdge:        NIL,
		pertinentRootsList:   NIL,
		futurePertinentChild: NIL,
		sortedDFSChildList:   NIL,
		forwardArcList:       NIL,
		mergeBlocker:         NIL,
	}
}

func (g *Graph) initEdgeRecStorage(e int) {
	g.e[e] = arc{link: [2]int{NIL, NIL}, neighbor: NIL}
}

// initVertexRecCore is the default functionTable.initVertexRec hook: it
// re-initializes a single vertex's structural fields (used when an
// extension needs to reset a virtual vertex for reuse).
func initVertexRecCore(g *Graph, v int) {
	g.initVertexRecStorage(v)
}

// EnsureArcCapacity grows the arc array to hold at least requiredArcCapacity
// arcs, preserving existing content. requiredArcCapacity must be even.
func (g *Graph) EnsureArcCapacity(requiredArcCapacity int) error {
	if requiredArcCapacity <= 0 || requiredArcCapacity&1 != 0 {
		return ErrCapacityExceeded
	}
	if g.arcCapacity >= requiredArcCapacity {
		return nil
	}
	if g.n == 0 {
		g.arcCapacity = requiredArcCapacity
		return nil
	}

	oldSize := 2 * g.arcCapacity
	newSize := 2 * requiredArcCapacity

	stackSize := 2 * requiredArcCapacity
	if minSize := 6 * g.n; stackSize < minSize {
		stackSize = minSize
	}
	g.stack.ensureCapacity(stackSize)
	g.edgeHoles.ensureCapacity(requiredArcCapacity / 2)

	grown := make([]arc, newSize)
	copy(grown, g.e)
	g.e = grown
	for e := oldSize; e < newSize; e++ {
		g.initEdgeRecStorage(e)
	}

	g.arcCapacity = requiredArcCapacity
	return nil
}

// edgeInUseIndexBound is the arc index one past the highest arc pair ever
// placed in use (i.e. the position a fresh, never-reclaimed pair would take).
func (g *Graph) edgeInUseIndexBound() int { return 2 * (g.m + g.edgeHoles.size()) }

func (g *Graph) nextArc(e int) int { return g.e[e].link[0] }
func (g *Graph) prevArc(e int) int { return g.e[e].link[1] }
func (g *Graph) setNextArc(e, v int) { g.e[e].link[0] = v }
func (g *Graph) setPrevArc(e, v int) { g.e[e].link[1] = v }

func (g *Graph) firstArc(v int) int { return g.v[v].link[0] }
func (g *Graph) lastArc(v int) int  { return g.v[v].link[1] }
func (g *Graph) setFirstArc(v, e int) { g.v[v].link[0] = e }
func (g *Graph) setLastArc(v, e int)  { g.v[v].link[1] = e }

func (g *Graph) adjacentArc(e, link int) int {
	if link == 0 {
		return g.nextArc(e)
	}
	return g.prevArc(e)
}

func (g *Graph) setAdjacentArc(e, link, v int) {
	if link == 0 {
		g.setNextArc(e, v)
	} else {
		g.setPrevArc(e, v)
	}
}

func (g *Graph) vertexArc(v, link int) int {
	if link == 0 {
		return g.firstArc(v)
	}
	return g.lastArc(v)
}

func (g *Graph) setVertexArc(v, link, e int) {
	if link == 0 {
		g.setFirstArc(v, e)
	} else {
		g.setLastArc(v, e)
	}
}

// attachArc splices newArc into v's adjacency list. If e is an arc, newArc
// is spliced adjacent to e on the given link side; otherwise newArc is
// spliced at the link end of v's list directly (prepend when link==0,
// append when link==1).
func (g *Graph) attachArc(v, e, link, newArc int) {
	if g.isArc(e) {
		e2 := g.adjacentArc(e, link)

		g.setAdjacentArc(e, link, newArc)
		g.setAdjacentArc(newArc, 1^link, e)

		g.setAdjacentArc(newArc, link, e2)
		if g.isArc(e2) {
			g.setAdjacentArc(e2, 1^link, newArc)
		} else {
			g.setVertexArc(v, 1^link, newArc)
		}
	} else {
		e2 := g.vertexArc(v, link)

		g.setVertexArc(v, link, newArc)
		g.setAdjacentArc(newArc, 1^link, NIL)

		g.setAdjacentArc(newArc, link, e2)
		if g.isArc(e2) {
			g.setAdjacentArc(e2, 1^link, newArc)
		} else {
			g.setVertexArc(v, 1^link, newArc)
		}
	}
}

// detachArc unsplices e from its adjacency list without clearing its own
// link fields, so it can be reattached later by restoreArc. Arcs detached
// this way must be restored in exactly the reverse order of detachment.
func (g *Graph) detachArc(e int) {
	nextArc := g.nextArc(e)
	prevArc := g.prevArc(e)
	owner := g.e[twinArc(e)].neighbor

	if g.isArc(nextArc) {
		g.setPrevArc(nextArc, prevArc)
	} else {
		g.setLastArc(owner, prevArc)
	}

	if g.isArc(prevArc) {
		g.setNextArc(prevArc, nextArc)
	} else {
		g.setFirstArc(owner, nextArc)
	}
}

// restoreArc reverses a detachArc, assuming arcs are restored in exactly
// the opposite order in which they were detached.
func (g *Graph) restoreArc(e int) {
	nextArc := g.nextArc(e)
	prevArc := g.prevArc(e)
	owner := g.e[twinArc(e)].neighbor

	if g.isArc(nextArc) {
		g.setPrevArc(nextArc, e)
	} else {
		g.setLastArc(owner, e)
	}

	if g.isArc(prevArc) {
		g.setNextArc(prevArc, e)
	} else {
		g.setFirstArc(owner, e)
	}
}

// AddEdge adds the undirected edge (u,v), placing the arc to v into u's
// adjacency list on the ulink side and the arc to u into v's list on the
// vlink side (link==0 prepends, link==1 appends).
func (g *Graph) AddEdge(u, ulink, v, vlink int) (Result, error) {
	if !g.isPrimaryVertex(u) && !g.isVirtualVertex(u) {
		return Embedded, ErrBadVertex
	}
	if !g.isPrimaryVertex(v) && !g.isVirtualVertex(v) {
		return Embedded, ErrBadVertex
	}
	if g.m >= g.arcCapacity/2 {
		return NonEmbeddable, ErrTooManyEdges
	}

	var vpos int
	if g.edgeHoles.nonEmpty() {
		vpos = g.edgeHoles.pop()
	} else {
		vpos = g.edgeInUseIndexBound()
	}
	upos := twinArc(vpos)

	g.e[upos].neighbor = v
	g.attachArc(u, NIL, ulink, upos)
	g.e[vpos].neighbor = u
	g.attachArc(v, NIL, vlink, vpos)

	g.m++
	return Embedded, nil
}

// InsertEdge adds the edge (u,v) such that the new arc in u's list is
// spliced adjacent to eu (on the eulink side) and the new arc in v's list
// is spliced adjacent to ev (on the evlink side). If eu (ev) is not an arc,
// eulink (evlink) selects prepend (0) or append (1) to u's (v's) list.
func (g *Graph) InsertEdge(u, eu, eulink, v, ev, evlink int) (Result, error) {
	if g.m >= g.arcCapacity/2 {
		return NonEmbeddable, ErrTooManyEdges
	}

	var vpos int
	if g.edgeHoles.nonEmpty() {
		vpos = g.edgeHoles.pop()
	} else {
		vpos = g.edgeInUseIndexBound()
	}
	upos := twinArc(vpos)

	g.e[upos].neighbor = v
	g.attachArc(u, eu, eulink, upos)

	g.e[vpos].neighbor = u
	g.attachArc(v, ev, evlink, vpos)

	g.m++
	return Embedded, nil
}

// DeleteEdge removes arc e and its twin from their adjacency lists and from
// the in-use arc range, returning the arc that was adjacent to e on the
// nextLink side before deletion (useful when deleting while iterating).
func (g *Graph) DeleteEdge(e, nextLink int) int {
	nextArc := g.adjacentArc(e, nextLink)

	g.detachArc(e)
	g.detachArc(twinArc(e))

	lo := e &^ 1
	g.initEdgeRecStorage(lo)
	g.initEdgeRecStorage(lo + 1)

	g.m--

	if e < g.edgeInUseIndexBound() {
		g.edgeHoles.push(e)
	}

	return nextArc
}

// HideEdge removes both arcs of edge e from their adjacency lists without
// deleting them, so HideEdge/RestoreEdge pairs can be nested on the stack.
func (g *Graph) HideEdge(e int) {
	g.detachArc(e)
	g.detachArc(twinArc(e))
}

// RestoreEdge reverses the most recently performed, not-yet-reversed
// HideEdge; restoration order must mirror hiding order exactly.
func (g *Graph) RestoreEdge(e int) {
	g.restoreArc(twinArc(e))
	g.restoreArc(e)
}

// HideInternalEdges pushes and hides every arc in v's adjacency list except
// the first and last, which are assumed to be v's two external-face
// attachments. Callers must record the stack size beforehand to later
// restore exactly this segment via RestoreHiddenEdges.
func (g *Graph) HideInternalEdges(v int) {
	e := g.firstArc(v)
	if e == g.lastArc(v) {
		return
	}
	e = g.nextArc(e)
	for e != g.lastArc(v) {
		g.stack.push(e)
		g.HideEdge(e)
		e = g.nextArc(e)
	}
}

// RestoreHiddenEdges pops and restores arcs down to stackBottom, in exact
// reverse of the order they were hidden.
func (g *Graph) RestoreHiddenEdges(stackBottom int) error {
	for g.stack.size() > stackBottom {
		e := g.stack.pop()
		if !g.isArc(e) {
			return ErrInternal
		}
		g.RestoreEdge(e)
	}
	return nil
}

// HideVertex hides every arc of v and pushes a restoration segment (a
// degenerate IdentifyVertices segment with u==NIL) so RestoreVertex can
// reverse it later.
func (g *Graph) HideVertex(v int) {
	hiddenEdgeStackBottom := g.stack.size()
	e := g.firstArc(v)
	for g.isArc(e) {
		g.stack.push(e)
		g.HideEdge(e)
		e = g.nextArc(e)
	}

	g.stack.push(hiddenEdgeStackBottom)
	g.stack.push(NIL)
	g.stack.push(NIL)
	g.stack.push(NIL)
	g.stack.push(NIL)
	g.stack.push(NIL)
	g.stack.push(v)
}

// ContractEdge hides edge e and identifies its head vertex with its tail.
func (g *Graph) ContractEdge(e int) error {
	u := g.e[twinArc(e)].neighbor
	v := g.e[e].neighbor

	eBefore := g.nextArc(e)
	g.stack.push(e)
	g.HideEdge(e)

	if err := g.IdentifyVertices(u, v, eBefore); err != nil {
		return err
	}
	// Lower the segment's hidden-edge bottom by one so RestoreVertex also
	// restores e, which was pushed just before IdentifyVertices ran.
	g.stack.data[g.stack.size()-7]--
	return nil
}

// IdentifyVertices merges v into u: v's non-duplicate adjacencies move into
// u's list (spliced in before eBefore, or appended if eBefore is NIL), and
// edges that would duplicate an existing u-adjacency are hidden instead.
// The operation is reversible via RestoreVertex in exact reverse order.
func (g *Graph) IdentifyVertices(u, v, eBefore int) error {
	if e := g.neighborEdgeRecord(u, v); g.isArc(e) {
		return g.ContractEdge(e)
	}

	hiddenEdgeStackBottom := g.stack.size()

	e := g.firstArc(u)
	for g.isArc(e) {
		n := g.e[e].neighbor
		if g.v[n].visited {
			return ErrInternal
		}
		g.v[n].visited = true
		e = g.nextArc(e)
	}

	e = g.firstArc(v)
	for g.isArc(e) {
		n := g.e[e].neighbor
		next := g.nextArc(e)
		if g.v[n].visited {
			g.stack.push(e)
			g.HideEdge(e)
		}
		e = next
	}

	e = g.firstArc(u)
	for g.isArc(e) {
		g.v[g.e[e].neighbor].visited = false
		e = g.nextArc(e)
	}

	g.stack.push(hiddenEdgeStackBottom)

	var eBeforePred int
	if g.isArc(eBefore) {
		eBeforePred = g.prevArc(eBefore)
	} else {
		eBeforePred = g.lastArc(u)
	}

	g.stack.push(eBefore)
	g.stack.push(g.lastArc(v))
	g.stack.push(g.firstArc(v))
	g.stack.push(eBeforePred)
	g.stack.push(u)
	g.stack.push(v)

	e = g.firstArc(v)
	for g.isArc(e) {
		g.e[twinArc(e)].neighbor = u
		e = g.nextArc(e)
	}

	if g.isArc(g.firstArc(v)) {
		if g.isArc(eBeforePred) {
			g.setNextArc(eBeforePred, g.firstArc(v))
			g.setPrevArc(g.firstArc(v), eBeforePred)
		} else {
			g.setFirstArc(u, g.firstArc(v))
		}

		if g.isArc(eBefore) {
			g.setNextArc(g.lastArc(v), eBefore)
			g.setPrevArc(eBefore, g.lastArc(v))
		} else {
			g.setLastArc(u, g.lastArc(v))
		}

		g.setFirstArc(v, NIL)
		g.setLastArc(v, NIL)
	}

	return nil
}

// RestoreVertex pops one IdentifyVertices/ContractEdge/HideVertex segment
// off the stack and reverses it.
func (g *Graph) RestoreVertex() error {
	if g.stack.size() < 7 {
		return ErrInternal
	}

	v := g.stack.pop()
	u := g.stack.pop()
	eUPred := g.stack.pop()
	eVFirst := g.stack.pop()
	eVLast := g.stack.pop()
	eUSucc := g.stack.pop()

	if g.isVertex(u) {
		if g.isArc(eUPred) {
			g.setNextArc(eUPred, eUSucc)
			if g.isArc(eUSucc) {
				g.setPrevArc(eUSucc, eUPred)
			} else {
				g.setLastArc(u, eUPred)
			}
		} else if g.isArc(eUSucc) {
			g.setPrevArc(eUSucc, NIL)
			g.setFirstArc(u, eUSucc)
		} else {
			g.setFirstArc(u, NIL)
			g.setLastArc(u, NIL)
		}

		g.setFirstArc(v, eVFirst)
		g.setLastArc(v, eVLast)
		if g.isArc(eVFirst) {
			g.setPrevArc(eVFirst, NIL)
		}
		if g.isArc(eVLast) {
			g.setNextArc(eVLast, NIL)
		}

		e := eVFirst
		for g.isArc(e) {
			g.e[twinArc(e)].neighbor = v
			if e == eVLast {
				e = NIL
			} else {
				e = g.nextArc(e)
			}
		}
	}

	hesb := g.stack.pop()
	return g.RestoreHiddenEdges(hesb)
}

// RestoreVertices unwinds the entire stack by repeated RestoreVertex calls.
func (g *Graph) RestoreVertices() error {
	for g.stack.nonEmpty() {
		if err := g.RestoreVertex(); err != nil {
			return err
		}
	}
	return nil
}

// neighborEdgeRecord returns the arc in u's adjacency list pointing at v,
// or NIL if u and v are not adjacent.
func (g *Graph) neighborEdgeRecord(u, v int) int {
	e := g.firstArc(u)
	for g.isArc(e) {
		if g.e[e].neighbor == v {
			return e
		}
		e = g.nextArc(e)
	}
	return NIL
}

// IsNeighbor reports whether u and v are adjacent.
func (g *Graph) IsNeighbor(u, v int) bool {
	return g.isArc(g.neighborEdgeRecord(u, v))
}

// VertexDegree counts v's adjacency list by walking it.
func (g *Graph) VertexDegree(v int) int {
	degree := 0
	for e := g.firstArc(v); g.isArc(e); e = g.nextArc(e) {
		degree++
	}
	return degree
}
