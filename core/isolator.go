package core

// This file isolates a Kuratowski subgraph (spec.md 4.5) once Walkdown has
// found both external-face paths from a pertinent bicomp root blocked: a
// subdivision of K5 or K3,3 is marked visited and every other vertex/edge is
// deleted, leaving exactly the obstruction behind.

// minorType classifies which of the five non-planarity configurations
// (Minor A through E, with E further split into four refinements) produced
// the block Walkdown hit.
type minorType int

const (
	minorA minorType = 1 << iota
	minorB
	minorC
	minorD
	minorE
	minorE1
	minorE2
	minorE3
	minorE4
)

// isolatorContext holds the working state of a single isolation: the
// current vertex v, the bicomp root r, the stopping vertices x/y, the
// pertinent vertex w below them, the X-Y path attachment points px/py, the
// auxiliary vertex z used by minors D/E, and the endpoints of the
// unembedded edges that connect each of these to v or an ancestor of v.
type isolatorContext struct {
	minorType              minorType
	v, r, x, y, w, px, py, z int
	ux, dx, uy, dy, dw, uz, dz int
}

func (g *Graph) initIsolatorContext() {
	g.ic = isolatorContext{
		minorType: 0,
		v: NIL, r: NIL, x: NIL, y: NIL, w: NIL, px: NIL, py: NIL, z: NIL,
		ux: NIL, dx: NIL, uy: NIL, dy: NIL, dw: NIL, uz: NIL, dz: NIL,
	}
}

// clearVisitedFlags clears every vertex (primary and virtual) and edge
// visited flag across the whole graph.
func (g *Graph) clearVisitedFlags() {
	g.clearVertexVisitedFlags(true)
	g.clearEdgeVisitedFlags()
}

func (g *Graph) clearVertexVisitedFlags(includeVirtual bool) {
	bound := g.n
	if includeVirtual {
		bound = 2 * g.n
	}
	for v := 0; v < bound; v++ {
		g.v[v].visited = false
	}
}

func (g *Graph) clearEdgeVisitedFlags() {
	bound := g.edgeInUseIndexBound()
	for e := 0; e < bound; e++ {
		g.e[e].visited = false
	}
}

// clearVisitedFlagsInBicomp clears vertex/edge visited flags only within the
// bicomp rooted by bicompRoot, descending through tree-child arcs.
func (g *Graph) clearVisitedFlagsInBicomp(bicompRoot int) {
	stackBottom := g.stack.size()
	g.stack.push(bicompRoot)
	for g.stack.size() > stackBottom {
		v := g.stack.pop()
		g.v[v].visited = false

		for e := g.firstArc(v); g.isArc(e); e = g.nextArc(e) {
			g.e[e].visited = false
			if g.e[e].etype == typeTreeChild {
				g.stack.push(g.e[e].neighbor)
			}
		}
	}
}

// clearVertexTypeInBicomp clears the obstruction-type classification for
// every vertex in the bicomp rooted by bicompRoot.
func (g *Graph) clearVertexTypeInBicomp(bicompRoot int) {
	stackBottom := g.stack.size()
	g.stack.push(bicompRoot)
	for g.stack.size() > stackBottom {
		v := g.stack.pop()
		g.v[v].obType = obUnknown

		for e := g.firstArc(v); g.isArc(e); e = g.nextArc(e) {
			if g.e[e].etype == typeTreeChild {
				g.stack.push(g.e[e].neighbor)
			}
		}
	}
}

func (g *Graph) lastPertinentRootChild(v int) int {
	return g.pertinentRoots.getPrev(g.vi[v].pertinentRootsList, NIL)
}

// getNeighborOnExtFace walks one step along the true external face (not the
// extFace short-circuit) by exiting curVertex on whichever link was not used
// to enter it, and reports the link used to enter the next vertex.
func (g *Graph) getNeighborOnExtFace(curVertex int, prevLink *int) int {
	arc := g.vertexArc(curVertex, 1^*prevLink)
	nextVertex := g.e[arc].neighbor

	if g.firstArc(nextVertex) != g.lastArc(nextVertex) {
		if twinArc(arc) == g.firstArc(nextVertex) {
			*prevLink = 0
		} else {
			*prevLink = 1
		}
	}
	return nextVertex
}

// findActiveVertices descends from bicomp root r along both external-face
// paths, skipping inactive vertices (for planarity; outerplanarity keeps
// every vertex active), and returns the first active vertex in each
// direction.
func (g *Graph) findActiveVertices(r int) (x, y int) {
	v := g.ic.v
	xPrevLink, yPrevLink := 1, 0

	x = g.getNeighborOnExtFace(r, &xPrevLink)
	y = g.getNeighborOnExtFace(r, &yPrevLink)

	if g.embedFlags&FlagOuterplanar == 0 {
		g.advanceFutureVertexActivity(x, v)
		for g.isInactive(x, v) {
			x = g.getNeighborOnExtFace(x, &xPrevLink)
			g.advanceFutureVertexActivity(x, v)
		}

		g.advanceFutureVertexActivity(y, v)
		for g.isInactive(y, v) {
			y = g.getNeighborOnExtFace(y, &yPrevLink)
			g.advanceFutureVertexActivity(y, v)
		}
	}
	return x, y
}

// findPertinentVertex walks the lower external-face path from x towards y
// and returns the first pertinent vertex found, or NIL if y is reached
// first.
func (g *Graph) findPertinentVertex() int {
	w, wPrevLink := g.ic.x, 1
	w = g.getNeighborOnExtFace(w, &wPrevLink)

	for w != g.ic.y {
		if g.isPertinent(w) {
			return w
		}
		w = g.getNeighborOnExtFace(w, &wPrevLink)
	}
	return NIL
}

// setVertexTypesForMarkingXYPath classifies every non-root vertex on the
// external face of the bicomp rooted at r as high/low RXW or RYW, which
// markHighestXYPath then uses to recognize the X-Y path's attachment
// points.
func (g *Graph) setVertexTypesForMarkingXYPath() error {
	r, x, y, w := g.ic.r, g.ic.x, g.ic.y, g.ic.w
	if !g.isVertex(r) || !g.isVertex(x) || !g.isVertex(y) || !g.isVertex(w) {
		return ErrInternal
	}

	g.clearVertexTypeInBicomp(r)

	zPrevLink := 1
	z := g.getNeighborOnExtFace(r, &zPrevLink)
	zType := obHighRXW
	for z != w {
		if z == x {
			zType = obLowRXW
		}
		g.v[z].obType = zType
		z = g.getNeighborOnExtFace(z, &zPrevLink)
	}

	zPrevLink = 0
	z = g.getNeighborOnExtFace(r, &zPrevLink)
	zType = obHighRYW
	for z != w {
		if z == y {
			zType = obLowRYW
		}
		g.v[z].obType = zType
		z = g.getNeighborOnExtFace(z, &zPrevLink)
	}

	return nil
}

// initializeNonplanarityContext finds the stopping vertices x/y and the
// pertinent vertex w of the bicomp rooted by r (popping the real root off
// the work stack if Walkdown left one there for Minor A), consistently
// orients the bicomp, and classifies its external-face vertices.
func (g *Graph) initializeNonplanarityContext(v, r int) error {
	g.initIsolatorContext()
	g.ic.v = v

	if g.stack.nonEmpty() {
		r, _ = g.stack.pop2()
	}
	g.ic.r = r

	if err := g.orientVerticesInBicomp(r, true); err != nil {
		return err
	}
	g.clearVisitedFlagsInBicomp(r)

	g.ic.x, g.ic.y = g.findActiveVertices(r)
	g.ic.w = g.findPertinentVertex()

	return g.setVertexTypesForMarkingXYPath()
}

// chooseTypeOfNonplanarityMinor determines which of Minor A through E
// describes the blockage at bicomp root r and records it (and the
// attachment points it discovers) in the isolator context.
func (g *Graph) chooseTypeOfNonplanarityMinor(v, r int) error {
	if err := g.initializeNonplanarityContext(v, r); err != nil {
		return err
	}

	r, w := g.ic.r, g.ic.w

	if g.primaryFromRoot(r) != v {
		g.ic.minorType |= minorA
		return nil
	}

	if g.isVertex(g.vi[w].pertinentRootsList) {
		if g.vi[g.lastPertinentRootChild(w)].lowpoint < v {
			g.ic.minorType |= minorB
			return nil
		}
	}

	found, err := g.markHighestXYPath()
	if err != nil {
		return err
	}
	if !found {
		return ErrInternal
	}

	px, py := g.ic.px, g.ic.py
	if g.v[px].obType == obHighRXW || g.v[py].obType == obHighRYW {
		g.ic.minorType |= minorC
		return nil
	}

	if err := g.markZtoRPath(); err != nil {
		return err
	}
	if g.isVertex(g.ic.z) {
		g.ic.minorType |= minorD
		return nil
	}

	z := g.findFuturePertinenceBelowXYPath()
	if g.isVertex(z) {
		g.ic.z = z
		g.ic.minorType |= minorE
		return nil
	}

	return ErrInternal
}

// isolateKuratowskiSubgraph identifies the non-planarity minor at bicomp
// root r (where Walkdown stalled while processing vertex v), marks a K5 or
// K3,3 homeomorph visited, and deletes everything else.
func isolateKuratowskiSubgraph(g *Graph, v, r int) error {
	g.clearVisitedFlags()

	if err := g.chooseTypeOfNonplanarityMinor(v, r); err != nil {
		return err
	}
	if err := g.initializeIsolatorDerivedState(); err != nil {
		return err
	}

	var err error
	switch {
	case g.ic.minorType&minorA != 0:
		err = g.isolateMinorA()
	case g.ic.minorType&minorB != 0:
		err = g.isolateMinorB()
	case g.ic.minorType&minorC != 0:
		err = g.isolateMinorC()
	case g.ic.minorType&minorD != 0:
		err = g.isolateMinorD()
	case g.ic.minorType&minorE != 0:
		err = g.isolateMinorE()
	default:
		err = ErrInternal
	}
	if err != nil {
		return err
	}

	return g.deleteUnmarkedVerticesAndEdges()
}

// initializeIsolatorDerivedState finds the unembedded edges connecting x
// and y to ancestors of v, and (for Minor B) the unembedded edges
// connecting the pertinent subtree to both v and its least ancestor
// connection.
func (g *Graph) initializeIsolatorDerivedState() error {
	ic := &g.ic

	var ok bool
	ic.ux, ic.dx, ok = g.findUnembeddedEdgeToAncestor(ic.x)
	if !ok {
		return ErrInternal
	}
	ic.uy, ic.dy, ok = g.findUnembeddedEdgeToAncestor(ic.y)
	if !ok {
		return ErrInternal
	}

	if ic.minorType&minorB != 0 {
		subtreeRoot := g.lastPertinentRootChild(ic.w)
		ic.uz = g.vi[subtreeRoot].lowpoint

		ic.dw, ok = g.findUnembeddedEdgeToSubtree(ic.v, subtreeRoot)
		if !ok {
			return ErrInternal
		}
		ic.dz, ok = g.findUnembeddedEdgeToSubtree(ic.uz, subtreeRoot)
		if !ok {
			return ErrInternal
		}
		return nil
	}

	ic.dw, ok = g.findUnembeddedEdgeToCurVertex(ic.w)
	if !ok {
		return ErrInternal
	}

	if ic.minorType&minorE != 0 {
		ic.uz, ic.dz, ok = g.findUnembeddedEdgeToAncestor(ic.z)
		if !ok {
			return ErrInternal
		}
	}
	return nil
}

func (g *Graph) isolateMinorA() error {
	ic := &g.ic
	if err := g.markPathAlongBicompExtFace(ic.r, ic.r); err != nil {
		return err
	}
	if err := g.markDFSPath(minInt(ic.ux, ic.uy), ic.r); err != nil {
		return err
	}
	if err := g.markDFSPathsToDescendants(); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkUnembeddedEdges()
}

func (g *Graph) isolateMinorB() error {
	ic := &g.ic
	if err := g.markPathAlongBicompExtFace(ic.r, ic.r); err != nil {
		return err
	}
	if err := g.markDFSPath(min3Int(ic.ux, ic.uy, ic.uz), max3Int(ic.ux, ic.uy, ic.uz)); err != nil {
		return err
	}
	if err := g.markDFSPathsToDescendants(); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkUnembeddedEdges()
}

func (g *Graph) isolateMinorC() error {
	ic := &g.ic

	if g.v[ic.px].obType == obHighRXW {
		highY := ic.y
		if g.v[ic.py].obType == obHighRYW {
			highY = ic.py
		}
		if err := g.markPathAlongBicompExtFace(ic.r, highY); err != nil {
			return err
		}
	} else {
		if err := g.markPathAlongBicompExtFace(ic.x, ic.r); err != nil {
			return err
		}
	}

	if err := g.markDFSPathsToDescendants(); err != nil {
		return err
	}
	if err := g.markDFSPath(minInt(ic.ux, ic.uy), ic.r); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkUnembeddedEdges()
}

func (g *Graph) isolateMinorD() error {
	ic := &g.ic
	if err := g.markPathAlongBicompExtFace(ic.x, ic.y); err != nil {
		return err
	}
	if err := g.markDFSPath(minInt(ic.ux, ic.uy), ic.r); err != nil {
		return err
	}
	if err := g.markDFSPathsToDescendants(); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkUnembeddedEdges()
}

func (g *Graph) isolateMinorE() error {
	ic := &g.ic

	if ic.z != ic.w {
		return g.isolateMinorE1()
	}
	if ic.uz > maxInt(ic.ux, ic.uy) {
		return g.isolateMinorE2()
	}
	if ic.uz < maxInt(ic.ux, ic.uy) && ic.ux != ic.uy {
		return g.isolateMinorE3()
	}
	if ic.x != ic.px || ic.y != ic.py {
		return g.isolateMinorE4()
	}

	if err := g.markPathAlongBicompExtFace(ic.r, ic.r); err != nil {
		return err
	}
	if err := g.markDFSPath(min3Int(ic.ux, ic.uy, ic.uz), ic.r); err != nil {
		return err
	}
	if err := g.markDFSPathsToDescendants(); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkUnembeddedEdges()
}

// isolateMinorE1 reduces to Minor C when the future-pertinence witness z is
// not the pertinent vertex w: z takes over as whichever of x/y it attaches
// below.
func (g *Graph) isolateMinorE1() error {
	ic := &g.ic

	switch g.v[ic.z].obType {
	case obLowRXW:
		g.v[ic.px].obType = obHighRXW
		ic.x, ic.ux, ic.dx = ic.z, ic.uz, ic.dz
	case obLowRYW:
		g.v[ic.py].obType = obHighRYW
		ic.y, ic.uy, ic.dy = ic.z, ic.uz, ic.dz
	default:
		return ErrInternal
	}

	ic.z, ic.uz, ic.dz = NIL, NIL, NIL
	ic.minorType ^= minorE
	ic.minorType |= minorC | minorE1
	return g.isolateMinorC()
}

// isolateMinorE2 reduces to Minor A when z's ancestor connection is a
// descendant of both x's and y's.
func (g *Graph) isolateMinorE2() error {
	ic := &g.ic
	g.clearVisitedFlags()

	ic.v = ic.uz
	ic.dw = ic.dz
	ic.z, ic.uz, ic.dz = NIL, NIL, NIL

	ic.minorType ^= minorE
	ic.minorType |= minorA | minorE2
	return g.isolateMinorA()
}

func (g *Graph) isolateMinorE3() error {
	ic := &g.ic

	if ic.ux < ic.uy {
		if err := g.markPathAlongBicompExtFace(ic.r, ic.px); err != nil {
			return err
		}
		if err := g.markPathAlongBicompExtFace(ic.w, ic.y); err != nil {
			return err
		}
	} else {
		if err := g.markPathAlongBicompExtFace(ic.x, ic.w); err != nil {
			return err
		}
		if err := g.markPathAlongBicompExtFace(ic.py, ic.r); err != nil {
			return err
		}
	}

	if err := g.markDFSPath(min3Int(ic.ux, ic.uy, ic.uz), ic.r); err != nil {
		return err
	}
	if err := g.markDFSPathsToDescendants(); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	if err := g.addAndMarkUnembeddedEdges(); err != nil {
		return err
	}
	ic.minorType |= minorE3
	return nil
}

func (g *Graph) isolateMinorE4() error {
	ic := &g.ic

	if ic.px != ic.x {
		if err := g.markPathAlongBicompExtFace(ic.r, ic.w); err != nil {
			return err
		}
		if err := g.markPathAlongBicompExtFace(ic.py, ic.r); err != nil {
			return err
		}
	} else {
		if err := g.markPathAlongBicompExtFace(ic.r, ic.px); err != nil {
			return err
		}
		if err := g.markPathAlongBicompExtFace(ic.w, ic.r); err != nil {
			return err
		}
	}

	if err := g.markDFSPath(min3Int(ic.ux, ic.uy, ic.uz), max3Int(ic.ux, ic.uy, ic.uz)); err != nil {
		return err
	}
	if err := g.markDFSPathsToDescendants(); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	if err := g.addAndMarkUnembeddedEdges(); err != nil {
		return err
	}
	ic.minorType |= minorE4
	return nil
}

// findUnembeddedEdgeToAncestor finds the least ancestor of v adjacent, via
// an unembedded cycle edge, to cutVertex or a DFS descendant of cutVertex
// still in a separated bicomp.
func (g *Graph) findUnembeddedEdgeToAncestor(cutVertex int) (ancestor, descendant int, ok bool) {
	ancestor = g.vi[cutVertex].leastAncestor
	foundChild := NIL

	child := g.vi[cutVertex].futurePertinentChild
	for g.isVertex(child) {
		if g.virtualVertexInUse(g.rootFromChild(child)) && ancestor > g.vi[child].lowpoint {
			ancestor = g.vi[child].lowpoint
			foundChild = child
		}
		child = g.sortedDFSChildLists.getNext(g.vi[cutVertex].sortedDFSChildList, child)
	}

	if ancestor == g.vi[cutVertex].leastAncestor {
		return ancestor, cutVertex, true
	}
	descendant, ok = g.findUnembeddedEdgeToSubtree(ancestor, foundChild)
	return ancestor, descendant, ok
}

// findUnembeddedEdgeToCurVertex finds an edge connecting the current vertex
// v to cutVertex (if directly pertinent) or to a descendant of cutVertex in
// its first pertinent child bicomp.
func (g *Graph) findUnembeddedEdgeToCurVertex(cutVertex int) (descendant int, ok bool) {
	if g.isArc(g.vi[cutVertex].pertinentEdge) {
		return cutVertex, true
	}
	subtreeRoot := g.vi[cutVertex].pertinentRootsList
	return g.findUnembeddedEdgeToSubtree(g.ic.v, subtreeRoot)
}

// findUnembeddedEdgeToSubtree finds the least descendant within the DFS
// subtree rooted at subtreeRoot (resolving a virtual vertex to its DFS
// child first) that is adjacent to ancestor via an unembedded cycle edge.
func (g *Graph) findUnembeddedEdgeToSubtree(ancestor, subtreeRoot int) (descendant int, ok bool) {
	if g.isVirtualVertex(subtreeRoot) {
		subtreeRoot = g.childFromRoot(subtreeRoot)
	}

	descendant = NIL
	e := g.vi[ancestor].forwardArcList
	for g.isArc(e) {
		if g.e[e].neighbor >= subtreeRoot {
			if !g.isVertex(descendant) || descendant > g.e[e].neighbor {
				descendant = g.e[e].neighbor
			}
		}
		e = g.nextArc(e)
		if e == g.vi[ancestor].forwardArcList {
			e = NIL
		}
	}

	if !g.isVertex(descendant) {
		return NIL, false
	}

	z := descendant
	for z != subtreeRoot {
		zNew := g.vi[z].parent
		if !g.isVertex(zNew) || zNew == z {
			return NIL, false
		}
		z = zNew
	}
	return descendant, true
}

// markPathAlongBicompExtFace marks visited every vertex and edge on the
// external face of a bicomp from startVert to endVert, inclusive.
func (g *Graph) markPathAlongBicompExtFace(startVert, endVert int) error {
	g.v[startVert].visited = true

	z, zPrevLink := startVert, 1
	for {
		z = g.getNeighborOnExtFace(z, &zPrevLink)
		zPrevArc := g.vertexArc(z, zPrevLink)

		g.e[zPrevArc].visited = true
		g.e[twinArc(zPrevArc)].visited = true
		g.v[z].visited = true

		if z == endVert {
			break
		}
	}
	return nil
}

// markDFSPath marks visited every vertex and edge from descendant up to
// ancestor along DFS tree-parent arcs, hopping from a bicomp root to its
// primary copy without marking an edge for that hop.
func (g *Graph) markDFSPath(ancestor, descendant int) error {
	if g.isVirtualVertex(descendant) {
		descendant = g.primaryFromRoot(descendant)
	}
	g.v[descendant].visited = true

	for descendant != ancestor {
		if !g.isVertex(descendant) {
			return ErrInternal
		}

		var parent int
		if g.isVirtualVertex(descendant) {
			parent = g.primaryFromRoot(descendant)
		} else {
			parent = NIL
			for e := g.firstArc(descendant); g.isArc(e); e = g.nextArc(e) {
				if g.e[e].etype == typeTreeParent {
					parent = g.e[e].neighbor
					g.e[e].visited = true
					g.e[twinArc(e)].visited = true
					break
				}
			}
			if !g.isVertex(parent) {
				return ErrInternal
			}
		}

		g.v[parent].visited = true
		descendant = parent
	}
	return nil
}

func (g *Graph) markDFSPathsToDescendants() error {
	ic := &g.ic
	if err := g.markDFSPath(ic.x, ic.dx); err != nil {
		return err
	}
	if err := g.markDFSPath(ic.y, ic.dy); err != nil {
		return err
	}
	if g.isVertex(ic.dw) {
		if err := g.markDFSPath(ic.w, ic.dw); err != nil {
			return err
		}
	}
	if g.isVertex(ic.dz) {
		if err := g.markDFSPath(ic.w, ic.dz); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) addAndMarkUnembeddedEdges() error {
	ic := &g.ic
	if err := g.addAndMarkEdge(ic.ux, ic.dx); err != nil {
		return err
	}
	if err := g.addAndMarkEdge(ic.uy, ic.dy); err != nil {
		return err
	}
	if g.isVertex(ic.dw) {
		if err := g.addAndMarkEdge(ic.v, ic.dw); err != nil {
			return err
		}
	}
	if g.isVertex(ic.dz) {
		if err := g.addAndMarkEdge(ic.uz, ic.dz); err != nil {
			return err
		}
	}
	return nil
}

// addAndMarkEdge moves the unembedded (ancestor, descendant) edge back into
// the adjacency lists and marks it, and both endpoints, visited so it
// survives deleteUnmarkedVerticesAndEdges.
func (g *Graph) addAndMarkEdge(ancestor, descendant int) error {
	g.addBackEdge(ancestor, descendant)

	g.v[ancestor].visited = true
	g.e[g.firstArc(ancestor)].visited = true
	g.e[g.firstArc(descendant)].visited = true
	g.v[descendant].visited = true

	return nil
}

// addBackEdge moves the edge record pair connecting ancestor and descendant
// out of ancestor's forward-arc list and into both vertices' regular
// adjacency lists, restoring it as an ordinary embedded edge.
func (g *Graph) addBackEdge(ancestor, descendant int) {
	fwdArc := g.vi[ancestor].forwardArcList
	for g.isArc(fwdArc) {
		if g.e[fwdArc].neighbor == descendant {
			break
		}
		fwdArc = g.nextArc(fwdArc)
		if fwdArc == g.vi[ancestor].forwardArcList {
			fwdArc = NIL
		}
	}
	if !g.isArc(fwdArc) {
		return
	}

	backArc := twinArc(fwdArc)

	if g.vi[ancestor].forwardArcList == fwdArc {
		if g.nextArc(fwdArc) == fwdArc {
			g.vi[ancestor].forwardArcList = NIL
		} else {
			g.vi[ancestor].forwardArcList = g.nextArc(fwdArc)
		}
	}
	g.setNextArc(g.prevArc(fwdArc), g.nextArc(fwdArc))
	g.setPrevArc(g.nextArc(fwdArc), g.prevArc(fwdArc))

	g.setPrevArc(fwdArc, NIL)
	g.setNextArc(fwdArc, g.firstArc(ancestor))
	g.setPrevArc(g.firstArc(ancestor), fwdArc)
	g.setFirstArc(ancestor, fwdArc)

	g.setPrevArc(backArc, NIL)
	g.setNextArc(backArc, g.firstArc(descendant))
	g.setPrevArc(g.firstArc(descendant), backArc)
	g.setFirstArc(descendant, backArc)

	g.e[backArc].neighbor = ancestor
}

// deleteUnmarkedVerticesAndEdges restores every still-pending forward arc
// into its owner's adjacency list (so it can be seen and deleted below),
// then deletes every edge that isolation did not mark visited, leaving the
// isolated obstruction's vertices and edges as the only survivors.
func (g *Graph) deleteUnmarkedVerticesAndEdges() error {
	for v := 0; v < g.n; v++ {
		for g.isArc(g.vi[v].forwardArcList) {
			e := g.vi[v].forwardArcList
			g.addBackEdge(v, g.e[e].neighbor)
		}
	}

	for v := 0; v < g.n; v++ {
		e := g.firstArc(v)
		for g.isArc(e) {
			if g.e[e].visited {
				e = g.nextArc(e)
			} else {
				e = g.DeleteEdge(e, 0)
			}
		}
	}
	return nil
}

// popAndUnmarkVerticesAndEdges pops vertex/edge pairs down to z (or to
// stackBottom if z is NIL), clearing their visited flags, undoing a
// speculative path that turned out not to reach the other stopping vertex.
func (g *Graph) popAndUnmarkVerticesAndEdges(z, stackBottom int) {
	for g.stack.size() > stackBottom {
		vtx := g.stack.pop()
		if vtx == z {
			g.stack.push(vtx)
			break
		}
		e := g.stack.pop()

		g.v[vtx].visited = false
		g.e[e].visited = false
		g.e[twinArc(e)].visited = false
	}
}

// markHighestXYPath hides the internal edges of the bicomp root r, walks
// the resulting proper face to find the X-Y path with the highest
// attachment points to the external face, marks it visited, and restores
// the hidden edges. Returns false if no obstructing X-Y path exists.
func (g *Graph) markHighestXYPath() (bool, error) {
	ic := &g.ic
	r, w := ic.r, ic.w
	ic.px, ic.py = NIL, NIL

	stackBottom1 := g.stack.size()
	g.HideInternalEdges(r)
	stackBottom2 := g.stack.size()

	z := r
	e := g.lastArc(r)

	for g.v[z].obType != obHighRYW && g.v[z].obType != obLowRYW {
		e = g.prevArcCircular(e)
		z = g.e[e].neighbor
		e = twinArc(e)

		if g.v[z].visited {
			g.popAndUnmarkVerticesAndEdges(z, stackBottom2)
			continue
		}

		if z == w {
			g.popAndUnmarkVerticesAndEdges(NIL, stackBottom2)
			break
		}

		if g.v[z].obType == obHighRXW || g.v[z].obType == obLowRXW {
			ic.px = z
			g.popAndUnmarkVerticesAndEdges(NIL, stackBottom2)
		}

		g.stack.push(e)
		g.stack.push(z)

		g.v[z].visited = true
		if z != ic.px {
			g.e[e].visited = true
			g.e[twinArc(e)].visited = true
		}

		if g.v[z].obType == obHighRYW || g.v[z].obType == obLowRYW {
			ic.py = z
			break
		}
	}

	g.stack.restoreTo(stackBottom2)
	if err := g.RestoreHiddenEdges(stackBottom1); err != nil {
		return false, err
	}

	return g.isVertex(ic.py), nil
}

func (g *Graph) prevArcCircular(e int) int {
	if p := g.prevArc(e); g.isArc(p) {
		return p
	}
	return g.lastArc(g.e[twinArc(e)].neighbor)
}

// markZtoRPath walks the proper face from the X-Y path's px attachment
// point looking for a cut vertex z whose internal edges (hidden during
// markHighestXYPath) lead to an independent path up to the bicomp root r;
// if found, that path is marked visited.
func (g *Graph) markZtoRPath() error {
	ic := &g.ic
	r, px, py := ic.r, ic.px, ic.py
	ic.z = NIL

	z := px
	zNextArc := g.lastArc(z)
	for zNextArc != g.firstArc(z) {
		if g.e[zNextArc].visited {
			break
		}
		zNextArc = g.prevArc(zNextArc)
	}
	if !g.e[zNextArc].visited {
		return ErrInternal
	}

	for g.e[zNextArc].visited {
		zPrevArc := twinArc(zNextArc)
		zNextArc = g.prevArcCircular(zPrevArc)
	}

	zPrevArc := twinArc(zNextArc)
	z = g.e[zPrevArc].neighbor

	if z == py {
		return nil
	}
	ic.z = z

	for z != r {
		if g.v[z].obType != obUnknown {
			return ErrInternal
		}

		z = g.e[zNextArc].neighbor

		g.e[zNextArc].visited = true
		g.e[zPrevArc].visited = true
		g.v[z].visited = true

		zNextArc = g.prevArcCircular(zPrevArc)
		zPrevArc = twinArc(zNextArc)
	}
	return nil
}

// findFuturePertinenceBelowXYPath returns a future-pertinent vertex along
// the lower external-face path between the X-Y path's attachment points,
// or NIL if none exists.
func (g *Graph) findFuturePertinenceBelowXYPath() int {
	z, zPrevLink := g.ic.px, 1
	py, v := g.ic.py, g.ic.v

	z = g.getNeighborOnExtFace(z, &zPrevLink)
	for z != py {
		g.advanceFutureVertexActivity(z, v)
		if g.isFuturePertinent(z, v) {
			return z
		}
		z = g.getNeighborOnExtFace(z, &zPrevLink)
	}
	return NIL
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min3Int(a, b, c int) int { return minInt(a, minInt(b, c)) }
func max3Int(a, b, c int) int { return maxInt(a, maxInt(b, c)) }
