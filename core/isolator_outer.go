package core

// This file isolates an outerplanarity obstruction (spec.md 4.6) once
// Walkdown, run with FlagOuterplanar, finds a pertinent bicomp root blocked:
// a subdivision of K4 or K2,3 is marked visited and everything else deleted.

// chooseTypeOfNonOuterplanarityMinor classifies the blockage at bicomp root
// r as Minor A (R's primary vertex isn't v), Minor B (W has any pertinent
// child bicomp — no future-pertinence distinction, since every vertex stays
// on the external face in outerplanar mode), or Minor E (neither).
func (g *Graph) chooseTypeOfNonOuterplanarityMinor(v, r int) error {
	if err := g.initializeNonplanarityContext(v, r); err != nil {
		return err
	}

	r, w := g.ic.r, g.ic.w

	if g.primaryFromRoot(r) != v {
		g.ic.minorType = minorA
		return nil
	}
	if g.isVertex(g.vi[w].pertinentRootsList) {
		g.ic.minorType = minorB
		return nil
	}

	g.ic.minorType = minorE
	return nil
}

// isolateOuterplanarObstruction identifies the non-outerplanarity minor at
// bicomp root r (where Walkdown stalled while processing vertex v), marks a
// K4 or K2,3 homeomorph visited, and deletes everything else.
func isolateOuterplanarObstruction(g *Graph, v, r int) error {
	g.clearVisitedFlags()

	if err := g.chooseTypeOfNonOuterplanarityMinor(v, r); err != nil {
		return err
	}

	ic := &g.ic
	var ok bool
	ic.dw, ok = g.findUnembeddedEdgeToCurVertex(ic.w)
	if !ok {
		return ErrInternal
	}

	if ic.minorType&minorE != 0 {
		found, err := g.markHighestXYPath()
		if err != nil {
			return err
		}
		if !found {
			return ErrInternal
		}
	}

	var err error
	switch {
	case ic.minorType&minorA != 0:
		err = g.isolateOuterplanarityObstructionA()
	case ic.minorType&minorB != 0:
		err = g.isolateOuterplanarityObstructionB()
	default:
		err = g.isolateOuterplanarityObstructionE()
	}
	if err != nil {
		return err
	}

	return g.deleteUnmarkedVerticesAndEdges()
}

// isolateOuterplanarityObstructionA marks the whole bicomp cycle plus the
// v-to-r and w-to-dw DFS paths, yielding a K2,3 subdivision.
func (g *Graph) isolateOuterplanarityObstructionA() error {
	ic := &g.ic
	if err := g.markPathAlongBicompExtFace(ic.r, ic.r); err != nil {
		return err
	}
	if err := g.markDFSPath(ic.v, ic.r); err != nil {
		return err
	}
	if err := g.markDFSPath(ic.w, ic.dw); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkEdge(ic.v, ic.dw)
}

// isolateOuterplanarityObstructionB marks the whole bicomp cycle plus the
// w-to-dw DFS path, yielding a K2,3 subdivision.
func (g *Graph) isolateOuterplanarityObstructionB() error {
	ic := &g.ic
	if err := g.markPathAlongBicompExtFace(ic.r, ic.r); err != nil {
		return err
	}
	if err := g.markDFSPath(ic.w, ic.dw); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkEdge(ic.v, ic.dw)
}

// isolateOuterplanarityObstructionE marks the whole bicomp cycle plus the
// w-to-dw DFS path, yielding a K4 subdivision together with the X-Y path
// already marked by markHighestXYPath.
func (g *Graph) isolateOuterplanarityObstructionE() error {
	ic := &g.ic
	if err := g.markPathAlongBicompExtFace(ic.r, ic.r); err != nil {
		return err
	}
	if err := g.markDFSPath(ic.w, ic.dw); err != nil {
		return err
	}
	if err := g.joinBicomps(); err != nil {
		return err
	}
	return g.addAndMarkEdge(ic.v, ic.dw)
}
