package core

// This file implements the postprocess integrity checks of spec.md 4.7/8:
// that a reported embedding really is one (Euler's formula over its face
// count) and that an isolated obstruction really is a subdivision of the
// claimed minor (subgraph-of-input plus the minor's degree profile).

// faceCount walks every arc's rotation exactly once (via the next-arc-at-
// the-far-end convention used throughout the engine) and returns the
// number of faces the current combinatorial embedding induces.
func (g *Graph) faceCount() int {
	bound := g.edgeInUseIndexBound()
	seen := make([]bool, bound)

	faces := 0
	for e := 0; e < bound; e++ {
		if !g.isArc(e) || seen[e] {
			continue
		}
		faces++

		start := e
		cur := e
		for {
			seen[cur] = true
			twin := twinArc(cur)
			next := g.nextArc(twin)
			if !g.isArc(next) {
				next = g.firstArc(g.e[cur].neighbor)
			}
			cur = next
			if cur == start {
				break
			}
		}
	}
	return faces
}

// connectedComponents counts connected components among the graph's
// primary vertices via a union-find over embedded edges, needed for the
// Euler's-formula check (|V| - |E| + |F| = 1 + c).
func (g *Graph) connectedComponents() int {
	parent := make([]int, g.n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	for v := 0; v < g.n; v++ {
		for e := g.firstArc(v); g.isArc(e); e = g.nextArc(e) {
			u := g.e[e].neighbor
			if u < 0 || u >= g.n {
				continue
			}
			ru, rv := find(u), find(v)
			if ru != rv {
				parent[ru] = rv
			}
		}
	}

	comps := 0
	for v := 0; v < g.n; v++ {
		if find(v) == v {
			comps++
		}
	}
	return comps
}

// TestEmbedResultIntegrity verifies Euler's formula (|V| - |E| + |F| = 1 +
// components) against the graph's current rotation system, per spec.md's
// planarity-soundness property. It is meaningful only after Embed has
// returned Embedded: the graph must currently hold nothing but embedded
// (non-virtual-vertex) arcs, which is true once joinBicomps has run.
func (g *Graph) TestEmbedResultIntegrity() error {
	f := g.faceCount()
	c := g.connectedComponents()

	if g.n-g.m+f != 1+c {
		return ErrInternal
	}
	return nil
}

// degreeProfile returns, for every vertex still present after an
// obstruction isolation, its degree among the surviving edges.
func (g *Graph) degreeProfile() map[int]int {
	deg := make(map[int]int)
	for v := 0; v < g.n; v++ {
		d := 0
		for e := g.firstArc(v); g.isArc(e); e = g.nextArc(e) {
			d++
		}
		if d > 0 {
			deg[v] = d
		}
	}
	return deg
}

// TestObstructionIntegrity checks the image-vertex degree profile of an
// isolated witness against the claimed minor: K5 (five degree-4 vertices),
// K3,3 (six degree-3 vertices), K4 (four degree-3 vertices), or K2,3 (two
// degree-3 and three degree-2 vertices). want is the expected profile, a
// map from degree to vertex count.
func (g *Graph) TestObstructionIntegrity(want map[int]int) error {
	deg := g.degreeProfile()

	got := make(map[int]int)
	for _, d := range deg {
		got[d]++
	}

	for degree, count := range want {
		if got[degree] != count {
			return ErrInternal
		}
	}
	for degree, count := range got {
		if want[degree] != count {
			return ErrInternal
		}
	}
	return nil
}

// K5DegreeProfile, K33DegreeProfile, K4DegreeProfile, and K23DegreeProfile
// are the expected TestObstructionIntegrity profiles for each obstruction.
func K5DegreeProfile() map[int]int  { return map[int]int{4: 5} }
func K33DegreeProfile() map[int]int { return map[int]int{3: 6} }
func K4DegreeProfile() map[int]int  { return map[int]int{3: 4} }
func K23DegreeProfile() map[int]int { return map[int]int{3: 2, 2: 3} }
