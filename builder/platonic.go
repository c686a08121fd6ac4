// SPDX-License-Identifier: MIT
//
// platonic.go builds three Platonic solids as planar test fixtures (all
// three are classic maximal or near-maximal planar graphs), grounded on the
// teacher builder's variants_platonic.go dataset and impl_platonic.go
// constructor. Dodecahedron and Icosahedron are not carried over: the
// teacher's generator derives their edge sets from an icosahedral face list
// that depended on string vertex IDs throughout; reproducing it against the
// arena model was not worth the size for two solids beyond the three kept
// here (see DESIGN.md).
package builder

import (
	"fmt"

	"github.com/lvlath/planarity/core"
)

// PlatonicName identifies one of the solids PlatonicSolid can build.
type PlatonicName int

const (
	Tetrahedron PlatonicName = iota // V=4, E=6  (= K4)
	Cube                            // V=8, E=12
	Octahedron                      // V=6, E=12
)

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron: 4,
	Cube:        8,
	Octahedron:  6,
}

// PlatonicSolid builds the named solid's shell over g's vertices; g.N()
// must equal the solid's canonical vertex count.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		want, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("PlatonicSolid: %w", ErrUnknownSolid)
		}
		if g.N() != want {
			return fmt.Errorf("PlatonicSolid: N=%d != %d: %w", g.N(), want, ErrSizeMismatch)
		}

		var edges [][2]int
		switch name {
		case Tetrahedron:
			edges = completeEdges(4)
		case Cube:
			edges = cubeEdges()
		case Octahedron:
			edges = octahedronEdges()
		}

		for _, e := range edges {
			if _, err := g.AddEdge(e[0], 0, e[1], 0); err != nil {
				return fmt.Errorf("PlatonicSolid(%v): AddEdge(%d,%d): %w", name, e[0], e[1], err)
			}
		}
		return nil
	}
}

func completeEdges(n int) [][2]int {
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return edges
}

// cubeEdges: bottom face 0-1-2-3, top face 4-5-6-7, verticals i-(i+4).
func cubeEdges() [][2]int {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
	}
	for i := 0; i < 4; i++ {
		edges = append(edges, [2]int{i, i + 4})
	}
	return edges
}

// octahedronEdges: K_{2,2,2} on {0,1,2,3,4,5} with antipodal non-edges
// {0,1}, {2,3}, {4,5}.
func octahedronEdges() [][2]int {
	antipode := map[[2]int]bool{{0, 1}: true, {2, 3}: true, {4, 5}: true}
	var edges [][2]int
	for u := 0; u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			if !antipode[[2]int{u, v}] {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return edges
}
