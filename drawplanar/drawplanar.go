// Package drawplanar assigns a visibility-style layout to an already
// embedded planar graph: a distinct integer column per vertex and a row
// equal to its depth in the DFS tree, with every edge recorded as a segment
// between its endpoints' coordinates. It is grounded on graphDrawPlanar.c,
// simplified to a DFS-preorder column assignment rather than the original's
// full st-numbering-based visibility representation (see DESIGN.md); the
// wiring point (run after a successful core.FlagPlanar embedding) matches
// spec.md 4.6's description of FlagDrawPlanar as a postprocessing step over
// an otherwise ordinary planar embedding.
package drawplanar

import (
	"fmt"

	"github.com/lvlath/planarity/core"
	"github.com/lvlath/planarity/internal/xsearch"
)

// Segment is one edge of the layout, naming its two endpoints.
type Segment struct {
	U, V int
}

// Layout is a visibility-style placement: X and Y map each vertex to its
// column and row, and Edges lists every edge as an endpoint pair.
type Layout struct {
	X, Y  map[int]int
	Edges []Segment
}

// Draw lays out g, which must already have a DFS tree (core.CreateDFSTree,
// or a prior call to Embed) so that Parent is meaningful for every vertex.
func Draw(g *core.Graph) (*Layout, error) {
	root := core.NIL
	for v := g.FirstVertex(); v <= g.LastVertex(); v++ {
		if g.Parent(v) == core.NIL {
			root = v
			break
		}
	}
	if !g.IsVertex(root) {
		return nil, fmt.Errorf("drawplanar: no DFS root found, has CreateDFSTree run: %w", core.ErrInternal)
	}

	layout := &Layout{X: make(map[int]int), Y: make(map[int]int)}
	visited := make(map[int]bool)
	nextColumn := 0

	type frame struct{ v, depth int }
	stack := []frame{{root, 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.v] {
			continue
		}
		visited[f.v] = true

		layout.X[f.v] = nextColumn
		layout.Y[f.v] = f.depth
		nextColumn++

		var children []int
		for e := g.FirstArc(f.v); g.IsArc(e); e = g.NextArc(e) {
			if !g.IsTreeEdge(e) {
				continue
			}
			if w := g.Neighbor(e); g.Parent(w) == f.v {
				children = append(children, w)
			}
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}

	for _, e := range xsearch.ListEdges(g) {
		layout.Edges = append(layout.Edges, Segment{U: e.U, V: e.V})
	}

	return layout, nil
}
