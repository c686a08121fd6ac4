// SPDX-License-Identifier: MIT
//
// shapes.go implements the fixed (non-random) canonical topologies, grounded
// on the teacher builder's impl_complete.go/impl_cycle.go/impl_star.go/
// impl_wheel.go/impl_bipartite.go/impl_grid.go, adapted so each constructor
// validates the shape's vertex-count requirement against g.N() (set once by
// BuildGraph's InitGraph) instead of adding vertices itself.
package builder

import (
	"fmt"

	"github.com/lvlath/planarity/core"
)

// Complete connects every pair of g's n vertices: K_n (n >= 1).
func Complete() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.N()
		if n < 1 {
			return fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if _, err := g.AddEdge(u, 0, v, 0); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", u, v, err)
				}
			}
		}
		return nil
	}
}

// Cycle connects vertex i to i+1 (mod n): C_n (n >= 3).
func Cycle() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.N()
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		for v := 0; v < n; v++ {
			if _, err := g.AddEdge(v, 0, (v+1)%n, 0); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", v, (v+1)%n, err)
			}
		}
		return nil
	}
}

// Path connects vertex i to i+1 for i in 0..n-2: P_n (n >= 2).
func Path() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.N()
		if n < 2 {
			return fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
		}
		for v := 0; v < n-1; v++ {
			if _, err := g.AddEdge(v, 0, v+1, 0); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", v, v+1, err)
			}
		}
		return nil
	}
}

// Star connects vertex 0 (the hub) to every other vertex (n >= 2).
func Star() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.N()
		if n < 2 {
			return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
		}
		for v := 1; v < n; v++ {
			if _, err := g.AddEdge(0, 0, v, 0); err != nil {
				return fmt.Errorf("Star: AddEdge(0,%d): %w", v, err)
			}
		}
		return nil
	}
}

// Wheel builds W_n: vertex 0 is the hub, vertices 1..n-1 form a rim cycle,
// and the hub connects to every rim vertex (n >= 4).
func Wheel() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.N()
		if n < 4 {
			return fmt.Errorf("Wheel: n=%d: %w", n, ErrTooFewVertices)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := 1+i, 1+(i+1)%rim
			if _, err := g.AddEdge(u, 0, v, 0); err != nil {
				return fmt.Errorf("Wheel: rim AddEdge(%d,%d): %w", u, v, err)
			}
		}
		for v := 1; v < n; v++ {
			if _, err := g.AddEdge(0, 0, v, 0); err != nil {
				return fmt.Errorf("Wheel: spoke AddEdge(0,%d): %w", v, err)
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: vertices 0..n1-1 are the left side,
// n1..n1+n2-1 the right side, with every cross edge present and none within
// a side. n1+n2 must equal g.N().
func CompleteBipartite(n1 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := g.N()
		n2 := n - n1
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("CompleteBipartite: n1=%d, n2=%d: %w", n1, n2, ErrTooFewVertices)
		}
		for u := 0; u < n1; u++ {
			for v := n1; v < n; v++ {
				if _, err := g.AddEdge(u, 0, v, 0); err != nil {
					return fmt.Errorf("CompleteBipartite: AddEdge(%d,%d): %w", u, v, err)
				}
			}
		}
		return nil
	}
}

// Grid lays g.N() vertices out as a rows x cols 4-neighborhood grid in
// row-major order (vertex r*cols+c), connecting horizontal and vertical
// neighbors. rows*cols must equal g.N().
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrTooFewVertices)
		}
		if rows*cols != g.N() {
			return fmt.Errorf("Grid: rows*cols=%d != N=%d: %w", rows*cols, g.N(), ErrSizeMismatch)
		}
		id := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := g.AddEdge(id(r, c), 0, id(r, c+1), 0); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d): %w", id(r, c), id(r, c+1), err)
					}
				}
				if r+1 < rows {
					if _, err := g.AddEdge(id(r, c), 0, id(r+1, c), 0); err != nil {
						return fmt.Errorf("Grid: AddEdge(%d,%d): %w", id(r, c), id(r+1, c), err)
					}
				}
			}
		}
		return nil
	}
}
