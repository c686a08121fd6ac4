// SPDX-License-Identifier: MIT
//
// random.go implements the stochastic constructors, grounded on the teacher
// builder's impl_random_sparse.go (Bernoulli-trial edge sampling, file-local
// probability bounds, rng.Float64() <= p acceptance test) and extended with
// two constructors the distilled spec calls out as testable scenarios:
// RandomMaximalPlanar (triangulate by repeated face subdivision, so the
// result is planar and edge-maximal) and RandomMaximalPlanarPlusEdge (add
// one chord afterward, which a correct embedder must always reject).
package builder

import (
	"fmt"
	"math/rand"

	"github.com/lvlath/planarity/core"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse includes each of the n*(n-1)/2 possible edges independently
// with probability p, an Erdos-Renyi G(n,p) sample. Requires a resolved RNG
// (WithSeed/WithRand) and n >= 1.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.N()
		if n < minRandomSparseVertices {
			return fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("RandomSparse: p=%f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if cfg.rng.Float64() <= p {
					if _, err := g.AddEdge(u, 0, v, 0); err != nil {
						return fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", u, v, err)
					}
				}
			}
		}
		return nil
	}
}

// RandomMaximalPlanar builds a random edge-maximal planar graph on g's n
// vertices (n >= 3) by starting from a seed triangle and repeatedly
// stacking a new vertex inside a randomly chosen active face, connecting it
// to that face's three corners (an Apollonian / stacked-triangulation
// construction). Every intermediate and final graph is planar by
// construction: each new vertex only ever touches the three vertices of one
// already-planar face.
func RandomMaximalPlanar() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.N()
		if n < 3 {
			return fmt.Errorf("RandomMaximalPlanar: n=%d: %w", n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomMaximalPlanar: %w", ErrNeedRandSource)
		}

		type face struct{ a, b, c int }
		addEdge := func(u, v int) error {
			_, err := g.AddEdge(u, 0, v, 0)
			return err
		}

		if err := addEdge(0, 1); err != nil {
			return fmt.Errorf("RandomMaximalPlanar: seed: %w", err)
		}
		if err := addEdge(1, 2); err != nil {
			return fmt.Errorf("RandomMaximalPlanar: seed: %w", err)
		}
		if err := addEdge(0, 2); err != nil {
			return fmt.Errorf("RandomMaximalPlanar: seed: %w", err)
		}

		faces := []face{{0, 1, 2}}
		for next := 3; next < n; next++ {
			idx := randIntN(cfg.rng, len(faces))
			f := faces[idx]
			faces = append(faces[:idx], faces[idx+1:]...)

			for _, corner := range []int{f.a, f.b, f.c} {
				if err := addEdge(next, corner); err != nil {
					return fmt.Errorf("RandomMaximalPlanar: stack vertex %d: %w", next, err)
				}
			}
			faces = append(faces,
				face{f.a, f.b, next},
				face{f.b, f.c, next},
				face{f.c, f.a, next},
			)
		}
		return nil
	}
}

// RandomMaximalPlanarPlusEdge builds a random maximal planar graph on g's n
// vertices (n >= 4 is accepted, but with n = 4 the maximal planar graph is
// K4 and no non-adjacent pair exists, so the call returns
// ErrConstructFailed), then adds one extra edge between two vertices that the
// construction left non-adjacent. A maximal planar graph already uses every
// edge slot its faces admit, so this chord forces a K5 or K3,3 subdivision
// and the result is never planar — Embed(FlagPlanar) on it must return
// NonEmbeddable.
func RandomMaximalPlanarPlusEdge() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.N()
		if n < 4 {
			return fmt.Errorf("RandomMaximalPlanarPlusEdge: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := RandomMaximalPlanar()(g, cfg); err != nil {
			return err
		}
		for tries := 0; tries < n*n; tries++ {
			u := randIntN(cfg.rng, n)
			v := randIntN(cfg.rng, n)
			if u == v || g.IsNeighbor(u, v) {
				continue
			}
			if _, err := g.AddEdge(u, 0, v, 0); err != nil {
				return fmt.Errorf("RandomMaximalPlanarPlusEdge: AddEdge(%d,%d): %w", u, v, err)
			}
			return nil
		}
		return fmt.Errorf("RandomMaximalPlanarPlusEdge: no non-adjacent pair found: %w", ErrConstructFailed)
	}
}

func randIntN(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return rng.Intn(n)
}
