// SPDX-License-Identifier: MIT
// Package builder assembles core.Graph fixtures: canonical shapes (complete,
// cycle, star, wheel, complete-bipartite, grid, Platonic solids) and random
// generators (Erdos-Renyi sparse graphs, random maximal planar triangulations
// and their planar/non-planar derivatives), grounded on the same-named
// constructors in the teacher builder package but rewritten against the
// fixed-capacity arena core.Graph: every constructor operates over a single
// already-sized graph (BuildGraph calls core.InitGraph once) instead of
// incrementally adding string-keyed vertices.
//
// What:
//
//   - Constructor mutates an already-initialized *core.Graph according to its
//     own rule (Complete connects every pair, Cycle connects i to i+1 mod n,
//     ...), validating that the graph's vertex count matches what the shape
//     requires.
//   - BuildGraph is the single orchestrator: it initializes a graph of size n
//     and applies a sequence of Constructors in order, so composing two
//     constructors over the same vertex set (e.g. a cycle plus extra chords)
//     stays possible.
//   - BuilderOption/WithSeed carries a *rand.Rand through to the random
//     generators for reproducible output, mirroring the teacher's functional
//     options pattern.
//
// Why:
//
//   - Deterministic, named fixtures are what spec.md 8's testable scenarios
//     (K5, K3,3, the Petersen graph, a maximal planar example) and the CLI's
//     random subcommands both need; keeping them in one place avoids every
//     caller hand-rolling adjacency lists.
//
// Errors:
//
//	Only sentinel errors (ErrTooFewVertices, ErrSizeMismatch,
//	ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed,
//	ErrUnknownSolid) are
//	returned; callers branch with errors.Is.
package builder
