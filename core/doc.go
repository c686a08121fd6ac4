// Package core implements the edge-addition planarity engine: a fixed-capacity
// half-edge arena, a DFS preprocessor, the Walkup/Walkdown embedder, the
// obstruction isolator, and an extension registry (AttachExtension) that lets
// callers overload core decision points without touching the embedding loop.
// The sibling k23, k33, and k4 packages do not use that registry: they
// classify obstructions through TestObstructionIntegrity and the exported
// degree-profile helpers below, driven by internal/xsearch's rebuild-and-retry
// loop instead of an embedding-loop override (see internal/xsearch's package
// doc for why).
//
// What:
//
//   - Graph stores vertices and "virtual vertices" (bicomp root copies) in one
//     fixed-size array, and edges as pairs of half-edges ("arcs") in a second
//     fixed-size array, so that every structural mutation (attach/detach an
//     arc, delete/hide/restore an edge, contract an edge, identify two
//     vertices) runs in O(1) amortized time with an explicit free list for
//     reclaimed arc pairs.
//   - CreateDFSTree performs one iterative depth-first search that assigns
//     DFS indices, parents, least-ancestor values, and per-vertex sorted
//     child and forward-arc lists; PreprocessForEmbedding then sorts
//     vertices by DFI, computes lowpoints and seeds one singleton
//     biconnected component per tree edge.
//   - Embed runs the Walkup/Walkdown loop in reverse DFI order, merging
//     biconnected components along the external face as it embeds back
//     edges, and returns Embedded or NonEmbeddable.
//   - When Walkdown blocks, the isolator reconstructs a subgraph homeomorphic
//     to K5 or K3,3 (planarity) or K2,3 or K4 (outerplanarity) from the DFS
//     tree and the external face, in time proportional to the witness size.
//
// Why:
//
//   - All of structural mutation, DFS preprocessing, embedding and isolation
//     share one invariant (the half-edge/external-face data model), so they
//     live in one package rather than being split along a public/private
//     boundary that would otherwise force the engine to leak its internals.
//   - Keeping the engine's own state free of locks lets Embed run in O(V+E)
//     without lock overhead; Graph values are not safe for concurrent use by
//     more than one goroutine (see the package-level concurrency note).
//
// Concurrency:
//
//	A *Graph is owned by exactly one goroutine at a time. There is no internal
//	locking: callers that want to embed several graphs concurrently should run
//	each Embed call against its own *Graph on its own goroutine.
//
// Errors:
//
//	Structural failures (ErrTooManyEdges, ErrCapacityExceeded, ErrBadVertex,
//	ErrBadArc, ErrExtensionNotFound, ...) are returned as plain errors and
//	indicate a usage or capacity problem, not a property of the input graph.
//	Algorithmic outcomes are reported via the Result type (Embedded /
//	NonEmbeddable), never as an error.
package core
