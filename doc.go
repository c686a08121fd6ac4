// Package planarity is a linear-time combinatorial planar embedding engine.
//
// What it does:
//
//	Given a simple undirected graph, it either produces a combinatorial planar
//	embedding (a rotation system realizing the graph on the sphere) or isolates
//	a minimal subgraph homeomorphic to a topological obstruction: K5 or K3,3
//	for planarity, K2,3 or K4 for outerplanarity. The same core engine, driven
//	through a shared rebuild-and-retry search loop (internal/xsearch), answers
//	three further subgraph-homeomorphism questions (does the input contain a
//	K2,3 / K3,3 / K4 subdivision) and can produce a simplified visibility-style
//	layout of a planar graph.
//
// Why it is shaped this way:
//
//	The embedder is the edge-addition method of Boyer and Myrvold: a DFS
//	preprocessor seeds one biconnected component per tree edge, then vertices
//	are folded into the embedding in reverse DFS order by a Walkup/Walkdown
//	pair that merges biconnected components along the external face. When a
//	vertex cannot be embedded, the obstruction isolator reconstructs a minimal
//	witness from the DFS tree and the partially-built embedding instead of
//	restarting the search. All three phases run in O(V+E) total.
//
// Package layout:
//
//	core/            — the engine: arena, DFS preprocessor, Walkup/Walkdown,
//	                   obstruction isolator, extension registry, postprocess.
//	internal/xsearch — rebuild-and-retry obstruction search shared by k23/k33/k4.
//	k23/             — K2,3 subdivision search.
//	k33/             — K3,3 subdivision search.
//	k4/              — K4 subdivision search.
//	drawplanar/      — simplified visibility-style layout of a planar graph.
//	ioadj/           — adjacency-list / adjacency-matrix / LEDA text formats.
//	builder/         — deterministic and randomized graph construction.
//	cmd/planarity    — command-line front end over all of the above.
//
//	go get github.com/lvlath/planarity
package planarity
