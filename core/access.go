package core

// This file is the public read/traversal surface for packages outside core
// (ioadj, builder, k23/k33/k4, cmd/planarity) that need to walk a graph's
// adjacency lists and inspect/assign arc directionality without reaching
// into unexported fields.

// Direction classifies an arc as undirected, or as one half of a directed
// edge recorded during adjacency-list I/O (spec.md 6).
type Direction = edgeDirection

const (
	DirUndirected = dirUndirected
	DirInOnly     = dirInOnly
	DirOutOnly    = dirOutOnly
)

// FirstVertex and LastVertex bound the inclusive range of primary vertex
// indices.
func (g *Graph) FirstVertex() int { return g.firstVertex() }
func (g *Graph) LastVertex() int  { return g.lastVertex() }

// IsVertex reports whether v is not the NIL sentinel.
func (g *Graph) IsVertex(v int) bool { return g.isVertex(v) }

// IsArc reports whether e is not the NIL sentinel.
func (g *Graph) IsArc(e int) bool { return g.isArc(e) }

// TwinArc returns the other half of e's edge pair.
func (g *Graph) TwinArc(e int) int { return twinArc(e) }

// FirstArc and LastArc return the first/last arc in v's adjacency list, or
// NIL if v has none.
func (g *Graph) FirstArc(v int) int { return g.firstArc(v) }
func (g *Graph) LastArc(v int) int  { return g.lastArc(v) }

// NextArc and PrevArc walk e's owning adjacency list.
func (g *Graph) NextArc(e int) int { return g.nextArc(e) }
func (g *Graph) PrevArc(e int) int { return g.prevArc(e) }

// Neighbor returns the vertex e points at.
func (g *Graph) Neighbor(e int) int { return g.e[e].neighbor }

// ArcDirection returns e's recorded directedness.
func (g *Graph) ArcDirection(e int) Direction { return g.e[e].direction }

// SetArcDirection assigns e's directedness, used by adjacency-list I/O to
// record IN-only/OUT-only arcs discovered while reading (spec.md 6).
func (g *Graph) SetArcDirection(e int, d Direction) { g.e[e].direction = d }

// VertexIndex returns the DFI (or, before any DFS has run, the original
// input position) stored on vertex v.
func (g *Graph) VertexIndex(v int) int { return g.v[v].index }

// SetVertexIndex assigns v's index field, used by readers to record each
// vertex's declared position.
func (g *Graph) SetVertexIndex(v, idx int) { g.v[v].index = idx }

// AttachFirstArc splices already-allocated arc e onto the front of v's
// adjacency list, used by adjacency-list I/O when an arc discovered while
// reading an earlier vertex is moved into its true owner's list.
func (g *Graph) AttachFirstArc(v, e int) { g.attachArc(v, NIL, 0, e) }

// SpliceOutOfAdjacency removes arc e from owner's adjacency list without
// deleting it, used by adjacency-list I/O to relocate an arc that was
// provisionally placed while scanning a lower-numbered vertex.
func (g *Graph) SpliceOutOfAdjacency(e, owner int) { g.spliceOutOfAdjacency(e, owner) }

// Parent, LeastAncestor, and Lowpoint expose the DFS bookkeeping fields of
// vertex v, used by debug-dump I/O.
func (g *Graph) Parent(v int) int        { return g.vi[v].parent }
func (g *Graph) LeastAncestor(v int) int { return g.vi[v].leastAncestor }
func (g *Graph) Lowpoint(v int) int      { return g.vi[v].lowpoint }

// DFSNumbered reports whether CreateDFSTree has assigned DFIs yet.
func (g *Graph) DFSNumbered() bool { return g.dfsNumbered }

// IsTreeEdge reports whether arc e is one half of a DFS tree edge, used by
// drawplanar to lay out the embedding along the DFS tree.
func (g *Graph) IsTreeEdge(e int) bool {
	return g.e[e].etype == typeTreeChild || g.e[e].etype == typeTreeParent
}
