package core

import "errors"

// NIL is the "no arc" / "no vertex" sentinel used throughout the arena.
// Zero is a valid vertex and arc index, so NIL must be negative.
const NIL = -1

// Sentinel errors for structural failures (see doc.go).
var (
	// ErrNilGraph indicates a nil *Graph was passed where one was required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrTooFewVertices indicates InitGraph was asked to allocate for N<0 vertices.
	ErrTooFewVertices = errors.New("core: vertex count must be non-negative")

	// ErrTooManyEdges indicates arc capacity would be exceeded by AddEdge/InsertEdge.
	ErrTooManyEdges = errors.New("core: arc capacity exceeded")

	// ErrCapacityExceeded indicates EnsureArcCapacity was given a
	// non-positive or odd arc count.
	ErrCapacityExceeded = errors.New("core: capacity exceeded")

	// ErrBadVertex indicates a vertex index outside the valid primary/virtual range.
	ErrBadVertex = errors.New("core: invalid vertex index")

	// ErrBadArc indicates an arc index that is not in use or out of range.
	ErrBadArc = errors.New("core: invalid arc index")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not supported")

	// ErrAlreadyInitialized indicates InitGraph was called on a graph that
	// already has vertices allocated; callers must create a fresh Graph instead.
	ErrAlreadyInitialized = errors.New("core: graph already initialized")

	// ErrNotInitialized indicates an operation was attempted before InitGraph.
	ErrNotInitialized = errors.New("core: graph not initialized")

	// ErrExtensionNotFound indicates gp_FindExtension-equivalent lookup failed.
	ErrExtensionNotFound = errors.New("core: extension not found")

	// ErrExtensionConflict indicates DetachExtension was asked to detach an
	// extension that is not the most recently attached one.
	ErrExtensionConflict = errors.New("core: extension conflict")

	// ErrInternal indicates an invariant was violated; it should never surface
	// on valid input within declared capacity, per spec.md section 7.
	ErrInternal = errors.New("core: internal invariant violation")
)

// Result is the algorithmic verdict of an embedding or search operation.
// It is always accompanied by a nil error; a non-nil error signals a
// structural failure instead (see doc.go).
type Result int

const (
	// Embedded means the graph (or the extension's target, e.g. "no K3,3
	// subdivision found") was successfully embedded.
	Embedded Result = iota
	// NonEmbeddable means a witness subgraph was isolated: an obstruction to
	// planarity/outerplanarity, or a found subdivision for a search extension.
	NonEmbeddable
)

func (r Result) String() string {
	if r == Embedded {
		return "Embedded"
	}
	return "NonEmbeddable"
}

// EmbedFlags selects which variant of the engine gp_Embed-equivalent Embed runs.
type EmbedFlags int

const (
	// FlagPlanar requests a planar embedding or a K5/K3,3 witness.
	FlagPlanar EmbedFlags = 1 << iota
	// FlagOuterplanar requests an outerplanar embedding or a K4/K2,3 witness.
	FlagOuterplanar
	// FlagDrawPlanar is accepted by Embed but not read by it; the layout is
	// computed separately by drawplanar.Draw.
	FlagDrawPlanar
	// FlagSearchK23 is not read by Embed; K2,3 search is k23.Search.
	FlagSearchK23
	// FlagSearchK33 is not read by Embed; K3,3 search is k33.Search.
	FlagSearchK33
	// FlagSearchK4 is not read by Embed; K4 search is k4.Search.
	FlagSearchK4
)

// edgeType classifies an arc relative to the DFS tree.
type edgeType uint8

const (
	typeUnset edgeType = iota
	typeTreeChild
	typeTreeParent
	typeBack    // arc to a DFS ancestor (not the parent)
	typeForward // arc to a DFS descendant (not a tree child)
	typeRandomTree
)

// edgeDirection records a directed-edge overlay for I/O round-tripping.
type edgeDirection uint8

const (
	dirUndirected edgeDirection = iota
	dirInOnly
	dirOutOnly
)

// obstructionType classifies a vertex during obstruction isolation.
type obstructionType uint8

const (
	obUnknown obstructionType = iota
	obLowRXW
	obHighRXW
	obLowRYW
	obHighRYW
)

// arc is one half-edge. Edges are stored as two arcs at consecutive indices
// e, e^1 so that the twin of an arc is found by flipping its low bit.
type arc struct {
	link      [2]int // [0]=next, [1]=prev within whichever list currently owns this arc
	neighbor  int    // the vertex (or virtual vertex) this arc points at
	visited   bool
	etype     edgeType
	inverted  bool
	direction edgeDirection
}

func twinArc(e int) int { return e ^ 1 }

// vertexRec is the structural record shared by primary vertices (0..N-1) and
// virtual vertices / bicomp roots (N..2N-1).
type vertexRec struct {
	link    [2]int // [0]=first arc, [1]=last arc of the adjacency list
	extFace [2]int // external-face short-circuit neighbors
	index   int    // DFI, or original index once sorted back
	visited bool
	obType  obstructionType
}

// vertexInfo equips a primary vertex with DFS/planarity bookkeeping.
// Only primary vertices (index < N) have one.
type vertexInfo struct {
	parent               int
	leastAncestor        int
	lowpoint             int
	visitedInfo          int
	pertinentEdge        int
	pertinentRootsList   int // list head into Graph.pertinentRoots, keyed by DFS-child id
	futurePertinentChild int
	sortedDFSChildList   int // list head into Graph.sortedDFSChildLists, keyed by DFS-child id
	forwardArcList       int // head arc of the circular forward-arc list
	mergeBlocker         int // initialized to NIL and otherwise unused; see DESIGN.md
}

// Graph is the core arena: a fixed-capacity half-edge graph with DFS and
// planarity bookkeeping, and an extension registry. The zero value is not
// usable; construct with NewGraph and InitGraph.
type Graph struct {
	n            int // number of primary vertices
	arcCapacity  int // capacity in arcs (at most arcCapacity/2 edges); the arc array holds 2*arcCapacity records
	m            int // number of edges currently in use

	v  []vertexRec
	vi []vertexInfo
	e  []arc

	stack     *intStack
	edgeHoles *intStack

	sortedDFSChildLists *listColl
	pertinentRoots      *listColl

	embedFlags EmbedFlags

	extensions []*extensionRecord
	fn         functionTable

	// ic is scratch state for a single obstruction isolation; see isolator.go.
	ic isolatorContext

	// Toggled by each SortVertices call; tracks whether vertices
	// are currently ordered by DFI (true) or by original input order (false).
	sortedByDFI bool

	// dfsNumbered is set once CreateDFSTree has assigned DFIs; CreateDFSTree
	// becomes a no-op once it is set.
	dfsNumbered bool
}

// NewGraph allocates an empty, uninitialized Graph. Call InitGraph before use.
func NewGraph() *Graph {
	g := &Graph{}
	g.fn = defaultFunctionTable()
	return g
}

// N returns the number of primary vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of edges currently present in the graph.
func (g *Graph) M() int { return g.m }

// ArcCapacity returns the current arc capacity (twice the edge limit).
func (g *Graph) ArcCapacity() int { return g.arcCapacity }

// firstVertex / lastVertex / vertex range helpers (0-based, NIL=-1 convention).
func (g *Graph) firstVertex() int { return 0 }
func (g *Graph) lastVertex() int  { return g.n - 1 }

func (g *Graph) isVertex(v int) bool        { return v != NIL }
func (g *Graph) isPrimaryVertex(v int) bool { return v >= 0 && v < g.n }
func (g *Graph) isVirtualVertex(v int) bool { return v >= g.n && v < 2*g.n }

// rootFromChild maps a DFS child c to the index of its bicomp root copy R(c).
func (g *Graph) rootFromChild(c int) int { return c + g.n }

// childFromRoot is the inverse of rootFromChild.
func (g *Graph) childFromRoot(r int) int { return r - g.n }

// primaryFromRoot returns the DFS parent of the child whose root copy is r,
// i.e. the primary vertex that r will eventually be merged into.
func (g *Graph) primaryFromRoot(r int) int {
	return g.vi[g.childFromRoot(r)].parent
}

func (g *Graph) virtualVertexInUse(r int) bool {
	return g.isArc(g.v[r].link[0])
}

func (g *Graph) isArc(e int) bool { return e != NIL }
