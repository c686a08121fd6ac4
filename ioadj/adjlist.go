package ioadj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lvlath/planarity/core"
)

// ReadAdjList parses the adjacency-list text format of spec.md section 6:
// a header line "N=<count>" followed by one line per vertex of the form
// "<index>: <neighbor> <neighbor> ... <terminator>". The terminator and the
// base of the vertex/neighbor labels (0- or 1-based) are both inferred from
// the first vertex's declared index, grounded on _ReadAdjList's zeroBased
// detection; internally every core.Graph is 0-based regardless of the
// file's convention.
func ReadAdjList(r io.Reader) (*core.Graph, error) {
	t := newTokenizer(r)

	headerLine, ok := t.readLine()
	if !ok {
		return nil, fmt.Errorf("ioadj: read header: %w", ErrMalformedInput)
	}
	headerLine = strings.TrimSpace(headerLine)
	if !strings.HasPrefix(headerLine, "N=") {
		return nil, fmt.Errorf("ioadj: expected N=<count> header: %w", ErrMalformedInput)
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(headerLine[2:]))
	if convErr != nil || n < 0 {
		return nil, fmt.Errorf("ioadj: invalid vertex count: %w", ErrMalformedInput)
	}

	g := core.NewGraph()
	if err := g.InitGraph(n, 0); err != nil {
		return nil, err
	}

	zeroBased := false
	for v := 0; v < n; v++ {
		idx, ok := t.nextInt()
		if !ok {
			return nil, fmt.Errorf("ioadj: vertex %d: missing index: %w", v, ErrMalformedInput)
		}
		if v == 0 {
			zeroBased = idx == 0
		}
		fileBase := 1
		if zeroBased {
			fileBase = 0
		}
		if idx-fileBase != v {
			return nil, fmt.Errorf("ioadj: vertex %d: out of order index %d: %w", v, idx, ErrMalformedInput)
		}
		if !t.expectByte(':') {
			return nil, fmt.Errorf("ioadj: vertex %d: missing ':': %w", v, ErrMalformedInput)
		}

		// Detach any arcs already placed into v's list by earlier (lower
		// numbered) vertices, indexed by neighbor, so v's own declared list
		// can selectively reclaim or leave them as directed incoming arcs.
		pending := map[int]int{}
		for e := g.FirstArc(v); g.IsArc(e); {
			next := g.NextArc(e)
			pending[g.Neighbor(e)] = e
			g.SpliceOutOfAdjacency(e, v)
			e = next
		}

		for {
			raw, ok := t.nextInt()
			if !ok {
				return nil, fmt.Errorf("ioadj: vertex %d: truncated adjacency list: %w", v, ErrMalformedInput)
			}
			w := raw - fileBase
			if w < 0 {
				break
			}
			if w >= n {
				return nil, fmt.Errorf("ioadj: vertex %d: neighbor %d out of range: %w", v, raw, ErrMalformedInput)
			}
			if w == v {
				return nil, fmt.Errorf("ioadj: vertex %d: self-loop: %w", v, ErrMalformedInput)
			}

			if w > v {
				if _, err := g.AddEdge(v, 0, w, 0); err != nil {
					return nil, err
				}
			} else if pendingArc, found := pending[w]; found {
				delete(pending, w)
				g.AttachFirstArc(v, pendingArc)
			} else {
				if _, err := g.AddEdge(v, 0, w, 0); err != nil {
					return nil, err
				}
				markDirected(g, g.FirstArc(w))
			}
		}

		for _, arc := range pending {
			g.AttachFirstArc(v, arc)
			markDirected(g, arc)
		}
	}

	return g, nil
}

// markDirected flags e as the IN-only side of a directed arc and its twin
// as the OUT-only side, mirroring gp_SetDirection's documented side effect
// of setting both arcs of a pair at once.
func markDirected(g *core.Graph, e int) {
	g.SetArcDirection(e, core.DirInOnly)
	g.SetArcDirection(g.TwinArc(e), core.DirOutOnly)
}

// WriteAdjList writes g in the adjacency-list format, always using 0-based
// vertex labels and a -1 terminator. An arc flagged IN-only is the incoming
// half of a directed edge and is omitted from its owner's written list
// (the OUT-only half at the other endpoint represents it).
func WriteAdjList(g *core.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "N=%d\n", g.N()); err != nil {
		return err
	}
	for v := g.FirstVertex(); v <= g.LastVertex(); v++ {
		if _, err := fmt.Fprintf(bw, "%d:", v); err != nil {
			return err
		}
		for e := g.LastArc(v); g.IsArc(e); e = g.PrevArc(e) {
			if g.ArcDirection(e) != core.DirInOnly {
				if _, err := fmt.Fprintf(bw, " %d", g.Neighbor(e)); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintf(bw, " -1\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
