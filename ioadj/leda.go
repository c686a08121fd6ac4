package ioadj

import (
	"fmt"
	"io"

	"github.com/lvlath/planarity/core"
)

// ReadLEDA parses a LEDA graph file holding a simple undirected graph:
// a fixed three-line header, a line with N, N lines of vertex labels
// (ignored), a line with M, then M lines of "<u> <v>" 1-based edges. Self-loops and parallel
// edges are silently dropped, grounded on _ReadLEDAGraph.
func ReadLEDA(r io.Reader) (*core.Graph, error) {
	t := newTokenizer(r)

	for i := 0; i < 3; i++ {
		if _, ok := t.readLine(); !ok {
			return nil, fmt.Errorf("ioadj: LEDA header: %w", ErrMalformedInput)
		}
	}

	n, ok := t.nextInt()
	if !ok || n < 0 {
		return nil, fmt.Errorf("ioadj: LEDA vertex count: %w", ErrMalformedInput)
	}
	t.readLine() // rest of the N line, so the first label line is read whole

	g := core.NewGraph()
	if err := g.InitGraph(n, 0); err != nil {
		return nil, err
	}

	for v := 0; v < n; v++ {
		if _, ok := t.readLine(); !ok {
			return nil, fmt.Errorf("ioadj: LEDA vertex label %d: %w", v, ErrMalformedInput)
		}
	}

	m, ok := t.nextInt()
	if !ok || m < 0 {
		return nil, fmt.Errorf("ioadj: LEDA edge count: %w", ErrMalformedInput)
	}

	for i := 0; i < m; i++ {
		u, ok1 := t.nextInt()
		v, ok2 := t.nextInt()
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("ioadj: LEDA edge %d: %w", i, ErrMalformedInput)
		}
		u--
		v--
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("ioadj: LEDA edge %d: out of range: %w", i, ErrMalformedInput)
		}
		if u == v {
			continue
		}
		if g.IsNeighbor(u, v) {
			continue
		}
		if _, err := g.AddEdge(u, 0, v, 0); err != nil {
			return nil, err
		}
	}

	return g, nil
}
