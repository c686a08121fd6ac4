package ioadj

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lvlath/planarity/core"
)

// ReadAdjMatrix parses the upper-triangular adjacency-matrix format of
// spec.md section 6: a count line N, then N-1 rows where row v holds N-v-1
// bits giving v's adjacency to v+1..N-1.
func ReadAdjMatrix(r io.Reader) (*core.Graph, error) {
	t := newTokenizer(r)

	n, ok := t.nextInt()
	if !ok || n < 0 {
		return nil, fmt.Errorf("ioadj: invalid vertex count: %w", ErrMalformedInput)
	}

	g := core.NewGraph()
	if err := g.InitGraph(n, 0); err != nil {
		return nil, err
	}

	for v := 0; v < n; v++ {
		for w := v + 1; w < n; w++ {
			digit, ok := t.nextDigit()
			if !ok {
				return nil, fmt.Errorf("ioadj: row %d: truncated: %w", v, ErrMalformedInput)
			}
			if digit == '1' {
				if _, err := g.AddEdge(v, 0, w, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// WriteAdjMatrix writes g's upper-triangular adjacency matrix. It refuses
// (ErrDirectedNotSupported) if any arc is flagged directed, since the
// format cannot represent direction.
//
// The original engine's _WriteAdjMatrix has a documented dead-branch bug:
// its inner "K > v" loop bound references v instead of K, an infinite loop
// in any build that reaches it. A faithful port does not reproduce that —
// see spec.md section 9 and DESIGN.md for the isolated-bug note.
func WriteAdjMatrix(g *core.Graph, w io.Writer) error {
	for v := g.FirstVertex(); v <= g.LastVertex(); v++ {
		for e := g.FirstArc(v); g.IsArc(e); e = g.NextArc(e) {
			if g.ArcDirection(e) != core.DirUndirected {
				return ErrDirectedNotSupported
			}
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", g.N()); err != nil {
		return err
	}

	for v := g.FirstVertex(); v < g.LastVertex(); v++ {
		row := make([]byte, g.N()-v-1)
		for i := range row {
			row[i] = '0'
		}
		for e := g.FirstArc(v); g.IsArc(e); e = g.NextArc(e) {
			if neighbor := g.Neighbor(e); neighbor > v {
				row[neighbor-v-1] = '1'
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
