package ioadj

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lvlath/planarity/core"
)

// WriteDebugInfo dumps, per vertex, its DFI, parent, lowpoint, least
// ancestor, and adjacency list. It is a development aid present in the
// original engine's I/O layer (_WriteDebugInfo) but dropped from the
// distilled spec; it is cheap to carry and useful when an embedding looks
// wrong, so it is kept as a supplementary write mode.
func WriteDebugInfo(g *core.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for v := g.FirstVertex(); v <= g.LastVertex(); v++ {
		if _, err := fmt.Fprintf(bw, "V[%d]: DFI=%d parent=%d lowpoint=%d leastAncestor=%d adj=[",
			v, g.VertexIndex(v), g.Parent(v), g.Lowpoint(v), g.LeastAncestor(v)); err != nil {
			return err
		}
		first := true
		for e := g.FirstArc(v); g.IsArc(e); e = g.NextArc(e) {
			if !first {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			first = false
			if _, err := fmt.Fprintf(bw, "%d", g.Neighbor(e)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("]\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
