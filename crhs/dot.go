package crhs

import (
	"fmt"
	"io"
)

// WriteDOT renders the BDD as a Graphviz DOT digraph: one node per BDD
// node, solid edges for 1-edges, dashed edges for 0-edges, and the source
// and sink styled as double circles.
func (b *BDD) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "digraph bdd%d {\n", b.id); err != nil {
		return err
	}
	sinkIdx := b.SinkLevelIndex()
	for levelIdx, level := range b.levels {
		shape := "circle"
		if levelIdx == 0 || levelIdx == sinkIdx {
			shape = "doublecircle"
		}
		for id := range level.nodes {
			if _, err := fmt.Fprintf(w, "  %q [shape=%s];\n", id.String(), shape); err != nil {
				return err
			}
		}
	}
	for _, level := range b.levels {
		for id, node := range level.nodes {
			if e0, ok := node.E0(); ok {
				if _, err := fmt.Fprintf(w, "  %q -> %q [style=dashed, label=\"0\"];\n", id.String(), e0.String()); err != nil {
					return err
				}
			}
			if e1, ok := node.E1(); ok {
				if _, err := fmt.Fprintf(w, "  %q -> %q [label=\"1\"];\n", id.String(), e1.String()); err != nil {
					return err
				}
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
