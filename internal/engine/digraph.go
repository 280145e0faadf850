package engine

import (
	"fmt"
	"strings"
)

// Digraph renders the team's recorded battle history as a DOT graph,
// one edge per strike, labelled with damage and phase. An empty history
// still yields a valid (edgeless) graph.
func Digraph(t *Team) string {
	var b strings.Builder
	b.WriteString("digraph battle {\n")
	b.WriteString("    rankdir=LR\n")
	fmt.Fprintf(&b, "    label=%q\n", t.Name)
	for _, a := range t.history {
		fmt.Fprintf(&b, "    %q -> %q [label=\"-%d (phase %d)\"]\n",
			a.Attacker, a.Defender, a.Damage, a.Phase)
	}
	b.WriteString("}\n")
	return b.String()
}
