package render

import (
	"fmt"
	"strings"

	automaton "github.com/geange/automaton-tree"
)

// Mermaid produces a Mermaid flowchart of the tree.
// Configurations are circles labelled with their state, edges carry the
// consumed symbol, and every node gets the class of its state:
// live, dead or accept.
func (r *Renderer) Mermaid(root *automaton.Configuration) string {
	nodes, edges := number(root)

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for id, c := range nodes {
		sb.WriteString(fmt.Sprintf("    n%d((\"%s\"))\n", id, escapeMermaid(NodeLabel(c))))
	}
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("    n%d -- \"%s\" --> n%d\n", e.from, escapeMermaid(EdgeLabel(e.child)), e.to))
	}

	sb.WriteString("\n")
	for _, class := range []Class{ClassLive, ClassDead, ClassAccept, ClassUnknown} {
		sb.WriteString(fmt.Sprintf("    classDef %s fill:%s,stroke:#000,stroke-width:2px,color:#000;\n", class, class.Fill()))
	}
	for id, c := range nodes {
		sb.WriteString(fmt.Sprintf("    class n%d %s;\n", id, r.ClassOf(c)))
	}

	return sb.String()
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
