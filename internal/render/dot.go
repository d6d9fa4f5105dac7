package render

import (
	"fmt"
	"strconv"
	"strings"

	automaton "github.com/geange/automaton-tree"
)

// DOT generates a Graphviz DOT representation of the tree.
func (r *Renderer) DOT(root *automaton.Configuration) string {
	nodes, edges := number(root)

	var sb strings.Builder
	sb.WriteString("digraph ComputationTree {\n")
	sb.WriteString("  node [shape=circle, style=filled];\n")
	sb.WriteString("\n")

	for id, c := range nodes {
		sb.WriteString(fmt.Sprintf("  n%d [label=%s, fillcolor=%q];\n", id, strconv.Quote(NodeLabel(c)), r.ClassOf(c).Fill()))
	}
	sb.WriteString("\n")

	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  n%d -> n%d [label=%s];\n", e.from, e.to, strconv.Quote(EdgeLabel(e.child))))
	}

	sb.WriteString("}\n")
	return sb.String()
}
