package render

import (
	"bufio"
	"io"

	automaton "github.com/geange/automaton-tree"
	"github.com/muesli/termenv"
)

// Text writes the tree as an indented outline, colouring each state by
// its class. Use termenv.Ascii for plain output.
func (r *Renderer) Text(w io.Writer, root *automaton.Configuration, profile termenv.Profile) error {
	if root == nil {
		return nil
	}
	bw := bufio.NewWriter(w)

	state := func(c *automaton.Configuration) string {
		return profile.String(NodeLabel(c)).Foreground(profile.Color(r.ClassOf(c).Hex())).String()
	}

	var visit func(c *automaton.Configuration, prefix string)
	visit = func(c *automaton.Configuration, prefix string) {
		for i, child := range c.Children {
			branch, indent := "├── ", "│   "
			if i == len(c.Children)-1 {
				branch, indent = "└── ", "    "
			}
			bw.WriteString(prefix + branch + EdgeLabel(child) + " → " + state(child) + "\n")
			visit(child, prefix+indent)
		}
	}

	bw.WriteString(state(root) + "\n")
	visit(root, "")
	return bw.Flush()
}
