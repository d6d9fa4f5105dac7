package render

import automaton "github.com/geange/automaton-tree"

// Node is the JSON shape consumed by hierarchical layout libraries such as
// d3-hierarchy: every node nests its children.
type Node struct {
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol,omitempty"`
	Label    string  `json:"label,omitempty"`
	Depth    int     `json:"depth"`
	Accept   bool    `json:"accept"`
	Class    string  `json:"class"`
	Fill     string  `json:"fill"`
	Children []*Node `json:"children,omitempty"`
}

// Hierarchy converts the tree into nested Nodes.
func (r *Renderer) Hierarchy(root *automaton.Configuration) *Node {
	if root == nil {
		return nil
	}
	class := r.ClassOf(root)
	n := &Node{
		Name:   root.Name,
		Symbol: root.Symbol,
		Label:  EdgeLabel(root),
		Depth:  root.Depth,
		Accept: root.Accept,
		Class:  class.String(),
		Fill:   class.Fill(),
	}
	for _, child := range root.Children {
		n.Children = append(n.Children, r.Hierarchy(child))
	}
	return n
}
