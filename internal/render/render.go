// Package render turns computation trees into formats external tools can
// draw: Mermaid flowcharts, Graphviz DOT, d3-hierarchy style JSON and
// coloured terminal text.
package render

import (
	"github.com/bits-and-blooms/bitset"
	automaton "github.com/geange/automaton-tree"
)

// MaxLabelLength is how many characters of an edge label are shown before
// it is truncated with "...".
const MaxLabelLength = 10

// Class groups configurations for colouring.
type Class int

const (
	ClassUnknown Class = iota
	ClassLive
	ClassDead
	ClassAccept
)

func (c Class) String() string {
	switch c {
	case ClassLive:
		return "live"
	case ClassDead:
		return "dead"
	case ClassAccept:
		return "accept"
	default:
		return "unknown"
	}
}

// Fill is the CSS colour name of the class.
func (c Class) Fill() string {
	switch c {
	case ClassLive:
		return "lightblue"
	case ClassDead:
		return "pink"
	case ClassAccept:
		return "lightgreen"
	default:
		return "white"
	}
}

// Hex is the fill colour as #rrggbb, for terminals.
func (c Class) Hex() string {
	switch c {
	case ClassLive:
		return "#add8e6"
	case ClassDead:
		return "#ffc0cb"
	case ClassAccept:
		return "#90ee90"
	default:
		return "#ffffff"
	}
}

// Renderer renders trees of one automaton.
type Renderer struct {
	numStates int
	dead      *bitset.BitSet
}

// New prepares a renderer for trees built from a.
func New(a *automaton.Automaton) *Renderer {
	return &Renderer{
		numStates: a.GetNumStates(),
		dead:      automaton.DeadStates(a),
	}
}

// ClassOf classifies a configuration by its state.
func (r *Renderer) ClassOf(c *automaton.Configuration) Class {
	switch {
	case c.State < 0 || c.State >= r.numStates:
		return ClassUnknown
	case c.Accept:
		return ClassAccept
	case r.dead.Test(uint(c.State)):
		return ClassDead
	default:
		return ClassLive
	}
}

// EdgeLabel is the label drawn on the edge leading into c.
func EdgeLabel(c *automaton.Configuration) string {
	label := []rune(c.Symbol)
	if len(label) > MaxLabelLength {
		return string(label[:MaxLabelLength]) + "..."
	}
	return string(label)
}

// NodeLabel is the text drawn inside c.
func NodeLabel(c *automaton.Configuration) string {
	return "(" + c.Name + ")"
}

// edge is a parent/child pair with the child's id.
type edge struct {
	from, to int
	child    *automaton.Configuration
}

// number assigns ids to configurations in depth first order.
func number(root *automaton.Configuration) ([]*automaton.Configuration, []edge) {
	var nodes []*automaton.Configuration
	var edges []edge

	var visit func(c *automaton.Configuration) int
	visit = func(c *automaton.Configuration) int {
		id := len(nodes)
		nodes = append(nodes, c)
		for _, child := range c.Children {
			childID := visit(child)
			edges = append(edges, edge{from: id, to: childID, child: child})
		}
		return id
	}
	if root != nil {
		visit(root)
	}
	return nodes, edges
}
