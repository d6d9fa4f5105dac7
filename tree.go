package automaton

import (
	"errors"
	"fmt"
)

// DefaultMaxNodes Default cap on the number of configurations BuildTree creates.
const DefaultMaxNodes = 1 << 16

var ErrTreeTooLarge = errors.New("computation tree too large")

// Configuration One node of a computation tree: the state reached after consuming Depth input symbols along
// the path from the root. The root consumes nothing and has an empty Symbol.
type Configuration struct {
	Symbol   string
	State    int
	Name     string
	Accept   bool
	Depth    int
	Children []*Configuration
}

// IsRoot Returns true for the configuration a tree starts from.
func (c *Configuration) IsRoot() bool {
	return c.Depth == 0
}

type treeOptions struct {
	maxNodes int
}

type TreeOption func(*treeOptions)

// WithMaxNodes Fail the build with ErrTreeTooLarge once more than n configurations would exist. n <= 0 removes
// the cap.
func WithMaxNodes(n int) TreeOption {
	return func(o *treeOptions) {
		o.maxNodes = n
	}
}

// BuildTree
// Builds the computation tree of a on input. Starting from the initial state, every configuration at depth
// i < len(input) gets one child per successor of its state on input[i]; configurations at depth len(input)
// and configurations without a successor are leaves. An empty input yields the root alone.
func BuildTree(a *Automaton, input string, opts ...TreeOption) (*Configuration, error) {
	o := &treeOptions{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(o)
	}
	if a.GetNumStates() == 0 {
		return nil, fmt.Errorf("initial state: %w", ErrUnknownState)
	}

	b := &treeBuilder{a: a, input: []rune(input), maxNodes: o.maxNodes}
	root := b.newConfiguration("", 0, 0)
	if err := b.expand(root); err != nil {
		return nil, err
	}
	return root, nil
}

type treeBuilder struct {
	a        *Automaton
	input    []rune
	maxNodes int
	nodes    int
}

func (b *treeBuilder) newConfiguration(symbol string, state, depth int) *Configuration {
	b.nodes++
	return &Configuration{
		Symbol: symbol,
		State:  state,
		Name:   b.a.StateName(state),
		Accept: b.a.IsAccept(state),
		Depth:  depth,
	}
}

func (b *treeBuilder) expand(c *Configuration) error {
	if c.Depth >= len(b.input) {
		return nil
	}

	symbol := b.input[c.Depth]
	dests := b.a.Successors(c.State, int(symbol))
	if b.maxNodes > 0 && b.nodes+len(dests) > b.maxNodes {
		return fmt.Errorf("more than %d configurations: %w", b.maxNodes, ErrTreeTooLarge)
	}

	c.Children = make([]*Configuration, 0, len(dests))
	for _, dest := range dests {
		child := b.newConfiguration(string(symbol), dest, c.Depth+1)
		c.Children = append(c.Children, child)
		if err := b.expand(child); err != nil {
			return err
		}
	}
	return nil
}

// Accepts
// Returns true if some path of the tree consumes all of input and ends in an accept state. The traversal
// accumulates the symbols consumed along each path and only considers paths of the full input length.
func Accepts(root *Configuration, input string) bool {
	if root == nil {
		return false
	}
	want := len([]rune(input))

	var traverse func(c *Configuration, consumed int) bool
	traverse = func(c *Configuration, consumed int) bool {
		if consumed == want && c.Accept {
			return true
		}
		for _, child := range c.Children {
			if traverse(child, consumed+len([]rune(child.Symbol))) {
				return true
			}
		}
		return false
	}
	return traverse(root, 0)
}

// Walk Visit every configuration depth first, parents before children. Returning false from fn skips the
// configuration's children.
func Walk(root *Configuration, fn func(c *Configuration) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// Size Number of configurations in the tree.
func Size(root *Configuration) int {
	n := 0
	Walk(root, func(*Configuration) bool {
		n++
		return true
	})
	return n
}

// Height Depth of the deepest configuration.
func Height(root *Configuration) int {
	h := 0
	Walk(root, func(c *Configuration) bool {
		h = max(h, c.Depth)
		return true
	})
	return h
}

// Leaves Configurations without children, in left to right order.
func Leaves(root *Configuration) []*Configuration {
	var leaves []*Configuration
	Walk(root, func(c *Configuration) bool {
		if len(c.Children) == 0 {
			leaves = append(leaves, c)
		}
		return true
	})
	return leaves
}
