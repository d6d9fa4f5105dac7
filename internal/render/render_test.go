package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	automaton "github.com/geange/automaton-tree"
	"github.com/geange/automaton-tree/internal/render"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, input string) (*render.Renderer, *automaton.Configuration) {
	t.Helper()
	a, err := (&automaton.Automata{}).MakeComputationAutomaton()
	require.NoError(t, err)
	root, err := automaton.BuildTree(a, input)
	require.NoError(t, err)
	return render.New(a), root
}

func TestClassOf(t *testing.T) {
	r, root := buildTree(t, "00")

	assert.Equal(t, render.ClassLive, r.ClassOf(root))
	assert.Equal(t, render.ClassLive, r.ClassOf(root.Children[0]))              // B
	assert.Equal(t, render.ClassDead, r.ClassOf(root.Children[0].Children[0])) // p
	assert.Equal(t, render.ClassUnknown, r.ClassOf(&automaton.Configuration{State: 42}))

	_, accepted := buildTree(t, "01")
	assert.Equal(t, render.ClassAccept, r.ClassOf(accepted.Children[0].Children[0])) // C

	assert.Equal(t, "lightblue", render.ClassLive.Fill())
	assert.Equal(t, "pink", render.ClassDead.Fill())
	assert.Equal(t, "lightgreen", render.ClassAccept.Fill())
	assert.Equal(t, "white", render.ClassUnknown.Fill())
}

func TestEdgeLabel(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"", ""},
		{"0", "0"},
		{"0123456789", "0123456789"},
		{"01234567890", "0123456789..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, render.EdgeLabel(&automaton.Configuration{Symbol: tt.symbol}))
	}
}

func TestMermaid(t *testing.T) {
	r, root := buildTree(t, "01")
	out := r.Mermaid(root)

	for _, want := range []string{
		"graph TD\n",
		`n0(("(A)"))`,
		`n1(("(B)"))`,
		`n2(("(C)"))`,
		`n0 -- "0" --> n1`,
		`n1 -- "1" --> n2`,
		`n0 -- "0" --> n3`,
		"classDef accept fill:lightgreen",
		"classDef dead fill:pink",
		"class n0 live;",
		"class n2 accept;",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDOT(t *testing.T) {
	r, root := buildTree(t, "00")
	out := r.DOT(root)

	assert.True(t, strings.HasPrefix(out, "digraph ComputationTree {\n"))
	assert.Contains(t, out, `n2 [label="(p)", fillcolor="pink"];`)
	assert.Contains(t, out, `n0 [label="(A)", fillcolor="lightblue"];`)
	assert.Contains(t, out, `n1 -> n2 [label="0"];`)
	assert.Equal(t, 5, strings.Count(out, "->"))
}

func TestHierarchy(t *testing.T) {
	r, root := buildTree(t, "01")
	h := r.Hierarchy(root)

	require.Len(t, h.Children, 2)
	assert.Equal(t, "A", h.Name)
	assert.Equal(t, "B", h.Children[0].Name)
	assert.Equal(t, "C", h.Children[0].Children[0].Name)
	assert.True(t, h.Children[0].Children[0].Accept)
	assert.Equal(t, "lightgreen", h.Children[0].Children[0].Fill)

	data, err := json.Marshal(h)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "A", decoded["name"])
	assert.NotContains(t, decoded, "symbol")
	assert.Len(t, decoded["children"], 2)

	assert.Nil(t, r.Hierarchy(nil))
}

func TestText(t *testing.T) {
	r, root := buildTree(t, "01")

	var buf bytes.Buffer
	require.NoError(t, r.Text(&buf, root, termenv.Ascii))
	assert.Equal(t, "(A)\n"+
		"├── 0 → (B)\n"+
		"│   └── 1 → (C)\n"+
		"└── 0 → (A)\n"+
		"    └── 1 → (A)\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Text(&buf, root, termenv.TrueColor))
	assert.Contains(t, buf.String(), "\x1b[")
}
