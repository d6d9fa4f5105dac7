package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	automaton "github.com/geange/automaton-tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	config := filepath.Join(t.TempDir(), "missing.yaml")
	rootCmd.SetArgs(append(args, "--config", config))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "01")
	require.NoError(t, err)
	assert.Contains(t, out, "└── 1 → (C)")
	assert.Contains(t, out, `The string "01" is accepted.`)

	out, err = execute(t, "run", "--quiet", "00")
	require.NoError(t, err)
	assert.Equal(t, "The string \"00\" is not accepted.\n", out)
}

func TestRunCommand_InvalidInput(t *testing.T) {
	out, err := execute(t, "run", "012")
	assert.ErrorIs(t, err, automaton.ErrInvalidInput)
	assert.Contains(t, out, automaton.InvalidInputMessage)
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", "--format", "dot", "01")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph ComputationTree")

	out, err = execute(t, "graph", "--format", "json", "1")
	require.NoError(t, err)
	var node map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &node))
	assert.Equal(t, "A", node["name"])

	_, err = execute(t, "graph", "--format", "svg", "1")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "automaton-tree version "+automaton.Version+"\n", out)
}
