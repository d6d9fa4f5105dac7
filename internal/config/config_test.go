package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "automaton-tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
server:
  addr: 127.0.0.1:9000
limits:
  max_input_length: 12
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 12, cfg.Limits.MaxInputLength)
	assert.Equal(t, Default().Limits.MaxNodes, cfg.Limits.MaxNodes)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "log: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "limits:\n  max_nodes: -1\n"))
	assert.ErrorContains(t, err, "max_nodes")
}
