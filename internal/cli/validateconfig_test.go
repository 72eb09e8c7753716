package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfigCommandAcceptsValidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath, _ := writeRunConfig(t, dir, "classical", "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate-config", configPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "valid")
}

func TestValidateConfigCommandRejectsMeasuresUnderClassicalMode(t *testing.T) {
	dir := t.TempDir()
	configPath, _ := writeRunConfig(t, dir, "classical", "measures:\n  - name: epsilon\n    threshold: 0.5\n")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate-config", configPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out.String(), "R004")
}

func TestValidateConfigCommandJSONFormat(t *testing.T) {
	dir := t.TempDir()
	configPath, _ := writeRunConfig(t, dir, "classical", "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--format", "json", "validate-config", configPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"valid":true`)
}
