package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRunConfig(t *testing.T, dir string, mode string, measuresYAML string) (configPath, outputPath string) {
	t.Helper()
	attrsPath := writeFile(t, dir, "attrs.json", attributesFixture)
	objsPath := writeFile(t, dir, "objs.csv", objectsFixtureCSV)
	outputPath = filepath.Join(dir, "rules.xml")

	body := fmt.Sprintf(`
name: fixture-run
attributes_path: %s
objects_path: %s
objects_format: csv
mode: %s
output_path: %s
%s`, attrsPath, objsPath, mode, outputPath, measuresYAML)

	configPath = writeFile(t, dir, "run.yaml", body)
	return configPath, outputPath
}

func TestInduceCommandClassicalWritesRuleML(t *testing.T) {
	dir := t.TempDir()
	configPath, outputPath := writeRunConfig(t, dir, "classical", "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"induce", configPath})

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "<RuleSet")
}

func TestInduceCommandVariableConsistencyWritesRuleML(t *testing.T) {
	dir := t.TempDir()
	configPath, outputPath := writeRunConfig(t, dir, "variable_consistency", "measures:\n  - name: epsilon\n    threshold: 0.5\n")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"induce", configPath})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(outputPath)
	require.NoError(t, err)
}

func TestInduceCommandCachesAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	configPath, outputPath := writeRunConfig(t, dir, "classical", "")
	cachePath := filepath.Join(dir, "cache.db")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--format", "json", "induce", "--cache", cachePath, configPath})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, out.String(), `"cache_hit":true`)

	first, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	out.Reset()
	cmd2 := NewRootCommand()
	cmd2.SetOut(&out)
	cmd2.SetErr(&out)
	cmd2.SetArgs([]string{"--format", "json", "induce", "--cache", cachePath, configPath})
	require.NoError(t, cmd2.Execute())
	assert.Contains(t, out.String(), `"cache_hit":true`)

	second, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInduceCommandRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "run.yaml", "name: broken\n")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"induce", configPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
